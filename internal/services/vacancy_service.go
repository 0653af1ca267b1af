package services

import (
	"context"
	"errors"

	"nexivo_backend/internal/email"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/internal/storage"
	"nexivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type VacancyService struct {
	vacancies    repositories.VacancyRepository
	applications repositories.ApplicationRepository
	subscribers  repositories.SubscriberRepository
	uploads      *storage.Gateway
	notifier     *NotificationService
	siteURL      string
}

func NewVacancyService(vacancies repositories.VacancyRepository, applications repositories.ApplicationRepository, subscribers repositories.SubscriberRepository, uploads *storage.Gateway, notifier *NotificationService, siteURL string) *VacancyService {
	return &VacancyService{
		vacancies:    vacancies,
		applications: applications,
		subscribers:  subscribers,
		uploads:      uploads,
		notifier:     notifier,
		siteURL:      siteURL,
	}
}

func (s *VacancyService) List(db *gorm.DB) ([]models.Vacancy, error) {
	vacancies, err := s.vacancies.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vacancies, nil
}

func (s *VacancyService) Get(db *gorm.DB, id string) (*models.Vacancy, error) {
	vacancy, err := s.vacancies.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("vacancy", "Vacancy not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return vacancy, nil
}

// Create opens a position and announces it to every subscriber.
func (s *VacancyService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateVacancyRequest) (*models.Vacancy, error) {
	vacancy := &models.Vacancy{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        models.VacancyType(req.Type),
		Deadline:    req.Deadline,
	}
	if err := s.vacancies.Create(db, vacancy); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.broadcastNew(ctx, db, vacancy)

	logger.CtxInfo(ctx, "vacancy created", "vacancy_id", vacancy.ID, "title", vacancy.Title)
	return vacancy, nil
}

func (s *VacancyService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateVacancyRequest) (*models.Vacancy, error) {
	vacancy, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		vacancy.Title = req.Title
	}
	if req.Description != "" {
		vacancy.Description = req.Description
	}
	if req.Location != "" {
		vacancy.Location = req.Location
	}
	if req.Type != "" {
		vacancy.Type = models.VacancyType(req.Type)
	}
	if req.Deadline != nil {
		vacancy.Deadline = *req.Deadline
	}

	if err := s.vacancies.Update(db, vacancy); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "vacancy updated", "vacancy_id", id)
	return vacancy, nil
}

func (s *VacancyService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.vacancies.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("vacancy", "Vacancy not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "vacancy deleted", "vacancy_id", id)
	return nil
}

// Apply files a candidate submission. The CV is mandatory and goes
// through the storage gateway before anything touches the database.
func (s *VacancyService) Apply(ctx context.Context, db *gorm.DB, vacancyID string, req *dto.ApplyRequest, cv []byte, cvName, cvMime string) (*models.VacancyApplication, error) {
	vacancy, err := s.Get(db, vacancyID)
	if err != nil {
		return nil, err
	}
	if len(cv) == 0 {
		return nil, apperrors.ErrCVRequired
	}

	ref, err := s.uploads.Store(ctx, cv, cvName, cvMime)
	if err != nil {
		return nil, apperrors.ErrUploadFailed(err, "Failed to upload CV")
	}

	application := &models.VacancyApplication{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CV:        ref,
		Message:   req.Message,
		VacancyID: vacancy.ID,
		Status:    models.SubmissionStatusPending,
	}
	if err := s.applications.Create(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.Notify(ctx, application.Email, "Your application has been received", "application_confirmation", email.TemplateData{
		"Name":         application.Name,
		"VacancyTitle": vacancy.Title,
	})
	s.notifier.NotifyAdmin(ctx, "New application: "+vacancy.Title, "application_admin", email.TemplateData{
		"Name":         application.Name,
		"Email":        application.Email,
		"VacancyTitle": vacancy.Title,
		"Message":      application.Message,
	})

	logger.CtxInfo(ctx, "application submitted", "application_id", application.ID, "vacancy_id", vacancy.ID)
	return application, nil
}

func (s *VacancyService) ListApplications(db *gorm.DB) ([]models.VacancyApplication, error) {
	applications, err := s.applications.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// UpdateApplicationStatus moves an application through review. Accepted
// and rejected decisions are mailed to the candidate.
func (s *VacancyService) UpdateApplicationStatus(ctx context.Context, db *gorm.DB, id, status string) (*models.VacancyApplication, error) {
	if !models.ValidSubmissionStatus(status) {
		return nil, apperrors.ErrInvalidStatusValue("application", status)
	}

	application, err := s.applications.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	application.Status = models.SubmissionStatus(status)
	if err := s.applications.Update(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if application.Status == models.SubmissionStatusAccepted || application.Status == models.SubmissionStatusRejected {
		what := "application"
		if application.Vacancy != nil {
			what = "application for " + application.Vacancy.Title
		}
		s.notifier.Notify(ctx, application.Email, "Update on your application", "status_update", email.TemplateData{
			"Name":   application.Name,
			"What":   what,
			"Status": string(application.Status),
		})
	}

	logger.CtxInfo(ctx, "application status updated", "application_id", id, "status", status)
	return application, nil
}

func (s *VacancyService) broadcastNew(ctx context.Context, db *gorm.DB, vacancy *models.Vacancy) {
	subscribers, err := s.subscribers.FindAll(db)
	if err != nil {
		logger.CtxError(ctx, "failed to load subscribers for vacancy broadcast", "error", err.Error())
		return
	}
	if len(subscribers) == 0 {
		return
	}
	recipients := make([]string, 0, len(subscribers))
	for _, sub := range subscribers {
		recipients = append(recipients, sub.Email)
	}
	s.notifier.Broadcast(ctx, recipients, "We're hiring: "+vacancy.Title, "new_vacancy", email.TemplateData{
		"ID":       vacancy.ID,
		"Title":    vacancy.Title,
		"Type":     string(vacancy.Type),
		"Location": vacancy.Location,
		"Deadline": vacancy.Deadline.Format("2 Jan 2006"),
		"SiteURL":  s.siteURL,
	})
}
