package services

import (
	"context"
	"errors"

	"nexivo_backend/internal/email"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	enrollments repositories.EnrollmentRepository
	catalog     repositories.ServiceRepository
	notifier    *NotificationService
}

func NewEnrollmentService(enrollments repositories.EnrollmentRepository, catalog repositories.ServiceRepository, notifier *NotificationService) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, catalog: catalog, notifier: notifier}
}

// Create records an enrollment and mails both the admin and the
// submitter. The record is the source of truth; mail failures are logged
// and the enrollment still succeeds.
func (s *EnrollmentService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	service, err := s.catalog.FindByID(db, req.ServiceID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("service", "Service not found")
		}
		return nil, apperrors.InternalError(err)
	}

	enrollment := &models.Enrollment{
		ServiceName: service.Name,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		UserType:    models.SubmitterKind(req.SubmitterKind),
		CompanyType: req.CompanyType,
		CompanyName: req.CompanyName,
		Employees:   req.Employees,
		Turnover:    req.Turnover,
		Profession:  req.Profession,
		Message:     req.Message,
		Status:      models.SubmissionStatusPending,
	}
	if err := s.enrollments.Create(db, enrollment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	data := email.TemplateData{
		"Name":        enrollment.Name,
		"Email":       enrollment.Email,
		"ServiceName": enrollment.ServiceName,
		"CompanyType": enrollment.CompanyType,
		"CompanyName": enrollment.CompanyName,
		"Employees":   enrollment.Employees,
		"Turnover":    enrollment.Turnover,
		"Profession":  enrollment.Profession,
		"Message":     enrollment.Message,
	}
	s.notifier.NotifyAdmin(ctx, "New service enrollment: "+enrollment.ServiceName, "enrollment_admin", data)
	s.notifier.Notify(ctx, enrollment.Email, "We received your enrollment", "enrollment_confirmation", data)

	logger.CtxInfo(ctx, "enrollment created", "enrollment_id", enrollment.ID, "service", enrollment.ServiceName)
	return enrollment, nil
}

func (s *EnrollmentService) List(db *gorm.DB) ([]models.Enrollment, error) {
	enrollments, err := s.enrollments.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return enrollments, nil
}

// UpdateStatus moves an enrollment through the review pipeline. Accepted
// and rejected decisions are mailed to the submitter.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, db *gorm.DB, id, status string) (*models.Enrollment, error) {
	if !models.ValidSubmissionStatus(status) {
		return nil, apperrors.ErrInvalidStatusValue("enrollment", status)
	}

	enrollment, err := s.enrollments.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("enrollment", "Enrollment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	enrollment.Status = models.SubmissionStatus(status)
	if err := s.enrollments.Update(db, enrollment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if enrollment.Status == models.SubmissionStatusAccepted || enrollment.Status == models.SubmissionStatusRejected {
		s.notifier.Notify(ctx, enrollment.Email, "Update on your enrollment", "status_update", email.TemplateData{
			"Name":        enrollment.Name,
			"What":        "enrollment",
			"Status":      string(enrollment.Status),
			"ServiceName": enrollment.ServiceName,
		})
	}

	logger.CtxInfo(ctx, "enrollment status updated", "enrollment_id", id, "status", status)
	return enrollment, nil
}
