package services

import (
	"nexivo_backend/internal/email"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/internal/storage"
)

// ServiceContainer wires every service over shared repositories, the
// storage gateway and the mail provider. Handlers receive this once at
// startup.
type ServiceContainer struct {
	Auth         *AuthService
	Users        *UserService
	Catalog      *CatalogService
	Enrollments  *EnrollmentService
	Blogs        *BlogService
	Vacancies    *VacancyService
	JoinRequests *JoinService
	Subscribers  *SubscriberService
	Contact      *ContactService
	Notifier     *NotificationService
	Uploads      *storage.Gateway
}

type ContainerConfig struct {
	AdminEmail string
	SiteURL    string
}

func NewServiceContainer(provider email.Provider, uploads *storage.Gateway, cfg ContainerConfig) *ServiceContainer {
	users := repositories.NewUserRepository()
	catalog := repositories.NewServiceRepository()
	enrollments := repositories.NewEnrollmentRepository()
	blogs := repositories.NewBlogRepository()
	vacancies := repositories.NewVacancyRepository()
	applications := repositories.NewApplicationRepository()
	joins := repositories.NewJoinRequestRepository()
	subscribers := repositories.NewSubscriberRepository()

	notifier := NewNotificationService(provider, cfg.AdminEmail, cfg.SiteURL)

	return &ServiceContainer{
		Auth:         NewAuthService(users, notifier),
		Users:        NewUserService(users, catalog, uploads),
		Catalog:      NewCatalogService(catalog, uploads),
		Enrollments:  NewEnrollmentService(enrollments, catalog, notifier),
		Blogs:        NewBlogService(blogs, subscribers, uploads, notifier, cfg.SiteURL),
		Vacancies:    NewVacancyService(vacancies, applications, subscribers, uploads, notifier, cfg.SiteURL),
		JoinRequests: NewJoinService(joins),
		Subscribers:  NewSubscriberService(subscribers, notifier),
		Contact:      NewContactService(provider, cfg.AdminEmail),
		Notifier:     notifier,
		Uploads:      uploads,
	}
}
