package handlers

import (
	"nexivo_backend/internal/services"
	"nexivo_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	Service *ServiceHandler
	Blog    *BlogHandler
	Vacancy *VacancyHandler
	Join    *JoinHandler
	Admin   *AdminHandler
	Contact *ContactHandler
	File    *FileHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, container.Auth, container.Users),
		Service: NewServiceHandler(base, container.Catalog, container.Enrollments, container.Users),
		Blog:    NewBlogHandler(base, container.Blogs),
		Vacancy: NewVacancyHandler(base, container.Vacancies),
		Join:    NewJoinHandler(base, container.JoinRequests),
		Admin:   NewAdminHandler(base, container.Users, container.JoinRequests, container.Subscribers),
		Contact: NewContactHandler(base, container.Contact),
		File:    NewFileHandler(base, container.Uploads),
	}
}
