package dto

import "time"

type CreateVacancyRequest struct {
	Title       string    `json:"title" binding:"required" validate:"required,min=2,max=200"`
	Description string    `json:"description" binding:"required" validate:"required"`
	Location    string    `json:"location" validate:"max=200"`
	Type        string    `json:"type" binding:"required" validate:"required,is-vacancy-type"`
	Deadline    time.Time `json:"deadline" binding:"required" validate:"required"`
}

type UpdateVacancyRequest struct {
	Title       string     `json:"title" validate:"omitempty,min=2,max=200"`
	Description string     `json:"description"`
	Location    string     `json:"location" validate:"max=200"`
	Type        string     `json:"type" validate:"omitempty,is-vacancy-type"`
	Deadline    *time.Time `json:"deadline"`
}

// ApplyRequest is bound from multipart form fields; the CV file itself
// travels as the "cv" file part.
type ApplyRequest struct {
	VacancyID string `form:"vacancyId" validate:"required,uuid"`
	Name      string `form:"name" validate:"required,min=2,max=100"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"max=30"`
	Message   string `form:"message" validate:"max=5000"`
}
