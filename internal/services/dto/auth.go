package dto

import "nexivo_backend/internal/models"

type RegisterRequest struct {
	Username string `json:"username" binding:"required" validate:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"max=30"`
}

type RegisterResponse struct {
	User              models.PublicProjection `json:"user"`
	AccountCount      int64                   `json:"accountCount"`
	AccountsRemaining int64                   `json:"accountsRemaining"`
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type LoginRequest struct {
	Email  string `json:"email" binding:"required" validate:"required,email"`
	Code   string `json:"code" binding:"required" validate:"required,len=6"`
	UserID string `json:"userId" validate:"omitempty,uuid"`
}

// LoginResponse either carries a token for the picked account, or the
// projection of every candidate account when the caller must choose one
// before the code can be redeemed.
type LoginResponse struct {
	Token    string                    `json:"token,omitempty"`
	User     *models.PublicProjection  `json:"user,omitempty"`
	Accounts []models.PublicProjection `json:"accounts,omitempty"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
	Code  string `json:"code" binding:"required" validate:"required,len=6"`
}
