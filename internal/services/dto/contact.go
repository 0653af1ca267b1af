package dto

type SubscribeRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required" validate:"required,email"`
	Subject string `json:"subject" validate:"max=300"`
	Message string `json:"message" binding:"required" validate:"required,max=10000"`
}
