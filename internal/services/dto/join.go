package dto

type CreateJoinRequest struct {
	Name      string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=30"`
	Education string `json:"education" validate:"max=300"`
	Message   string `json:"message" validate:"max=5000"`
}
