package dto

// Catalog create/update bind from multipart forms: the service image
// travels as the "image" file part next to these fields. Items repeats as
// multiple "items" fields.
type CreateServiceRequest struct {
	Name        string   `form:"name" json:"name" validate:"required,min=2,max=100"`
	Description string   `form:"description" json:"description" validate:"max=5000"`
	Category    string   `form:"category" json:"category" validate:"required,is-service-category"`
	Items       []string `form:"items" json:"items" validate:"omitempty,dive,min=1"`
}

type UpdateServiceRequest struct {
	Name        string   `form:"name" json:"name" validate:"omitempty,min=2,max=100"`
	Description string   `form:"description" json:"description" validate:"max=5000"`
	Category    string   `form:"category" json:"category" validate:"omitempty,is-service-category"`
	Items       []string `form:"items" json:"items" validate:"omitempty,dive,min=1"`
}
