package dto

// UpdateProfileRequest is bound from multipart form fields; a new profile
// image travels as the "profileImage" file part. Usernames are immutable.
type UpdateProfileRequest struct {
	Phone    string `form:"phone" validate:"omitempty,max=30"`
	Password string `form:"password" validate:"omitempty,min=8"`
}

type ChooseServicesRequest struct {
	Services []string `json:"services" binding:"required" validate:"required,min=1,dive,uuid"`
}
