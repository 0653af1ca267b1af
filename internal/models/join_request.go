package models

// JoinRequest is a generic "I want to join the team" submission.
type JoinRequest struct {
	BaseModel
	Name      string           `gorm:"not null" json:"name"`
	Email     string           `gorm:"not null" json:"email"`
	Phone     string           `json:"phone"`
	Education string           `json:"education"`
	Message   string           `gorm:"type:text" json:"message"`
	Status    SubmissionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
