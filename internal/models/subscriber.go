package models

// Subscriber is an email address opted into broadcast notifications.
type Subscriber struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null" json:"email"`
}
