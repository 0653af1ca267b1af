package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns the id application-side so the schema works the
// same on postgres and the sqlite test databases.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// SubmissionStatus is the review lifecycle shared by enrollments, vacancy
// applications and join requests.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusReviewed SubmissionStatus = "reviewed"
	SubmissionStatusAccepted SubmissionStatus = "accepted"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// ValidSubmissionStatus reports whether s is one of the allowed values.
func ValidSubmissionStatus(s string) bool {
	switch SubmissionStatus(s) {
	case SubmissionStatusPending, SubmissionStatusReviewed, SubmissionStatusAccepted, SubmissionStatusRejected:
		return true
	}
	return false
}
