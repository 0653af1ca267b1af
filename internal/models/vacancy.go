package models

import "time"

type VacancyType string

const (
	VacancyFullTime   VacancyType = "Full-time"
	VacancyPartTime   VacancyType = "Part-time"
	VacancyInternship VacancyType = "Internship"
)

func ValidVacancyType(t string) bool {
	switch VacancyType(t) {
	case VacancyFullTime, VacancyPartTime, VacancyInternship:
		return true
	}
	return false
}

// Vacancy is one open job posting.
type Vacancy struct {
	BaseModel
	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Location    string      `gorm:"not null" json:"location"`
	Type        VacancyType `gorm:"type:varchar(20);not null" json:"type"`
	Deadline    time.Time   `gorm:"not null" json:"deadline"`
}

// VacancyApplication is a candidate submission against one vacancy. CV is a
// storage reference and is mandatory.
type VacancyApplication struct {
	BaseModel
	Name      string           `gorm:"not null" json:"name"`
	Email     string           `gorm:"not null" json:"email"`
	Phone     string           `gorm:"not null" json:"phone"`
	CV        string           `gorm:"column:cv;not null" json:"cv"`
	Message   string           `gorm:"type:text" json:"message"`
	VacancyID string           `gorm:"type:uuid;not null;index" json:"vacancyId"`
	Vacancy   *Vacancy         `gorm:"foreignKey:VacancyID" json:"vacancy,omitempty"`
	Status    SubmissionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
