package models

type SubmitterKind string

const (
	SubmitterIndividual   SubmitterKind = "individual"
	SubmitterOrganization SubmitterKind = "organization"
)

func ValidSubmitterKind(k string) bool {
	return SubmitterKind(k) == SubmitterIndividual || SubmitterKind(k) == SubmitterOrganization
}

// Enrollment is an interest submission for one catalog service. ServiceName
// is denormalized on purpose: status emails must stay correct even if the
// Service is later renamed or deleted.
type Enrollment struct {
	BaseModel
	ServiceName string        `gorm:"not null" json:"serviceName"`
	UserType    SubmitterKind `gorm:"type:varchar(20);not null" json:"userType"`
	Name        string        `gorm:"not null" json:"name"`
	Email       string        `gorm:"not null" json:"email"`
	Phone       string        `gorm:"not null" json:"phone"`

	// Organization-only fields
	CompanyType string `json:"companyType,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Employees   string `json:"employees,omitempty"`
	Turnover    string `json:"turnover,omitempty"`

	// Individual-only field
	Profession string `json:"profession,omitempty"`

	Message string           `gorm:"type:text" json:"message"`
	Status  SubmissionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
