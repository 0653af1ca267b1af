package dto

type CreateEnrollmentRequest struct {
	ServiceID     string `json:"serviceId" binding:"required" validate:"required,uuid"`
	Name          string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required" validate:"required,email"`
	Phone         string `json:"phone" validate:"max=30"`
	SubmitterKind string `json:"submitterKind" binding:"required" validate:"required,is-submitter-kind"`
	CompanyType   string `json:"companyType" validate:"max=100"`
	CompanyName   string `json:"companyName" validate:"max=200"`
	Employees     string `json:"employees" validate:"max=50"`
	Turnover      string `json:"turnover" validate:"max=100"`
	Profession    string `json:"profession" validate:"max=100"`
	Message       string `json:"message" validate:"max=5000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,is-submission-status"`
}
