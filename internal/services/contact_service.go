package services

import (
	"context"

	"nexivo_backend/internal/email"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/pkg/apperrors"
)

// ContactService forwards contact-form messages to the admin inbox. There
// is no stored record; if the mail cannot be sent the message is lost, so
// this send is treated as critical.
type ContactService struct {
	provider email.Provider
	adminTo  string
}

func NewContactService(provider email.Provider, adminTo string) *ContactService {
	return &ContactService{provider: provider, adminTo: adminTo}
}

func (s *ContactService) Send(ctx context.Context, req *dto.ContactRequest) error {
	if s.adminTo == "" {
		return apperrors.New(apperrors.CodeInternalError, "contact", "Contact inbox is not configured", 500)
	}

	subject := "Contact form message"
	if req.Subject != "" {
		subject = "Contact: " + req.Subject
	}
	err := s.provider.SendTemplate(s.adminTo, subject, "contact", email.TemplateData{
		"Name":    req.Name,
		"Email":   req.Email,
		"Subject": req.Subject,
		"Message": req.Message,
	})
	if err != nil {
		logger.CtxError(ctx, "failed to forward contact message", "from", req.Email, "error", err.Error())
		return apperrors.ErrEmailSendFailed(err)
	}

	logger.CtxInfo(ctx, "contact message forwarded", "from", req.Email)
	return nil
}
