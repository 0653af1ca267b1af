package services

import (
	"context"
	"fmt"

	"nexivo_backend/internal/email"
	"nexivo_backend/internal/logger"
	"nexivo_backend/pkg/apperrors"
)

// NotificationService owns every outbound email. Sends are synchronous;
// apart from the OTP mail, a delivery failure is logged and never turns
// into an API error.
type NotificationService struct {
	provider   email.Provider
	adminEmail string
	siteURL    string
}

func NewNotificationService(provider email.Provider, adminEmail, siteURL string) *NotificationService {
	return &NotificationService{
		provider:   provider,
		adminEmail: adminEmail,
		siteURL:    siteURL,
	}
}

// SendOTP delivers a login code. This is the one send whose failure fails
// the calling operation: a user without the code cannot continue.
func (s *NotificationService) SendOTP(ctx context.Context, to, code string) error {
	err := s.provider.SendTemplate(to, "Your login code", "otp", email.TemplateData{
		"Code":    code,
		"SiteURL": s.siteURL,
	})
	if err != nil {
		logger.CtxError(ctx, "failed to send login code", "to", to, "error", err.Error())
		return apperrors.ErrEmailSendFailed(err)
	}
	return nil
}

// NotifyAdmin mails the configured admin address. Best effort.
func (s *NotificationService) NotifyAdmin(ctx context.Context, subject, templateName string, data email.TemplateData) {
	if s.adminEmail == "" {
		logger.CtxWarn(ctx, "admin email not configured, skipping notification", "subject", subject)
		return
	}
	if err := s.provider.SendTemplate(s.adminEmail, subject, templateName, data); err != nil {
		logger.CtxError(ctx, "failed to notify admin", "subject", subject, "error", err.Error())
	}
}

// Notify sends a single transactional mail to one recipient. Best effort.
func (s *NotificationService) Notify(ctx context.Context, to, subject, templateName string, data email.TemplateData) {
	if err := s.provider.SendTemplate(to, subject, templateName, data); err != nil {
		logger.CtxError(ctx, "failed to send notification", "to", to, "subject", subject, "error", err.Error())
	}
}

// Broadcast fans a mail out to every recipient. One bad address never
// stops the rest of the list; failures are counted and logged.
func (s *NotificationService) Broadcast(ctx context.Context, recipients []string, subject, templateName string, data email.TemplateData) {
	var failed int
	for _, to := range recipients {
		if err := s.provider.SendTemplate(to, subject, templateName, data); err != nil {
			failed++
			logger.CtxWarn(ctx, "broadcast recipient failed", "to", to, "subject", subject, "error", err.Error())
		}
	}
	logger.CtxInfo(ctx, "broadcast finished",
		"subject", subject, "recipients", len(recipients), "failed", failed)
}

// RegisterDefaultTemplates seeds the renderer with built-in bodies so the
// server works without a templates directory on disk. Files loaded from
// Email.TemplatesDir override these by name.
func RegisterDefaultTemplates(r email.TemplateRenderer) error {
	for name, body := range defaultTemplates {
		if err := r.AddTemplate(name, body); err != nil {
			return fmt.Errorf("register template %s: %w", name, err)
		}
	}
	return nil
}

var defaultTemplates = map[string]string{
	"otp": `<h2>Your login code</h2>
<p>Use this code to sign in: <strong>{{.Code}}</strong></p>
<p>The code works once. If you did not request it, ignore this email.</p>`,

	"welcome": `<h2>Welcome aboard</h2>
<p>You are now subscribed to our updates. We will let you know about new articles and open positions.</p>`,

	"enrollment_admin": `<h2>New service enrollment</h2>
<p><strong>{{.Name}}</strong> ({{.Email}}) enrolled in <strong>{{.ServiceName}}</strong>.</p>
{{if .CompanyName}}<p>Organization: {{.CompanyName}} ({{.CompanyType}}), {{.Employees}} employees, turnover {{.Turnover}}.</p>{{end}}
{{if .Profession}}<p>Profession: {{.Profession}}</p>{{end}}
{{if .Message}}<p>Message: {{.Message}}</p>{{end}}`,

	"enrollment_confirmation": `<h2>We received your enrollment</h2>
<p>Hi {{.Name}}, thanks for your interest in <strong>{{.ServiceName}}</strong>. Our team will review your request and get back to you.</p>`,

	"application_admin": `<h2>New vacancy application</h2>
<p><strong>{{.Name}}</strong> ({{.Email}}) applied for <strong>{{.VacancyTitle}}</strong>.</p>
{{if .Message}}<p>Message: {{.Message}}</p>{{end}}`,

	"application_confirmation": `<h2>Thank you for your application</h2>
<p>Hi {{.Name}}, we received your application for <strong>{{.VacancyTitle}}</strong>. Our team will review it and contact you if you are shortlisted.</p>`,

	"status_update": `<h2>Your request was {{.Status}}</h2>
<p>Hi {{.Name}}, the status of your {{.What}} is now <strong>{{.Status}}</strong>.</p>
{{if .ServiceName}}<p>Service: {{.ServiceName}}</p>{{end}}`,

	"new_blog": `<h2>{{.Title}}</h2>
<p>A new article by {{.Author}} is up on our site.</p>
<p><a href="{{.SiteURL}}/blogs/{{.ID}}">Read it here</a></p>`,

	"new_vacancy": `<h2>We're hiring: {{.Title}}</h2>
<p>{{.Type}}{{if .Location}}, {{.Location}}{{end}}. Applications close {{.Deadline}}.</p>
<p><a href="{{.SiteURL}}/vacancy/{{.ID}}">See the posting</a></p>`,

	"contact": `<h2>Contact form message</h2>
<p>From: {{.Name}} ({{.Email}})</p>
{{if .Subject}}<p>Subject: {{.Subject}}</p>{{end}}
<p>{{.Message}}</p>`,
}
