package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

var (
	errNoHost  = errors.New("SMTP host is required")
	errBadPort = errors.New("invalid SMTP port")
	errNoFrom  = errors.New("from address is required")
)

// SMTPProvider implements Provider over a gomail dialer.
type SMTPProvider struct {
	config   *SMTPConfig
	renderer TemplateRenderer
}

// NewSMTPProvider validates the config and builds the provider.
func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		config:   config,
		renderer: renderer,
	}, nil
}

// Send sends a raw HTML email. A fresh connection per message: volumes here
// are a handful of mails per request at most.
func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	if p.config.FromName != "" {
		m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	} else {
		m.SetHeader("From", p.config.FromEmail)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.config.Host,
		p.config.Port,
		p.config.Username,
		p.config.Password,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendTemplate renders the named template and sends the result.
func (p *SMTPProvider) SendTemplate(to, subject, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(to, subject, htmlBody)
}
