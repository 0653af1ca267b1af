package email

// TemplateData is the variable set substituted into a template.
type TemplateData map[string]interface{}

// Provider sends transactional mail. Fire-and-forget: no retry, no queue,
// no delivery confirmation. Callers decide whether a failure is critical.
type Provider interface {
	// Send sends a raw HTML email.
	Send(to, subject, htmlBody string) error

	// SendTemplate renders the named template with data and sends it.
	SendTemplate(to, subject, templateName string, data TemplateData) error
}

// TemplateRenderer renders named templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}
