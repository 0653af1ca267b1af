package email

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return errNoHost
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errBadPort
	}
	if c.FromEmail == "" {
		return errNoFrom
	}
	return nil
}
