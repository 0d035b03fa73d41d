package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"motoconnect-api/config"
)

// EmailService sends transactional mail. Sending is best-effort: a failed
// welcome mail is logged by the caller and never fails the request.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// Enabled reports whether SMTP is configured at all.
func (es *EmailService) Enabled() bool {
	return es.config.SMTPHost != ""
}

// SendWelcomeEmail greets a freshly registered user.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	if !es.Enabled() {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to MotoConnect")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome aboard, %s!</h2>
    <p>Your MotoConnect account is ready. Build your rider profile, catalog
    your motorcycles and join the conversation.</p>
    <p>Ride safe,<br>The MotoConnect Team</p>
</body>
</html>`, name)

	m.SetBody("text/html", htmlBody)

	return es.dialer.DialAndSend(m)
}
