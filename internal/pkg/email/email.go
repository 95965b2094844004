package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService sends transactional mail. Configured returns false when no
// SMTP host is set, in which case callers fall back to returning secrets
// in the API response.
type EmailService interface {
	Configured() bool
	SendTemporaryPassword(to, userName, temporaryPassword string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

func (s *emailServiceImpl) Configured() bool {
	return s.cfg.Host != ""
}

type temporaryPasswordData struct {
	UserName          string
	TemporaryPassword string
}

// SendTemporaryPassword mails an admin-triggered password reset.
func (s *emailServiceImpl) SendTemporaryPassword(to, userName, temporaryPassword string) error {
	data := temporaryPasswordData{
		UserName:          userName,
		TemporaryPassword: temporaryPassword,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "temporary_password.html", data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.send(to, "Your temporary password", body.Bytes())
}

func (s *emailServiceImpl) send(to, subject string, htmlBody []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(htmlBody)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
		if lastErr == nil {
			return nil
		}
		slog.Warn("email send failed", "attempt", attempt, "to", to, "error", lastErr)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
