package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"slotbook/config"
)

// SMTPSender is the production Sender backed by plain SMTP.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// NewSMTPSender builds a sender from the loaded application config.
func NewSMTPSender() *SMTPSender {
	return &SMTPSender{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.SMTPFrom,
		FromName: config.AppConfig.SMTPFromName,
	}
}

// Send delivers one message. The context is honored up front only; net/smtp
// has no per-operation context support.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}
	if msg.To == "" {
		return fmt.Errorf("message has no recipient")
	}

	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	payload := s.buildPayload(msg)

	if err := smtp.SendMail(addr, auth, s.From, []string{msg.To}, payload); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", msg.To, err)
	}
	return nil
}

func (s *SMTPSender) buildPayload(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.FromName, s.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	if msg.HTMLBody != "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.HTMLBody)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.TextBody)
	}
	return []byte(b.String())
}
