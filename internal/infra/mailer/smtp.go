package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/pkg/errs"
)

// SMTPMailer sends HTML mail over plain SMTP with optional AUTH. Sends are
// synchronous; the sweep treats the result as a success/failure boolean and
// retries failed candidates on its next run.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg.SMTP}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return errs.New("mail recipient must not be empty")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return errs.Wrap(err, "smtp send failed")
	}
	return nil
}
