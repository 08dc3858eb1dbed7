package config

import (
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"
)

// Mailer wraps the SMTP dialer. A single instance is built at startup and
// injected into the notification service.
type Mailer struct {
	dialer *mail.Dialer
	from   string
}

func NewMailer(cfg Config) *Mailer {
	d := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	// STARTTLS on 587, mandatory (Gmail/Office365 compatible).
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.SMTPHost,
		InsecureSkipVerify: cfg.SkipTLSVerify, // dev only, SMTP_SKIP_TLS_VERIFY=1
	}

	return &Mailer{dialer: d, from: cfg.SMTPFrom}
}

// From returns the configured sender address.
func (m *Mailer) From() string {
	return m.from
}

func (m *Mailer) Send(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if m.dialer.Host == "" || m.from == "" {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return m.dialer.DialAndSend(msg)
}
