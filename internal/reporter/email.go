package reporter

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

type EmailConfig struct {
	Sender    string
	Password  string
	Recipient string
	Server    string
	Port      int
}

// Configured reports whether sender, password and recipient are all set.
func (c EmailConfig) Configured() bool {
	return c.Sender != "" && c.Password != "" && c.Recipient != ""
}

// Email sends the digest over SMTP. Port 465 uses implicit TLS, other ports STARTTLS.
type Email struct {
	cfg EmailConfig
}

func NewEmail(cfg EmailConfig) *Email {
	return &Email{cfg: cfg}
}

func (e *Email) Name() string { return "email" }

func (e *Email) Send(ctx context.Context, recipient, subject, body string) error {
	if !e.cfg.Configured() {
		log.Warn().Msg("Email credentials or recipient not fully configured. Skipping email notification.")
		return nil
	}
	if recipient == "" {
		recipient = e.cfg.Recipient
	}

	msg, err := e.message(recipient, subject, body)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(e.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(e.cfg.Sender),
		mail.WithPassword(e.cfg.Password),
		mail.WithTimeout(30 * time.Second),
	}
	if e.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	client, err := mail.NewClient(e.cfg.Server, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email via %s:%d: %w", e.cfg.Server, e.cfg.Port, err)
	}
	log.Info().Str("recipient", recipient).Msg("📧 Email notification sent")
	return nil
}

func (e *Email) message(recipient, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(e.cfg.Sender); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", e.cfg.Sender, err)
	}
	if err := msg.To(recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
