package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain/interfaces"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
)

type smtpMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	logger   zerolog.Logger
}

func New(cfg config.SMTPConfig, logger zerolog.Logger) interfaces.Mailer {
	return &smtpMailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:     cfg.Username,
		fromName: cfg.FromName,
		logger:   logger,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.send(ctx, to, subject, "text/plain", body)
}

func (m *smtpMailer) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	return m.send(ctx, to, subject, "text/html", htmlBody)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, contentType, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody(contentType, body)

	// gomail dials synchronously; honor request cancellation around it.
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			m.logger.Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send email")
			return fmt.Errorf("failed to send email to %s: %v", to, err)
		}
		m.logger.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
