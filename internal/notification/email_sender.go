package notification

import (
	"context"

	"train-ticket-booking/pkg/logger"

	"go.uber.org/zap"
)

// EmailSender is the outbound email transport. The service only needs
// a destination, subject and body; delivery is best-effort.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogEmailSender stands in for a real provider and just logs the
// message. Swap in an SMTP or API-backed implementation here.
type LogEmailSender struct{}

func NewLogEmailSender() EmailSender {
	return &LogEmailSender{}
}

func (s *LogEmailSender) Send(ctx context.Context, to, subject, body string) error {
	logger.WithComponent("mailer").Info("Sending email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
