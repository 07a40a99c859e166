// Package email provides the notification port for lead intake: a
// confirmation to the prospect and an alert to the reviewer. Senders never
// surface failures to callers of the lead lifecycle; dispatch is best-effort.
package email

import (
	"context"

	"leadintake/platform/config"
	"leadintake/platform/logger"
)

// Sender delivers the two lead-intake notifications.
type Sender interface {
	// SendLeadConfirmation thanks the prospect for their submission.
	SendLeadConfirmation(ctx context.Context, toEmail, firstName string) error
	// SendLeadAlert notifies the reviewer that a new lead arrived.
	SendLeadAlert(ctx context.Context, toEmail, firstName, lastName, leadEmail string) error
}

// NewSender picks the SMTP sender when email is configured, otherwise a
// logging no-op so lead creation is never blocked by missing credentials.
func NewSender(cfg config.EmailConfig, log *logger.Logger) Sender {
	if cfg.GetEmailEnabled() {
		return NewSMTPSender(cfg)
	}
	log.Warn("email not configured; notifications will be logged only")
	return NoopSender{log: log}
}

// NoopSender logs each notification instead of delivering it.
type NoopSender struct {
	log *logger.Logger
}

func (s NoopSender) SendLeadConfirmation(_ context.Context, toEmail, _ string) error {
	s.log.Info("email_simulation", "to", toEmail, "subject", subjectLeadConfirmation)
	return nil
}

func (s NoopSender) SendLeadAlert(_ context.Context, toEmail, _, _, _ string) error {
	s.log.Info("email_simulation", "to", toEmail, "subject", subjectLeadAlert)
	return nil
}
