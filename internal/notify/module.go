// Package notify dispatches lead notification emails. It subscribes to the
// LeadCreated domain event and delivers via the email sender, either directly
// on the event handler goroutine or through the asynq queue when Redis is
// configured. In every mode failures are logged and swallowed: notification
// is fire-and-forget and never affects the submitting request.
package notify

import (
	"context"
	"time"

	"leadintake/internal/email"
	"leadintake/internal/events"
	"leadintake/platform/logger"
)

// Enqueuer queues a lead notification for out-of-process delivery.
// *QueueClient implements it; tests substitute fakes.
type Enqueuer interface {
	EnqueueLeadCreated(ctx context.Context, payload LeadCreatedPayload) error
}

const sendTimeout = 30 * time.Second

// Module wires lead events to notification delivery.
type Module struct {
	sender        email.Sender
	queue         Enqueuer
	reviewerEmail string
	log           *logger.Logger
}

// New creates the notification module. queue may be nil, in which case
// emails are sent directly from the event handler.
func New(sender email.Sender, queue Enqueuer, reviewerEmail string, log *logger.Logger) *Module {
	return &Module{
		sender:        sender,
		queue:         queue,
		reviewerEmail: reviewerEmail,
		log:           log,
	}
}

// RegisterHandlers subscribes the module to domain events.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadCreated{}.EventName(), events.HandlerFunc(m.handleLeadCreated))
}

func (m *Module) handleLeadCreated(ctx context.Context, event events.Event) error {
	e, ok := event.(events.LeadCreated)
	if !ok {
		return nil
	}

	if m.queue != nil {
		payload := LeadCreatedPayload{
			LeadID:    e.LeadID.String(),
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Email:     e.Email,
		}
		if err := m.queue.EnqueueLeadCreated(ctx, payload); err != nil {
			m.log.Warn("failed to enqueue lead notification; falling back to direct send",
				"leadId", e.LeadID, "error", err)
			m.Deliver(ctx, payload)
		}
		return nil
	}

	m.Deliver(ctx, LeadCreatedPayload{
		LeadID:    e.LeadID.String(),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	})
	return nil
}

// Deliver sends both notification emails: the prospect confirmation and the
// reviewer alert. Each failure is logged and swallowed independently so one
// bad address never suppresses the other message.
func (m *Module) Deliver(ctx context.Context, payload LeadCreatedPayload) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := m.sender.SendLeadConfirmation(sendCtx, payload.Email, payload.FirstName); err != nil {
		m.log.EmailEvent("lead_confirmation", payload.Email, false, err.Error())
	} else {
		m.log.EmailEvent("lead_confirmation", payload.Email, true, "")
	}

	if err := m.sender.SendLeadAlert(sendCtx, m.reviewerEmail, payload.FirstName, payload.LastName, payload.Email); err != nil {
		m.log.EmailEvent("lead_alert", m.reviewerEmail, false, err.Error())
	} else {
		m.log.EmailEvent("lead_alert", m.reviewerEmail, true, "")
	}
}
