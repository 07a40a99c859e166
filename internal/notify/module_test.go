package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"leadintake/internal/events"
	platformevents "leadintake/platform/events"
	"leadintake/platform/logger"

	"github.com/google/uuid"
)

const testReviewer = "attorney@example.com"

type sentEmail struct {
	kind      string
	to        string
	firstName string
	lastName  string
	leadEmail string
}

type fakeSender struct {
	mu              sync.Mutex
	sent            []sentEmail
	confirmationErr error
	alertErr        error
}

func (f *fakeSender) SendLeadConfirmation(_ context.Context, toEmail, firstName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmationErr != nil {
		return f.confirmationErr
	}
	f.sent = append(f.sent, sentEmail{kind: "confirmation", to: toEmail, firstName: firstName})
	return nil
}

func (f *fakeSender) SendLeadAlert(_ context.Context, toEmail, firstName, lastName, leadEmail string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.alertErr != nil {
		return f.alertErr
	}
	f.sent = append(f.sent, sentEmail{
		kind: "alert", to: toEmail,
		firstName: firstName, lastName: lastName, leadEmail: leadEmail,
	})
	return nil
}

func (f *fakeSender) emails() []sentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentEmail, len(f.sent))
	copy(out, f.sent)
	return out
}

type fakeEnqueuer struct {
	mu       sync.Mutex
	enqueued []LeadCreatedPayload
	err      error
}

func (f *fakeEnqueuer) EnqueueLeadCreated(_ context.Context, payload LeadCreatedPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, payload)
	return nil
}

func testPayload() LeadCreatedPayload {
	return LeadCreatedPayload{
		LeadID:    uuid.New().String(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

func testEvent() events.LeadCreated {
	return events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

func TestDeliverSendsBothEmails(t *testing.T) {
	sender := &fakeSender{}
	m := New(sender, nil, testReviewer, logger.New("development"))

	m.Deliver(context.Background(), testPayload())

	sent := sender.emails()
	if len(sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(sent))
	}
	if sent[0].kind != "confirmation" || sent[0].to != "ada@example.com" || sent[0].firstName != "Ada" {
		t.Errorf("confirmation = %+v", sent[0])
	}
	if sent[1].kind != "alert" || sent[1].to != testReviewer {
		t.Errorf("alert = %+v", sent[1])
	}
	if sent[1].leadEmail != "ada@example.com" {
		t.Errorf("alert lead email = %q", sent[1].leadEmail)
	}
}

func TestDeliverConfirmationFailureDoesNotSuppressAlert(t *testing.T) {
	sender := &fakeSender{confirmationErr: errors.New("mailbox full")}
	m := New(sender, nil, testReviewer, logger.New("development"))

	m.Deliver(context.Background(), testPayload())

	sent := sender.emails()
	if len(sent) != 1 || sent[0].kind != "alert" {
		t.Fatalf("expected the alert to still be sent, got %+v", sent)
	}
}

func TestHandleLeadCreatedSendsDirectlyWithoutQueue(t *testing.T) {
	sender := &fakeSender{}
	m := New(sender, nil, testReviewer, logger.New("development"))

	if err := m.handleLeadCreated(context.Background(), testEvent()); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(sender.emails()) != 2 {
		t.Errorf("expected 2 emails, got %d", len(sender.emails()))
	}
}

func TestHandleLeadCreatedEnqueuesWhenQueueConfigured(t *testing.T) {
	sender := &fakeSender{}
	queue := &fakeEnqueuer{}
	m := New(sender, queue, testReviewer, logger.New("development"))

	event := testEvent()
	if err := m.handleLeadCreated(context.Background(), event); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if len(queue.enqueued) != 1 {
		t.Fatalf("expected 1 enqueued task, got %d", len(queue.enqueued))
	}
	if queue.enqueued[0].LeadID != event.LeadID.String() {
		t.Errorf("enqueued lead id = %q, want %q", queue.enqueued[0].LeadID, event.LeadID)
	}
	if len(sender.emails()) != 0 {
		t.Error("no direct send expected when enqueue succeeds")
	}
}

func TestHandleLeadCreatedFallsBackWhenEnqueueFails(t *testing.T) {
	sender := &fakeSender{}
	queue := &fakeEnqueuer{err: errors.New("redis down")}
	m := New(sender, queue, testReviewer, logger.New("development"))

	if err := m.handleLeadCreated(context.Background(), testEvent()); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(sender.emails()) != 2 {
		t.Errorf("expected direct-send fallback, got %d emails", len(sender.emails()))
	}
}

func TestHandlerRunsViaEventBus(t *testing.T) {
	sender := &fakeSender{}
	m := New(sender, nil, testReviewer, logger.New("development"))

	bus := platformevents.NewInMemoryBus(logger.New("development"))
	m.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), testEvent()); err != nil {
		t.Fatalf("publish returned error: %v", err)
	}
	if len(sender.emails()) != 2 {
		t.Errorf("expected 2 emails, got %d", len(sender.emails()))
	}
}
