package notify

import (
	"context"

	"github.com/hibiken/asynq"
)

// NewMux builds the asynq handler mux for the notification worker. The
// module delivers each queued task with its usual swallow-and-log semantics,
// so a transient SMTP failure never poisons the queue with retry storms.
func NewMux(m *Module) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskLeadCreated, func(ctx context.Context, task *asynq.Task) error {
		payload, err := ParseLeadCreatedPayload(task)
		if err != nil {
			// Malformed payload: drop, retrying cannot fix it.
			return nil
		}
		m.Deliver(ctx, payload)
		return nil
	})
	return mux
}
