package notify

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskLeadCreated = "notify:lead_created"

// LeadCreatedPayload is the queued task payload for lead notification emails.
type LeadCreatedPayload struct {
	LeadID    string `json:"leadId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func NewLeadCreatedTask(payload LeadCreatedPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadCreated, data), nil
}

func ParseLeadCreatedPayload(task *asynq.Task) (LeadCreatedPayload, error) {
	var payload LeadCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadCreatedPayload{}, err
	}
	return payload, nil
}
