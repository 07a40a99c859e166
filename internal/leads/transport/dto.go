package transport

import (
	"time"

	"github.com/google/uuid"
)

// LeadState is the two-value lifecycle state of a lead.
type LeadState string

const (
	LeadStatePending    LeadState = "PENDING"
	LeadStateReachedOut LeadState = "REACHED_OUT"
)

// Valid reports whether s is one of the enumerated states.
func (s LeadState) Valid() bool {
	return s == LeadStatePending || s == LeadStateReachedOut
}

// Request DTOs

type CreateLeadRequest struct {
	FirstName string `form:"first_name" validate:"required,min=1,max=100"`
	LastName  string `form:"last_name" validate:"required,min=1,max=100"`
	Email     string `form:"email" validate:"required,email,max=255"`
}

type UpdateLeadStateRequest struct {
	State LeadState `json:"state" validate:"required,oneof=PENDING REACHED_OUT"`
}

// ListLeadsRequest binds pagination as pointers so an absent parameter is
// distinguishable from an explicit zero: only the former takes a default,
// the latter is rejected by validation.
type ListLeadsRequest struct {
	Page     *int `form:"page" validate:"required,min=1"`
	PageSize *int `form:"page_size" validate:"required,min=1,max=100"`
}

// Defaults fills in the documented defaults for absent pagination fields.
func (r *ListLeadsRequest) Defaults() {
	if r.Page == nil {
		r.Page = intPtr(1)
	}
	if r.PageSize == nil {
		r.PageSize = intPtr(10)
	}
}

func intPtr(v int) *int { return &v }

// Response DTOs

type LeadResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	ResumePath string    `json:"resume_path"`
	State      LeadState `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LeadListResponse struct {
	Items      []LeadResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

type PingResponse struct {
	Message string `json:"message"`
}
