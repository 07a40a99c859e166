package repository

import (
	"context"

	"github.com/google/uuid"
)

// LeadsRepository is the persistence contract consumed by the service layer.
// *Repository is the pgx-backed implementation; tests substitute fakes.
type LeadsRepository interface {
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	List(ctx context.Context, offset, limit int) ([]Lead, error)
	Count(ctx context.Context) (int64, error)
	UpdateState(ctx context.Context, id uuid.UUID, state string) (Lead, error)
}

var _ LeadsRepository = (*Repository)(nil)
