package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

// Lead is the persisted lead record. Callers always receive value copies;
// the repository never hands out references into storage.
type Lead struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	ResumePath string
	State      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateLeadParams struct {
	FirstName  string
	LastName   string
	Email      string
	ResumePath string
	State      string
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a lead and returns the stored record with its generated id
// and timestamps. A single INSERT..RETURNING keeps the write atomic: either
// the full row is committed or nothing is visible.
func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (first_name, last_name, email, resume_path, state)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, email, resume_path, state, created_at, updated_at
	`,
		params.FirstName, params.LastName, params.Email, params.ResumePath, params.State,
	).Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
		&lead.ResumePath, &lead.State, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return Lead{}, err
	}

	return lead, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, resume_path, state, created_at, updated_at
		FROM leads WHERE id = $1
	`, id).Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
		&lead.ResumePath, &lead.State, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

// List returns a page of leads ordered newest first. The id tie break keeps
// ordering deterministic when two rows share a created_at timestamp.
func (r *Repository) List(ctx context.Context, offset, limit int) ([]Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, resume_path, state, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Lead, 0)
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
			&lead.ResumePath, &lead.State, &lead.CreatedAt, &lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&total)
	return total, err
}

// UpdateState sets the lead state and refreshes updated_at in one statement.
// Row-level isolation in Postgres serializes concurrent updates to the same
// id, so the last committed write wins without corrupting the pair.
func (r *Repository) UpdateState(ctx context.Context, id uuid.UUID, state string) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		UPDATE leads
		SET state = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, resume_path, state, created_at, updated_at
	`, id, state).Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
		&lead.ResumePath, &lead.State, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}
