package service

import (
	"context"
	"errors"
	"io"
	"path"

	"leadintake/internal/events"
	"leadintake/internal/leads/repository"
	"leadintake/internal/leads/transport"
	"leadintake/internal/storage"
	"leadintake/platform/apperr"
	"leadintake/platform/validator"

	"github.com/google/uuid"
)

// ResumeUpload carries the streamed résumé file from the HTTP boundary.
type ResumeUpload struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// Service orchestrates the lead lifecycle: creation, lookup, listing and
// state transitions. Persistence, file storage and notification are reached
// only through their ports.
type Service struct {
	repo          repository.LeadsRepository
	store         storage.Storage
	bus           events.Bus
	val           *validator.Validator
	maxUploadSize int64
}

func New(repo repository.LeadsRepository, store storage.Storage, bus events.Bus, val *validator.Validator, maxUploadSize int64) *Service {
	return &Service{
		repo:          repo,
		store:         store,
		bus:           bus,
		val:           val,
		maxUploadSize: maxUploadSize,
	}
}

// Create validates the submission, stores the résumé, persists the lead in
// PENDING state and publishes LeadCreated for best-effort notification.
// Validation runs before any side effect; a storage failure prevents the
// insert; a persistence failure leaves the stored file as an accepted orphan.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest, resume ResumeUpload) (transport.LeadResponse, error) {
	if err := s.val.Struct(req); err != nil {
		return transport.LeadResponse{}, apperr.Validation("validation failed").WithDetails(err.Error())
	}
	if resume.Reader == nil {
		return transport.LeadResponse{}, apperr.Validation("resume file is required")
	}
	if err := storage.ValidateContentType(resume.ContentType); err != nil {
		return transport.LeadResponse{}, apperr.Validation(err.Error())
	}
	if resume.Size > 0 {
		if err := storage.ValidateFileSize(resume.Size, s.maxUploadSize); err != nil {
			return transport.LeadResponse{}, apperr.Validation(err.Error())
		}
	}

	resumePath, err := s.store.Save(ctx, resume.Reader, resume.Size, uniqueResumeName(resume.Filename))
	if err != nil {
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindStorage, "failed to store uploaded resume", err)
	}

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		ResumePath: resumePath,
		State:      string(transport.LeadStatePending),
	})
	if err != nil {
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to persist lead", err)
	}

	// The lead is durably committed at this point; notification is
	// fire-and-forget and must never fail the request.
	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent:  events.NewBaseEvent(),
		LeadID:     lead.ID,
		FirstName:  lead.FirstName,
		LastName:   lead.LastName,
		Email:      lead.Email,
		ResumePath: lead.ResumePath,
	})

	return toLeadResponse(lead), nil
}

// GetByID resolves a lead by its string identifier. Malformed identifiers
// arrive as untyped path segments and map to NotFound, never to an error.
func (s *Service) GetByID(ctx context.Context, id string) (transport.LeadResponse, error) {
	leadID, err := uuid.Parse(id)
	if err != nil {
		return transport.LeadResponse{}, apperr.NotFound("lead not found")
	}

	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		}
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load lead", err)
	}

	return toLeadResponse(lead), nil
}

// List returns one page of leads ordered newest first, with the total count
// across all pages. A page past the end yields empty items with real totals.
func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	req.Defaults()
	if err := s.val.Struct(req); err != nil {
		return transport.LeadListResponse{}, apperr.Validation("validation failed").WithDetails(err.Error())
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return transport.LeadListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to count leads", err)
	}

	page, pageSize := *req.Page, *req.PageSize
	offset := (page - 1) * pageSize
	items, err := s.repo.List(ctx, offset, pageSize)
	if err != nil {
		return transport.LeadListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	responses := make([]transport.LeadResponse, 0, len(items))
	for _, lead := range items {
		responses = append(responses, toLeadResponse(lead))
	}

	return transport.LeadListResponse{
		Items:      responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// UpdateState transitions a lead to the requested state. Both edges of the
// two-node state graph are legal; unknown and malformed ids map to NotFound.
func (s *Service) UpdateState(ctx context.Context, id string, req transport.UpdateLeadStateRequest) (transport.LeadResponse, error) {
	if err := s.val.Struct(req); err != nil {
		return transport.LeadResponse{}, apperr.Validation("validation failed").WithDetails(err.Error())
	}

	leadID, err := uuid.Parse(id)
	if err != nil {
		return transport.LeadResponse{}, apperr.NotFound("lead not found")
	}

	lead, err := s.repo.UpdateState(ctx, leadID, string(req.State))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound("lead not found")
		}
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to update lead state", err)
	}

	return toLeadResponse(lead), nil
}

// uniqueResumeName generates a collision-resistant stored filename,
// preserving the original extension when one exists.
func uniqueResumeName(original string) string {
	return uuid.New().String() + path.Ext(original)
}

func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func toLeadResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:         lead.ID,
		FirstName:  lead.FirstName,
		LastName:   lead.LastName,
		Email:      lead.Email,
		ResumePath: lead.ResumePath,
		State:      transport.LeadState(lead.State),
		CreatedAt:  lead.CreatedAt,
		UpdatedAt:  lead.UpdatedAt,
	}
}
