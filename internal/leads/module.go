// Package leads provides the lead intake bounded context module.
// This file defines the module that encapsulates all leads setup and route
// registration.
package leads

import (
	"leadintake/internal/events"
	"leadintake/internal/leads/handler"
	"leadintake/internal/leads/repository"
	"leadintake/internal/leads/service"
	"leadintake/internal/storage"
	"leadintake/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module.
type Module struct {
	svc           *service.Service
	publicHandler *handler.PublicHandler
	handler       *handler.Handler
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, store storage.Storage, bus events.Bus, val *validator.Validator, maxUploadSize int64) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, store, bus, val, maxUploadSize)

	return &Module{
		svc:           svc,
		publicHandler: handler.NewPublicHandler(svc),
		handler:       handler.New(svc),
	}
}

// Service returns the lead lifecycle service for external use.
func (m *Module) Service() *service.Service {
	return m.svc
}

// RegisterRoutes mounts the public and internal lead routes.
func (m *Module) RegisterRoutes(public, internal *gin.RouterGroup) {
	m.publicHandler.RegisterRoutes(public.Group("/leads"))
	m.handler.RegisterRoutes(internal.Group("/leads"))
}
