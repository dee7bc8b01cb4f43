// Package leads provides the lead qualification bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"listing_backend/internal/events"
	apphttp "listing_backend/internal/http"
	"listing_backend/internal/leads/handler"
	"listing_backend/internal/leads/repository"
	"listing_backend/internal/leads/service"
	"listing_backend/platform/logger"
	"listing_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
	repo          *repository.Repository
}

// NewModule creates and initializes the leads module with all its dependencies.
// A nil guard disables duplicate detection.
func NewModule(pool *pgxpool.Pool, guard service.DuplicateGuard, eventBus events.Bus, listing service.Listing, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, guard, eventBus, listing, log)

	return &Module{
		handler:       handler.New(svc, val),
		publicHandler: handler.NewPublicHandler(svc, val),
		repo:          repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Repository returns the lead store, used by background notification delivery.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.publicHandler.RegisterRoutes(ctx.Public.Group("/leads"), ctx.PublicRateLimiter.RateLimit())

	m.handler.RegisterRoutes(ctx.Protected.Group("/leads"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
