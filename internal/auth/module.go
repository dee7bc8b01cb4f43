// Package auth provides agent login and token issuance.
package auth

import (
	"listing_backend/internal/auth/handler"
	"listing_backend/internal/auth/service"
	apphttp "listing_backend/internal/http"
	"listing_backend/platform/config"
	"listing_backend/platform/logger"
	"listing_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(cfg config.AuthConfig, val *validator.Validator, log *logger.Logger) *Module {
	return &Module{handler: handler.New(service.New(cfg, log), val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Login gets the stricter limiter
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	ctx.Protected.GET("/auth/me", m.handler.GetMe)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
