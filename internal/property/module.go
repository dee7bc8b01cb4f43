// Package property serves the single listing the site markets.
package property

import (
	apphttp "listing_backend/internal/http"
	"listing_backend/platform/logger"
)

// Module wires the public listing routes.
type Module struct {
	handler *Handler
	service *Service
}

func NewModule(listing Listing, resolver PhotoURLResolver, log *logger.Logger) *Module {
	svc := NewService(listing, resolver, log)
	return &Module{handler: NewHandler(svc), service: svc}
}

func (m *Module) Name() string {
	return "property"
}

// Service returns the listing service for other modules.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Public.Group("/property")
	group.GET("", m.handler.GetListing)
	group.GET("/photos", m.handler.ListPhotos)
}

var _ apphttp.Module = (*Module)(nil)
