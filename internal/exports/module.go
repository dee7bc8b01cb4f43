// Package exports serves agent CSV downloads of captured leads.
package exports

import (
	apphttp "listing_backend/internal/http"
	"listing_backend/platform/logger"
)

// Module is the exports module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates the exports module over the lead store.
func NewModule(leads LeadSource, log *logger.Logger) *Module {
	return &Module{handler: NewHandler(leads, log)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "exports"
}

// RegisterRoutes mounts export routes behind agent auth.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/exports")
	group.GET("/leads.csv", m.handler.ExportLeadsCSV)
	group.GET("/google-ads/conversions.csv", m.handler.ExportGoogleAdsCSV)
}

var _ apphttp.Module = (*Module)(nil)
