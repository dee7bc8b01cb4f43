// Package http provides HTTP server infrastructure including the Module interface
// that all domain modules must implement for route registration.
package http

import (
	"listing_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router group.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
type RouterContext struct {
	// V1 is the /api/v1 route group.
	V1 *gin.RouterGroup
	// Public is the unauthenticated /api/v1/public group.
	Public *gin.RouterGroup
	// Protected is the agent-only route group under /api/v1.
	Protected *gin.RouterGroup
	// AuthRateLimiter is the stricter rate limiter for login.
	AuthRateLimiter *httpkit.IPRateLimiter
	// PublicRateLimiter limits form submissions per IP.
	PublicRateLimiter *httpkit.IPRateLimiter
}
