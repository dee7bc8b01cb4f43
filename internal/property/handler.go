package property

import (
	"net/http"

	"listing_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the public listing endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetListing handles GET /api/v1/public/property
func (h *Handler) GetListing(c *gin.Context) {
	httpkit.OK(c, h.svc.Get(c.Request.Context()))
}

// ListPhotos handles GET /api/v1/public/property/photos?category=...
func (h *Handler) ListPhotos(c *gin.Context) {
	var req PhotosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "unknown photo category", nil)
		return
	}

	httpkit.OK(c, h.svc.Photos(c.Request.Context(), req.Category))
}
