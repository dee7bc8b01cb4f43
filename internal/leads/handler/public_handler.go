package handler

import (
	"net/http"
	"slices"
	"strconv"

	"listing_backend/internal/leads/service"
	"listing_backend/internal/leads/transport"
	"listing_backend/platform/httpkit"
	"listing_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// PublicHandler handles the unauthenticated qualification wizard endpoints.
type PublicHandler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	publicMsgInvalidRequest   = "Invalid request"
	publicMsgValidationFailed = "Please check the highlighted fields"
	publicMsgUnknownStep      = "Unknown form step"
)

// NewPublicHandler creates a new public handler.
func NewPublicHandler(svc *service.Service, val *validator.Validator) *PublicHandler {
	return &PublicHandler{svc: svc, val: val}
}

// RegisterRoutes registers wizard routes under /public/leads.
// submitLimits guard only the final submit; step checks and score
// previews run on every "Next" and stay unthrottled.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup, submitLimits ...gin.HandlerFunc) {
	rg.POST("", append(slices.Clone(submitLimits), h.Submit)...)
	rg.POST("/steps/:step", h.ValidateStep)
	rg.POST("/score", h.PreviewScore)
}

// Submit stores the completed wizard.
// POST /api/v1/public/leads
func (h *PublicHandler) Submit(c *gin.Context) {
	var req transport.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, publicMsgInvalidRequest, nil)
		return
	}
	req.Clean()
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, publicMsgValidationFailed, transport.ValidationMessages(err))
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// ValidateStep checks one wizard step so the frontend can gate "Next".
// POST /api/v1/public/leads/steps/:step
func (h *PublicHandler) ValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		httpkit.Error(c, http.StatusNotFound, publicMsgUnknownStep, nil)
		return
	}

	var payload any
	var contact *transport.Step3Request
	switch step {
	case 1:
		payload = &transport.Step1Request{}
	case 2:
		payload = &transport.Step2Request{}
	case 3:
		contact = &transport.Step3Request{}
		payload = contact
	default:
		httpkit.Error(c, http.StatusNotFound, publicMsgUnknownStep, nil)
		return
	}

	if err := c.ShouldBindJSON(payload); err != nil {
		httpkit.Error(c, http.StatusBadRequest, publicMsgInvalidRequest, nil)
		return
	}
	if contact != nil {
		contact.Clean()
	}
	if err := h.val.Struct(payload); err != nil {
		httpkit.Error(c, http.StatusBadRequest, publicMsgValidationFailed, transport.ValidationMessages(err))
		return
	}

	httpkit.OK(c, transport.StepValidationResponse{Step: step, Valid: true})
}

// PreviewScore scores interest answers without storing anything.
// POST /api/v1/public/leads/score
func (h *PublicHandler) PreviewScore(c *gin.Context) {
	var req transport.ScorePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, publicMsgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, publicMsgValidationFailed, transport.ValidationMessages(err))
		return
	}

	httpkit.OK(c, h.svc.Preview(req))
}
