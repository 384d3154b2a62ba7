package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/application"
	"github.com/oksasatya/blinkmaid-backend/pkg/response"
)

type ProviderHandler struct {
	Svc    *application.ProviderService
	Logger *logrus.Logger
}

func NewProviderHandler(svc *application.ProviderService, logger *logrus.Logger) *ProviderHandler {
	return &ProviderHandler{Svc: svc, Logger: logger}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// List GET /api/maids/?status=
func (h *ProviderHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "providers", map[string]any{"count": len(items)})
}

// Get GET /api/maids/:id/
func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "provider", nil)
}

// SetStatus POST /api/maids/:id/set_status/ {status}
func (h *ProviderHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.Svc.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": p.VerificationStatus}, "status updated", nil)
}

// Search GET /api/maids/search/?q=&size=
func (h *ProviderHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
