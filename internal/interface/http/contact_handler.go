package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/application"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/pkg/response"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	FullName    string `json:"full_name" binding:"required,max=100"`
	PhoneNumber string `json:"phone_number" binding:"max=20"`
	Email       string `json:"email" binding:"required,email"`
	Message     string `json:"message" binding:"required"`
}

// Submit POST /api/contact/
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	m := &entity.ContactMessage{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Message:     req.Message,
	}
	if err := h.Svc.Submit(c.Request.Context(), m); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, m, "message received", nil)
}

// List GET /api/admin/contact-messages/
func (h *ContactHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "contact messages", map[string]any{"count": len(items)})
}
