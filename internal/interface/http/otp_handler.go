package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/application"
	"github.com/oksasatya/blinkmaid-backend/pkg/response"
)

// OTPHandler exposes the password reset flow.
type OTPHandler struct {
	Svc    *application.ResetService
	Logger *logrus.Logger
}

func NewOTPHandler(svc *application.ResetService, logger *logrus.Logger) *OTPHandler {
	return &OTPHandler{Svc: svc, Logger: logger}
}

type requestOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Via        string `json:"via" binding:"required,via"`
}

// verifyResetRequest has no binding rules; the reset flow reports missing fields itself.
type verifyResetRequest struct {
	Identifier  string `json:"identifier"`
	Via         string `json:"via"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// RequestOTP POST /api/otp/request/ {identifier, via}
func (h *OTPHandler) RequestOTP(c *gin.Context) {
	var req requestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	if err := h.Svc.RequestReset(c.Request.Context(), req.Identifier, req.Via); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "OTP sent if user exists.", nil)
}

// VerifyReset POST /api/otp/verify-reset/ {identifier, via, code, new_password}
func (h *OTPHandler) VerifyReset(c *gin.Context) {
	var req verifyResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	err := h.Svc.VerifyReset(c.Request.Context(), application.VerifyResetInput{
		Identifier:  req.Identifier,
		Via:         req.Via,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Password reset successful.", nil)
}
