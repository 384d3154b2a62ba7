package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/application"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/internal/interface/middleware"
	"github.com/oksasatya/blinkmaid-backend/pkg/response"
)

const maxImageBytes = 5 << 20

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone_number" binding:"omitempty,phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Pincode   *string `json:"pincode"`
	Gender    *string `json:"gender" binding:"omitempty,gender"`
}

// Dashboard GET /api/dashboard/ returns the user plus counts, profile or message by role.
func (h *UserHandler) Dashboard(c *gin.Context) {
	d, err := h.Svc.Dashboard(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	data := gin.H{"user": presentUser(d.User)}
	switch {
	case d.Counts != nil:
		data["counts"] = d.Counts
	case d.User.Role == entity.RoleProvider:
		if d.Profile != nil {
			data["profile"] = d.Profile
		} else {
			data["profile"] = gin.H{}
		}
	default:
		data["message"] = d.Message
	}
	response.Success(c, http.StatusOK, data, "dashboard", nil)
}

// UpdateProfile PUT /api/profile/
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Pincode:   req.Pincode,
		Gender:    req.Gender,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presentUser(u), "profile updated", nil)
}

// UploadImage POST /api/profile/image/ multipart field "image".
func (h *UserHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image is required", nil)
		return
	}
	if fh.Size > maxImageBytes {
		response.Error[any](c, http.StatusBadRequest, "image must be at most 5MB", nil)
		return
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		response.Error[any](c, http.StatusBadRequest, "file must be an image", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read image", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadProfileImage(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), f, fh.Filename, ct)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile_image": url}, "profile image updated", nil)
}
