package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/pkg/apperror"
	"github.com/oksasatya/blinkmaid-backend/pkg/response"
	"github.com/oksasatya/blinkmaid-backend/pkg/validation"
)

const internalDetail = "Internal server error"

// respondError writes err as an envelope. Unclassified and internal errors are
// logged and reported with a generic detail.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		if logger != nil {
			logger.WithError(err).
				WithField("request_id", c.GetString(response.RequestIDKey)).
				WithField("path", c.FullPath()).
				Error("request failed")
		}
		response.Error[any](c, status, internalDetail, nil)
		return
	}
	response.Error[any](c, status, apperror.Message(err, http.StatusText(status)), nil)
}

func invalidPayload(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

// pathID parses the :id segment. It writes a 404 and returns false when it is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusNotFound, "Not found.", nil)
		return 0, false
	}
	return id, true
}
