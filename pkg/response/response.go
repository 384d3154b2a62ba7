// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// APIResponse is the envelope. Detail carries the human readable outcome.
type APIResponse[T any] struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Success   bool      `json:"success"`
	Detail    string    `json:"detail"`
	Data      T         `json:"data,omitempty"`
	Meta      any       `json:"meta,omitempty"`
	Error     any       `json:"error,omitempty"`
}

func envelope[T any](c *gin.Context, status int, ok bool, detail string) APIResponse[T] {
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString(RequestIDKey),
		Success:   ok,
		Detail:    detail,
	}
}

// Success writes a success envelope. A zero status means 200.
func Success[T any](c *gin.Context, status int, data T, detail string, meta any) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := envelope[T](c, status, true, detail)
	resp.Data = data
	resp.Meta = meta
	c.JSON(status, resp)
	return resp
}

// Error writes an error envelope and aborts the handler chain. A zero status means 400.
func Error[T any](c *gin.Context, status int, detail string, err any) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := envelope[T](c, status, false, detail)
	resp.Error = err
	c.AbortWithStatusJSON(status, resp)
	return resp
}

// NotFound answers unknown routes with the standard envelope.
func NotFound(c *gin.Context) {
	Error[any](c, http.StatusNotFound, "Not found.", nil)
}
