// Package apperror turns handler failures into uniform JSON error bodies.
package apperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error is a client-facing failure. Message and Payload are rendered as
// {"message": ..., <payload fields>}; Err is kept for logs only.
type Error struct {
	Status  int
	Message string
	Payload map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithPayload returns a copy of e carrying extra body fields
func (e *Error) WithPayload(payload map[string]any) *Error {
	clone := *e
	clone.Payload = payload
	return &clone
}

// Body builds the JSON object sent to the client
func (e *Error) Body() gin.H {
	body := gin.H{}
	for k, v := range e.Payload {
		body[k] = v
	}
	body["message"] = e.Message
	return body
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal wraps an unexpected failure. Only message reaches the client.
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// Abort records err on the context and stops the handler chain. Handler
// renders it once the chain unwinds.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Handler renders the last error recorded on the context when nothing has
// been written yet. Errors that are not *Error become a generic 500.
func Handler(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *Error
		if !errors.As(err, &appErr) {
			appErr = Internal("Internal server error", err)
		}

		if appErr.Status >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error(appErr.Message)
		}

		c.JSON(appErr.Status, appErr.Body())
	}
}
