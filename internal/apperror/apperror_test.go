package apperror

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	router := gin.New()
	router.Use(Handler(log))
	router.GET("/", handler)
	return router
}

func serve(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandlerRendersAppError(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		Abort(c, NotFound("Planet not found"))
	})

	w := serve(router)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Planet not found"}`, w.Body.String())
}

func TestHandlerMergesPayload(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		Abort(c, BadRequest("Missing required fields").WithPayload(map[string]any{"fields": []string{"email"}}))
	})

	w := serve(router)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message": "Missing required fields", "fields": ["email"]}`, w.Body.String())
}

func TestHandlerHidesUnknownErrors(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		Abort(c, errors.New("pq: connection refused"))
	})

	w := serve(router)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message": "Internal server error"}`, w.Body.String())
}

func TestHandlerKeepsInternalCauseOutOfBody(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		Abort(c, Internal("Failed to create planet", errors.New("disk full")))
	})

	w := serve(router)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message": "Failed to create planet"}`, w.Body.String())
}

func TestHandlerLeavesWrittenResponsesAlone(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"message": "already written"})
		_ = c.Error(errors.New("late"))
	})

	w := serve(router)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"message": "already written"}`, w.Body.String())
}

func TestWithPayloadDoesNotMutateOriginal(t *testing.T) {
	base := BadRequest("bad")
	_ = base.WithPayload(map[string]any{"x": 1})
	assert.Nil(t, base.Payload)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Internal("msg", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "msg: cause", err.Error())
}
