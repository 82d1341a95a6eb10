package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteops/backend/internal/domain/shared"
	"github.com/siteops/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, handlerFunc gin.HandlerFunc) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	router := gin.New()
	router.GET("/test", handlerFunc)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	w, resp := performRequest(t, func(c *gin.Context) {
		h.Success(c, gin.H{"value": 42})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	w, resp := performRequest(t, func(c *gin.Context) {
		h.Created(c, gin.H{"id": "abc"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
}

func TestBaseHandlerErrorWithCode(t *testing.T) {
	h := &BaseHandler{}
	w, resp := performRequest(t, func(c *gin.Context) {
		h.ErrorWithCode(c, dto.ErrCodeAlreadyExists, "duplicate")
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestBaseHandlerHandleError(t *testing.T) {
	h := &BaseHandler{}

	t.Run("domain error maps code to status", func(t *testing.T) {
		w, resp := performRequest(t, func(c *gin.Context) {
			h.HandleError(c, shared.NewDomainError("NOT_FOUND", "Item not found"))
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, "Item not found", resp.Error.Message)
	})

	t.Run("domain validation code keeps its status", func(t *testing.T) {
		w, resp := performRequest(t, func(c *gin.Context) {
			h.HandleError(c, shared.NewDomainError("NEGATIVE_QUANTITY", "Quantity cannot be negative"))
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "NEGATIVE_QUANTITY", resp.Error.Code)
	})

	t.Run("sentinel not found", func(t *testing.T) {
		w, resp := performRequest(t, func(c *gin.Context) {
			h.HandleError(c, shared.ErrNotFound)
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("already clocked in conflicts", func(t *testing.T) {
		w, resp := performRequest(t, func(c *gin.Context) {
			h.HandleError(c, shared.ErrAlreadyClockedIn)
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeAlreadyClockedIn, resp.Error.Code)
	})

	t.Run("not clocked in conflicts", func(t *testing.T) {
		w, resp := performRequest(t, func(c *gin.Context) {
			h.HandleError(c, shared.ErrNotClockedIn)
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeNotClockedIn, resp.Error.Code)
	})

	t.Run("unknown error returns internal", func(t *testing.T) {
		w, resp := performRequest(t, func(c *gin.Context) {
			h.HandleError(c, errors.New("boom"))
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
		// Internal details must not leak to the client
		assert.NotContains(t, resp.Error.Message, "boom")
	})
}

func TestGetRequestID(t *testing.T) {
	h := &BaseHandler{}

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		c.Set("request_id", "req-42")
		h.NotFound(c, "missing")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-42", resp.Error.RequestID)
}
