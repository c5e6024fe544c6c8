package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSendList(t *testing.T) {
	w, resp := record(t, func(c *gin.Context) {
		SendList(c, []string{"a", "b"}, 2)
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
	assert.Nil(t, resp.Error)
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		send   gin.HandlerFunc
		status int
		code   string
	}{
		{"validation", func(c *gin.Context) { SendValidationError(c, "Invalid request", "name is required") }, http.StatusBadRequest, ErrCodeValidation},
		{"unauthorized", func(c *gin.Context) { SendUnauthorized(c, "no token") }, http.StatusUnauthorized, ErrCodeUnauthorized},
		{"forbidden", func(c *gin.Context) { SendForbidden(c, "other club") }, http.StatusForbidden, ErrCodeForbidden},
		{"not found", func(c *gin.Context) { SendNotFound(c, "Club not found") }, http.StatusNotFound, ErrCodeNotFound},
		{"rejected", func(c *gin.Context) { SendRejected(c, "academy has no free slots") }, http.StatusConflict, ErrCodeRejected},
		{"rate limited", func(c *gin.Context) { SendTooManyRequests(c) }, http.StatusTooManyRequests, ErrCodeRateLimited},
		{"internal", func(c *gin.Context) { SendInternalError(c, "boom") }, http.StatusInternalServerError, ErrCodeInternal},
		{"unknown code", func(c *gin.Context) { SendError(c, NewAppError("TEAPOT", "odd")) }, http.StatusInternalServerError, "TEAPOT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := record(t, tt.send)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestSendRejectedCarriesReason(t *testing.T) {
	_, resp := record(t, func(c *gin.Context) {
		SendRejected(c, "academy has no free slots")
	})
	require.NotNil(t, resp.Error)
	assert.Equal(t, "academy has no free slots", resp.Error.Details)
	assert.Equal(t, "Operation rejected: academy has no free slots", resp.Error.Error())
}
