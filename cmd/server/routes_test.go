package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/glamai/server/internal/errors"
)

func TestIPRateLimitMiddleware_DeniesWithPolicyCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ipRateLimitMiddleware("2-M"))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, get().Code)
	assert.Equal(t, http.StatusOK, get().Code)

	w := get()
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeTooManyRequests, resp.Error)
	assert.NotEmpty(t, resp.Message)
}
