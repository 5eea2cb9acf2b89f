package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handlers ...gin.HandlerFunc) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handlers...)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestSuccess_Envelope(t *testing.T) {
	w, env := serve(t, func(c *gin.Context) {
		Success(c, http.StatusOK, "done", gin.H{"n": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "done", env.Message)
	assert.Empty(t, env.Error)
}

// Error aborts the chain: a later handler must not write a second body.
func TestError_AbortsChain(t *testing.T) {
	w, env := serve(t,
		func(c *gin.Context) {
			Error(c, http.StatusBadGateway, "upstream failed", errors.New("boom"))
		},
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"leak": true})
		},
	)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "upstream failed", env.Message)
	assert.Equal(t, "boom", env.Error)
	assert.NotContains(t, w.Body.String(), "leak")
}

func TestDeny_CarriesPayload(t *testing.T) {
	w, env := serve(t, func(c *gin.Context) {
		Deny(c, http.StatusUnauthorized, "authentication required", gin.H{
			"redirect": "/login",
			"from":     "/reports",
		})
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/login", data["redirect"])
	assert.Equal(t, "/reports", data["from"])
}
