// internal/pkg/response/response.go

// Package response is the one wire envelope every handler speaks:
// {success, message, data?, error?}. Error responses abort the gin chain so
// no later handler writes a second body.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Error writes a failure envelope and aborts. The error's text travels in
// the envelope; callers pick the message the client should see.
func Error(c *gin.Context, status int, message string, err error) {
	env := Envelope{Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	c.AbortWithStatusJSON(status, env)
}

// Deny writes a failure envelope carrying a payload and aborts. The access
// gate uses it for its redirect contract, where the data is the point.
func Deny(c *gin.Context, status int, message string, data any) {
	c.AbortWithStatusJSON(status, Envelope{Message: message, Data: data})
}

func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}
