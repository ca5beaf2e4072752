// Package handler provides HTTP handlers for group directory endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse sends an error response.
func errorResponse(c *gin.Context, code, message string, status int) {
	c.JSON(status, ErrorResponse{
		Error: struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// notFoundResponse sends the generic not-found response. Unknown groups
// and hidden groups the principal may not see share this answer.
func notFoundResponse(c *gin.Context) {
	errorResponse(c, "NOT_FOUND", "group not found", http.StatusNotFound)
}
