package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldError mirrors the per-field validation entries of the API contract.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func RespondWithValidationErrors(c *gin.Context, errs []FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": errs})
}
