package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Helpers for the multipart admin forms, where every value arrives as text.

func formFloat(c *gin.Context, key string, fallback float64) float64 {
	v := c.PostForm(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func formInt(c *gin.Context, key string, fallback int) int {
	v := c.PostForm(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func formBool(c *gin.Context, key string, fallback bool) bool {
	v := c.PostForm(key)
	switch v {
	case "":
		return fallback
	case "1", "true", "on":
		return true
	}
	return false
}

func formUintPtr(c *gin.Context, key string) *uint {
	v := c.PostForm(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(n)
	return &id
}

// queryInt reads a positive integer query parameter. Zero, negative and
// unparsable values all yield the fallback, so ?limit=0 serves the default
// page size rather than an empty page.
func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// formStringList accepts either repeated form fields (tags=a&tags=b) or a
// single JSON-encoded array, as the admin panel sends both shapes.
func formStringList(c *gin.Context, key string) []string {
	values := c.PostFormArray(key)
	if len(values) == 1 {
		var decoded []string
		if err := json.Unmarshal([]byte(values[0]), &decoded); err == nil {
			return decoded
		}
	}
	if values == nil {
		return []string{}
	}
	return values
}
