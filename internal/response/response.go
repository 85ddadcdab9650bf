package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the standardized API response wrapper. Every endpoint, success
// or failure, returns this shape.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError carries a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination describes the position of a list result within the full set.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// NewPagination computes pagination metadata for a list response.
// Pages is ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Current: page, Pages: pages, Total: total}
}

// OK sends a 200 response with the given data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// OKWithMessage sends a 200 response with a message and optional data.
func OKWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created sends a 201 response with a message and the created document.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail sends an error response with the given status code and message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: false, Message: message})
}

// FailWithErrors sends a 400 validation failure with field-level details.
func FailWithErrors(c *gin.Context, message string, errs []FieldError) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message, Errors: errs})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Success: false, Message: message})
}
