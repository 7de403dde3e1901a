package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the envelope every enveloped endpoint returns. The feed API is
// exempt and writes raw payloads.
type Body struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta carries the pagination counters of a listing.
type Meta struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
	Total int `json:"total,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

// Paged wraps one listing page with its pagination meta.
func Paged(c *gin.Context, items any, meta *Meta) {
	c.JSON(http.StatusOK, Body{Success: true, Data: items, Meta: meta})
}

// Failure writes an error envelope with the given status. Handlers derive
// the status from their domain error mapping.
func Failure(c *gin.Context, status int, code, message string) {
	c.JSON(status, Body{Success: false, Error: &Error{Code: code, Message: message}})
}

// Invalid reports a validation failure with field-level details.
func Invalid(c *gin.Context, message string, details any) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Error: &Error{
		Code:    "VALIDATION_FAILED",
		Message: message,
		Details: details,
	}})
}

func BadRequest(c *gin.Context, message string) {
	Failure(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	Failure(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c *gin.Context, message string) {
	Failure(c, http.StatusForbidden, "FORBIDDEN", message)
}

func InternalServerError(c *gin.Context, message string) {
	Failure(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
