package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondValidation reports field-level problems with a 400.
func RespondValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		TraceID: traceID(c),
		Errors:  fields,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrPlaceNotFound):
		RespondError(c, http.StatusNotFound, "Place not found")
	case errors.Is(err, ErrReviewNotFound):
		RespondError(c, http.StatusNotFound, "Review not found")
	case errors.Is(err, ErrPendingNotFound):
		RespondError(c, http.StatusNotFound, "Pending action not found or expired")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrTokenRevoked):
		RespondError(c, http.StatusUnauthorized, "Token is logged out")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrInvalidRating):
		RespondValidation(c, map[string]string{"rating": "Rating must be between 1 and 5"})
	case errors.Is(err, ErrInvalidPlaceKind):
		RespondValidation(c, map[string]string{"kind": "Kind must be one of: place, restaurant, hotel"})
	case errors.Is(err, ErrPasswordTooLong):
		RespondValidation(c, map[string]string{"password": "Password must be at most 72 bytes"})
	case errors.Is(err, ErrUnsupportedMedia):
		RespondValidation(c, map[string]string{"images": "Images must be jpeg, png, gif or webp"})
	case errors.Is(err, ErrUnsupportedAction):
		RespondError(c, http.StatusBadRequest, "Unsupported action")
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrMediaStorage):
		slog.Error("service failure", "error", err, "trace_id", traceID(c))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		slog.Error("unknown error", "error", err, "trace_id", traceID(c))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
