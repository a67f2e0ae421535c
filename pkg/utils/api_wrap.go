package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	CodeValidation   = "validation_error"
	CodeNotFound     = "not_found"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeConflict     = "conflict"
	CodeInternal     = "internal_error"
)

type APIResponse struct {
	Status    string       `json:"status"`
	Code      int          `json:"code"`
	ErrorCode string       `json:"error_code,omitempty"`
	Message   string       `json:"message,omitempty"`
	TraceID   string       `json:"trace_id,omitempty"`
	Fields    []FieldError `json:"fields,omitempty"`
	Data      interface{}  `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respondData(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respondData(c, http.StatusCreated, data, message)
}

func respondData(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:    "error",
		Code:      code,
		ErrorCode: errorCodeFor(code),
		Message:   message,
		TraceID:   c.GetString("trace_id"),
	})
}

func errorCodeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	default:
		return CodeInternal
	}
}

func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:    "error",
			Code:      http.StatusBadRequest,
			ErrorCode: CodeValidation,
			Message:   verr.Error(),
			TraceID:   traceID,
			Fields:    verr.Fields,
		})
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrDestinationNotFound):
		RespondError(c, http.StatusNotFound, "Destination not found")
	case errors.Is(err, ErrExperienceNotFound):
		RespondError(c, http.StatusNotFound, "Experience not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrSeedForbidden):
		RespondError(c, http.StatusForbidden, "Seeding not allowed in production")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrTripConflict):
		c.JSON(http.StatusConflict, APIResponse{
			Status:    "error",
			Code:      http.StatusConflict,
			ErrorCode: "trip_conflict",
			Message:   "Trip was modified by another request, reload and retry",
			TraceID:   traceID,
		})
	case errors.Is(err, ErrDatabaseError):
		logrus.WithField("trace_id", traceID).WithError(err).Error("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logrus.WithField("trace_id", traceID).WithError(err).Error("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
