package handlers

import (
	"errors"
	"net/http"

	"bengkel_service/internal/usecase"
	"bengkel_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
	errInvalidPeriod     = pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid period", http.StatusBadRequest)
)

func mapJobError(err error) *pkg.AppError {
	var (
		verr *usecase.ValidationError
		aerr *usecase.AuthorizationError
		perr *usecase.PersistenceError
	)
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidSaveType):
		return pkg.NewDomainErrorSimple("INVALID_SAVE_TYPE", "Unknown save type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLifecycleFieldInPatch):
		return pkg.NewDomainErrorSimple("LIFECYCLE_FIELD_IN_PATCH", "Close state can only change through close or reopen", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCloseNotConfirmed):
		return pkg.NewDomainErrorSimple("CLOSE_NOT_CONFIRMED", "Please confirm closing this job", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrZeroCostCloseNotAcknowledged):
		return pkg.NewDomainErrorSimple("ZERO_COST_NOT_ACKNOWLEDGED", "This job has no posted cost; confirm to close anyway", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDocumentNumberConflict):
		return pkg.NewDomainErrorSimple("DOCUMENT_NUMBER_CONFLICT", "Document number is already assigned to this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrNumberAllocationExhausted):
		return pkg.NewDomainErrorSimple("DOCUMENT_NUMBER_CONFLICT", "No free document number, please try again", http.StatusConflict)
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", "Required field is missing or invalid", err, http.StatusBadRequest)
	case errors.As(err, &aerr):
		return pkg.NewDomainError("FORBIDDEN", "Only owner or manager can reopen a job", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.As(err, &perr):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Save failed, please try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// writeError renders appErr in the language negotiated from Accept-Language.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.Localized(pkg.PrinterFor(c.GetHeader("Accept-Language"))))
}
