package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fahs/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response. Redirect carries the path
// the client should navigate to for errors that end the current flow.
type APIError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "wizard session not found"
	case errors.Is(err, domain.ErrSessionSubmitted):
		return http.StatusConflict, "SESSION_SUBMITTED", "session has already been submitted"
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, "SUBMISSION_IN_FLIGHT", "a submission for this session is already in progress"
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, "INVALID_SLOT", "unknown image slot for this deployment"
	case errors.Is(err, domain.ErrPhotoRequired):
		return http.StatusBadRequest, "PHOTO_REQUIRED", "a required photo has not been staged"
	case errors.Is(err, domain.ErrNameRequired):
		return http.StatusBadRequest, "NAME_REQUIRED", "restaurant name is required"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "photo upload to storage failed"
	case errors.Is(err, domain.ErrAnalysisTimeout):
		return http.StatusGatewayTimeout, "ANALYSIS_TIMEOUT", "the analysis service did not respond in time; try again"
	case errors.Is(err, domain.ErrAnalysisUnreachable):
		return http.StatusBadGateway, "ANALYSIS_UNREACHABLE", "could not reach the analysis service; check connectivity"
	case errors.Is(err, domain.ErrAnalysisFailed):
		return http.StatusBadGateway, "ANALYSIS_FAILED", "the analysis service reported a failure"
	case errors.Is(err, domain.ErrMalformedResult):
		return http.StatusBadGateway, "MALFORMED_RESULT", "the analysis response is not a valid inspection result"
	case errors.Is(err, domain.ErrResultNotFound):
		return http.StatusNotFound, "RESULT_NOT_FOUND", "no inspection result is stored; start a new inspection"
	case errors.Is(err, domain.ErrReportUnavailable):
		return http.StatusNotFound, "REPORT_UNAVAILABLE", "no pdf report is attached to this result"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// A missing result additionally tells the client to restart the intake flow.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	if errors.Is(err, domain.ErrResultNotFound) {
		c.JSON(status, APIResponse{
			Success: false,
			Error:   &APIError{Code: code, Message: msg, Redirect: "/api/v1/sessions"},
		})
		return
	}
	RespondError(c, status, code, msg)
}
