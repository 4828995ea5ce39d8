package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrSessionNotFound     = errors.New("wizard session not found")
	ErrSessionSubmitted    = errors.New("wizard session already submitted")
	ErrSubmissionInFlight  = errors.New("submission already in progress")
	ErrInvalidSlot         = errors.New("unknown image slot for this variant")
	ErrPhotoRequired       = errors.New("required photo is missing")
	ErrNameRequired        = errors.New("restaurant name is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("photo upload to storage failed")
	ErrAnalysisTimeout     = errors.New("analysis exceeded the time budget")
	ErrAnalysisUnreachable = errors.New("analysis service unreachable")
	ErrAnalysisFailed      = errors.New("analysis service reported a failure")
	ErrMalformedResult     = errors.New("analysis response is not a valid inspection result")
	ErrResultNotFound      = errors.New("no inspection result stored for this session")
	ErrReportUnavailable   = errors.New("pdf report not available")
)
