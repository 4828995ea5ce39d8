package port

import (
	"context"

	"fahs/internal/domain"
)

// SubmissionImage is one photo attached to an analysis submission.
type SubmissionImage struct {
	Slot        domain.ImageSlot
	ContentType string
	Data        []byte
}

// Submission carries everything sent to the analysis API in one request.
type Submission struct {
	RestaurantName     string
	CommercialRegister string
	Images             []SubmissionImage
}

// AnalysisOutcome holds the decoded result together with the raw response
// bytes, which are stored verbatim so the payload round-trips unchanged.
type AnalysisOutcome struct {
	Result  *domain.InspectionResult
	RawBody []byte
}

// AnalysisClient abstracts the external inspection-analysis API. Exactly one
// HTTP request is issued per Analyze call; there is no automatic retry.
type AnalysisClient interface {
	Analyze(ctx context.Context, submission Submission) (*AnalysisOutcome, error)
}
