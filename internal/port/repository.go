package port

import (
	"context"

	"github.com/google/uuid"

	"fahs/internal/domain"
)

// SessionRepository defines the contract for wizard session persistence.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WizardSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error)
	UpdateStep(ctx context.Context, id uuid.UUID, step int) error
	UpdateDetails(ctx context.Context, id uuid.UUID, restaurantName, commercialRegister string) error

	// TransitionStatus flips the session status from one value to another in
	// a single statement. Returns domain.ErrSubmissionInFlight when the row
	// is not in the expected state; this is the double-submission guard.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.SessionStatus) error

	// StoreResult records the raw analysis payload and marks the session
	// submitted. The payload is write-once: a second call for the same
	// session is refused.
	StoreResult(ctx context.Context, id uuid.UUID, inspectionID string, payload []byte) error
}

// PhotoRepository defines the contract for staged photo metadata.
// At most one row exists per (session, slot); Stage replaces any prior row.
type PhotoRepository interface {
	Stage(ctx context.Context, photo *domain.StagedPhoto) error
	GetBySlot(ctx context.Context, sessionID uuid.UUID, slot domain.ImageSlot) (*domain.StagedPhoto, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.StagedPhoto, error)
	Remove(ctx context.Context, sessionID uuid.UUID, slot domain.ImageSlot) error
}

// InspectionRepository defines the contract for completed inspection records.
type InspectionRepository interface {
	Create(ctx context.Context, inspection *domain.Inspection) error
	GetByID(ctx context.Context, inspectionID string) (*domain.Inspection, error)
}
