package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fahs/internal/config"
	"fahs/internal/domain"
	"fahs/internal/port"
	"fahs/internal/wizard"
)

// PhotoUploadInput is the DTO for staging a photo into a slot.
type PhotoUploadInput struct {
	SessionID uuid.UUID
	Slot      domain.ImageSlot
	File      multipart.File
	Header    *multipart.FileHeader
}

// StartSessionOutput carries a fresh session and its bearer token.
type StartSessionOutput struct {
	Session   *domain.WizardSession `json:"session"`
	Token     string                `json:"token"`
	ExpiresAt int64                 `json:"expires_at"`
}

// SessionView is a session together with its currently staged photos.
type SessionView struct {
	Session *domain.WizardSession `json:"session"`
	Photos  []domain.StagedPhoto  `json:"photos"`
}

// WizardService defines the intake-form orchestration contract.
type WizardService interface {
	StartSession(ctx context.Context) (*StartSessionOutput, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, restaurantName, commercialRegister string) (*domain.WizardSession, error)
	StagePhoto(ctx context.Context, input PhotoUploadInput) (*domain.StagedPhoto, error)
	PhotoPreviewURL(ctx context.Context, id uuid.UUID, slot domain.ImageSlot) (string, error)
	RemovePhoto(ctx context.Context, id uuid.UUID, slot domain.ImageSlot) error
	Advance(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error)
	Submit(ctx context.Context, id uuid.UUID) (*domain.InspectionResult, error)
	Variant() wizard.Variant
}

type wizardService struct {
	sessions    port.SessionRepository
	photos      port.PhotoRepository
	inspections port.InspectionRepository
	storage     port.ObjectStorage
	analysis    port.AnalysisClient
	tokens      TokenService
	s3cfg       *config.S3Config
	variant     wizard.Variant
}

// NewWizardService creates a new WizardService implementation.
func NewWizardService(
	sessions port.SessionRepository,
	photos port.PhotoRepository,
	inspections port.InspectionRepository,
	storage port.ObjectStorage,
	analysis port.AnalysisClient,
	tokens TokenService,
	s3cfg *config.S3Config,
	variant wizard.Variant,
) WizardService {
	return &wizardService{
		sessions:    sessions,
		photos:      photos,
		inspections: inspections,
		storage:     storage,
		analysis:    analysis,
		tokens:      tokens,
		s3cfg:       s3cfg,
		variant:     variant,
	}
}

func (s *wizardService) Variant() wizard.Variant {
	return s.variant
}

func (s *wizardService) StartSession(ctx context.Context) (*StartSessionOutput, error) {
	session := &domain.WizardSession{
		ID:          uuid.New(),
		Variant:     s.variant.Name,
		CurrentStep: 1,
		Status:      domain.SessionActive,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("wizard.StartSession: %w", err)
	}

	token, err := s.tokens.Issue(session.ID)
	if err != nil {
		return nil, fmt.Errorf("wizard.StartSession: %w", err)
	}

	log.Printf("wizardService.StartSession: started session %s (variant %s)", session.ID, s.variant.Name)

	return &StartSessionOutput{
		Session:   session,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.Unix(),
	}, nil
}

func (s *wizardService) GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	session, err := s.loadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.ListBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("wizard.GetSession: %w", err)
	}
	return &SessionView{Session: session, Photos: photos}, nil
}

func (s *wizardService) UpdateDetails(ctx context.Context, id uuid.UUID, restaurantName, commercialRegister string) (*domain.WizardSession, error) {
	session, err := s.loadActiveSession(ctx, id)
	if err != nil {
		return nil, err
	}

	restaurantName = strings.TrimSpace(restaurantName)
	commercialRegister = strings.TrimSpace(commercialRegister)

	if err := s.sessions.UpdateDetails(ctx, id, restaurantName, commercialRegister); err != nil {
		return nil, fmt.Errorf("wizard.UpdateDetails: %w", err)
	}
	session.RestaurantName = restaurantName
	session.CommercialRegister = commercialRegister
	return session, nil
}

func (s *wizardService) StagePhoto(ctx context.Context, input PhotoUploadInput) (*domain.StagedPhoto, error) {
	session, err := s.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if !s.variant.HasSlot(input.Slot) {
		return nil, domain.ErrInvalidSlot
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	photoType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.s3cfg.MaxPhotoSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading photo header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	if _, validContent := domain.AllowedContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking photo: %w", err)
	}

	contentType := domain.AllowedPhotoTypes[photoType]
	s3Key := fmt.Sprintf("sessions/%s/photos/%s/%s", session.ID, input.Slot, input.Header.Filename)

	photo := &domain.StagedPhoto{
		ID:           uuid.New(),
		SessionID:    session.ID,
		Slot:         input.Slot,
		OriginalName: input.Header.Filename,
		ContentType:  contentType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.s3cfg.Bucket,
		S3Key:        s3Key,
	}

	log.Printf("wizardService.StagePhoto: staging %s (%s, %d bytes) into slot %s of session %s",
		input.Header.Filename, contentType, input.Header.Size, input.Slot, session.ID)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("wizardService.StagePhoto: S3 upload failed for session %s slot %s: %v", session.ID, input.Slot, err)
		return nil, domain.ErrUploadFailed
	}

	// Retaking a photo replaces the prior row for the slot.
	if err := s.photos.Stage(ctx, photo); err != nil {
		return nil, fmt.Errorf("wizard.StagePhoto: %w", err)
	}
	return photo, nil
}

func (s *wizardService) PhotoPreviewURL(ctx context.Context, id uuid.UUID, slot domain.ImageSlot) (string, error) {
	if _, err := s.loadSession(ctx, id); err != nil {
		return "", err
	}
	photo, err := s.photos.GetBySlot(ctx, id, slot)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", domain.ErrPhotoRequired, slot)
		}
		return "", fmt.Errorf("wizard.PhotoPreviewURL: %w", err)
	}
	return s.storage.GetPresignedURL(ctx, photo.S3Bucket, photo.S3Key, s.s3cfg.PresignExpiry)
}

func (s *wizardService) RemovePhoto(ctx context.Context, id uuid.UUID, slot domain.ImageSlot) error {
	if _, err := s.loadActiveSession(ctx, id); err != nil {
		return err
	}

	photo, err := s.photos.GetBySlot(ctx, id, slot)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("wizard.RemovePhoto: %w", err)
	}

	if err := s.storage.Delete(ctx, photo.S3Bucket, photo.S3Key); err != nil {
		log.Printf("wizardService.RemovePhoto: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}
	return s.photos.Remove(ctx, id, slot)
}

func (s *wizardService) Advance(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	session, err := s.loadActiveSession(ctx, id)
	if err != nil {
		return nil, err
	}

	staged, err := s.stagedSlots(ctx, id)
	if err != nil {
		return nil, err
	}

	state := wizard.State{Variant: s.variant, Step: session.CurrentStep}
	if err := state.Advance(staged); err != nil {
		return nil, err
	}
	if state.Step == session.CurrentStep {
		return session, nil
	}

	if err := s.sessions.UpdateStep(ctx, id, state.Step); err != nil {
		return nil, fmt.Errorf("wizard.Advance: %w", err)
	}
	session.CurrentStep = state.Step
	return session, nil
}

// Submit runs the whole handoff: validate the form, flip the session into
// submitting so a second submit is refused, gather the staged photos, issue
// the single analysis call, and store the raw payload. Any failure before
// the payload is stored rolls the session back to active so the operator can
// retry.
func (s *wizardService) Submit(ctx context.Context, id uuid.UUID) (*domain.InspectionResult, error) {
	session, err := s.loadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status == domain.SessionSubmitted {
		return nil, domain.ErrSessionSubmitted
	}

	staged, err := s.stagedSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.variant.ValidateSubmission(session.RestaurantName, staged); err != nil {
		return nil, err
	}

	if err := s.sessions.TransitionStatus(ctx, id, domain.SessionActive, domain.SessionSubmitting); err != nil {
		return nil, err
	}
	rollback := func() {
		if rbErr := s.sessions.TransitionStatus(ctx, id, domain.SessionSubmitting, domain.SessionActive); rbErr != nil {
			log.Printf("wizardService.Submit: rollback to active failed for session %s: %v", id, rbErr)
		}
	}

	submission, err := s.buildSubmission(ctx, session)
	if err != nil {
		rollback()
		return nil, err
	}

	log.Printf("wizardService.Submit: submitting session %s (%s, %d photos)",
		session.ID, session.RestaurantName, len(submission.Images))

	outcome, err := s.analysis.Analyze(ctx, *submission)
	if err != nil {
		rollback()
		return nil, err
	}
	result := outcome.Result

	if err := s.sessions.StoreResult(ctx, id, result.InspectionID, outcome.RawBody); err != nil {
		rollback()
		return nil, err
	}

	inspection := &domain.Inspection{
		InspectionID:       result.InspectionID,
		SessionID:          session.ID,
		RestaurantName:     result.RestaurantName,
		CommercialRegister: result.CommercialRegister,
		OverallStatus:      result.OverallStatus.Normalize(),
		OverallScore:       result.OverallScore,
		Payload:            outcome.RawBody,
	}
	if err := s.inspections.Create(ctx, inspection); err != nil {
		// The session already holds the payload; the inspection record is a
		// secondary index and must not fail the submission.
		log.Printf("wizardService.Submit: failed to record inspection %s: %v", result.InspectionID, err)
	}

	log.Printf("wizardService.Submit: session %s scored %.1f (%s), inspection %s",
		session.ID, result.OverallScore, result.OverallStatus, result.InspectionID)

	return result, nil
}

// buildSubmission downloads every staged photo in the variant's slot order.
func (s *wizardService) buildSubmission(ctx context.Context, session *domain.WizardSession) (*port.Submission, error) {
	submission := &port.Submission{
		RestaurantName:     session.RestaurantName,
		CommercialRegister: session.CommercialRegister,
	}

	for _, slot := range s.variant.Slots {
		photo, err := s.photos.GetBySlot(ctx, session.ID, slot)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrPhotoRequired, slot)
			}
			return nil, fmt.Errorf("wizard.buildSubmission: %w", err)
		}
		data, err := s.storage.Download(ctx, photo.S3Bucket, photo.S3Key)
		if err != nil {
			return nil, fmt.Errorf("downloading photo %s: %w", slot, err)
		}
		submission.Images = append(submission.Images, port.SubmissionImage{
			Slot:        slot,
			ContentType: photo.ContentType,
			Data:        data,
		})
	}
	return submission, nil
}

func (s *wizardService) stagedSlots(ctx context.Context, id uuid.UUID) (map[domain.ImageSlot]bool, error) {
	photos, err := s.photos.ListBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing staged photos: %w", err)
	}
	staged := make(map[domain.ImageSlot]bool, len(photos))
	for _, p := range photos {
		staged[p.Slot] = true
	}
	return staged, nil
}

func (s *wizardService) loadSession(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return session, nil
}

// loadActiveSession refuses mutations once the session left the active state.
func (s *wizardService) loadActiveSession(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	session, err := s.loadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case domain.SessionSubmitting:
		return nil, domain.ErrSubmissionInFlight
	case domain.SessionSubmitted:
		return nil, domain.ErrSessionSubmitted
	}
	return session, nil
}
