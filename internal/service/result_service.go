package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"fahs/internal/config"
	"fahs/internal/domain"
	"fahs/internal/port"
	"fahs/internal/render"
)

// ResultService defines the results-viewer contract: everything served after
// a session has been submitted, plus lookup of past inspections by ID.
type ResultService interface {
	GetResult(ctx context.Context, sessionID uuid.UUID) (*domain.InspectionResult, error)
	RawPayload(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
	Scorecard(ctx context.Context, sessionID uuid.UUID) (*render.Scorecard, error)
	ReportURL(ctx context.Context, sessionID uuid.UUID) (string, error)
	Share(ctx context.Context, sessionID uuid.UUID, toEmail string) error
	GetInspection(ctx context.Context, inspectionID string) (*domain.InspectionResult, error)
}

type resultService struct {
	sessions    port.SessionRepository
	inspections port.InspectionRepository
	email       port.EmailSender
	analysisCfg config.AnalysisConfig
	emailCfg    config.EmailConfig
}

// NewResultService creates a new ResultService implementation.
func NewResultService(
	sessions port.SessionRepository,
	inspections port.InspectionRepository,
	email port.EmailSender,
	analysisCfg config.AnalysisConfig,
	emailCfg config.EmailConfig,
) ResultService {
	return &resultService{
		sessions:    sessions,
		inspections: inspections,
		email:       email,
		analysisCfg: analysisCfg,
		emailCfg:    emailCfg,
	}
}

func (s *resultService) GetResult(ctx context.Context, sessionID uuid.UUID) (*domain.InspectionResult, error) {
	payload, err := s.RawPayload(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return decodeResult(payload)
}

// RawPayload returns the stored analysis response exactly as received.
func (s *resultService) RawPayload(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("result.RawPayload: %w", err)
	}
	if len(session.ResultPayload) == 0 {
		return nil, domain.ErrResultNotFound
	}
	return session.ResultPayload, nil
}

func (s *resultService) Scorecard(ctx context.Context, sessionID uuid.UUID) (*render.Scorecard, error) {
	result, err := s.GetResult(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	card := render.BuildScorecard(result)
	return &card, nil
}

// ReportURL resolves the stored pdf_report reference against the analysis
// host. Absolute references pass through unchanged.
func (s *resultService) ReportURL(ctx context.Context, sessionID uuid.UUID) (string, error) {
	result, err := s.GetResult(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return s.resolveReportURL(result)
}

func (s *resultService) resolveReportURL(result *domain.InspectionResult) (string, error) {
	ref := result.PDFReport
	if ref == "" {
		return "", domain.ErrReportUnavailable
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	return s.analysisCfg.BaseURL + "/" + strings.TrimLeft(ref, "/"), nil
}

func (s *resultService) Share(ctx context.Context, sessionID uuid.UUID, toEmail string) error {
	result, err := s.GetResult(ctx, sessionID)
	if err != nil {
		return err
	}

	reportURL, err := s.resolveReportURL(result)
	if err != nil {
		return err
	}

	if toEmail == "" {
		toEmail = s.emailCfg.MinistryAddress
	}
	if toEmail == "" {
		return fmt.Errorf("result.Share: no recipient address configured")
	}

	log.Printf("resultService.Share: sending report link for inspection %s to %s", result.InspectionID, toEmail)

	if err := s.email.SendReportLink(ctx, toEmail, result.RestaurantName, result.InspectionID, reportURL); err != nil {
		return fmt.Errorf("result.Share: %w", err)
	}
	return nil
}

func (s *resultService) GetInspection(ctx context.Context, inspectionID string) (*domain.InspectionResult, error) {
	inspection, err := s.inspections.GetByID(ctx, inspectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("result.GetInspection: %w", err)
	}
	return decodeResult(inspection.Payload)
}

// decodeResult parses a stored payload. Stored payloads were decoded once at
// submission time, so a failure here means the row was tampered with or a
// format change slipped past the client.
func decodeResult(payload []byte) (*domain.InspectionResult, error) {
	var result domain.InspectionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResult, err)
	}
	return &result, nil
}
