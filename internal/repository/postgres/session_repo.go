package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fahs/internal/domain"
	"fahs/internal/port"
)

type sessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a new PostgreSQL-backed SessionRepository.
func NewSessionRepo(db *sqlx.DB) port.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.WizardSession) error {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	query := `INSERT INTO wizard_sessions
		(id, variant, current_step, restaurant_name, commercial_register, status,
		 inspection_id, result_payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.Variant, session.CurrentStep, session.RestaurantName,
		session.CommercialRegister, session.Status, session.InspectionID,
		session.ResultPayload, session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sessionRepo.Create: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	var session domain.WizardSession
	err := r.db.GetContext(ctx, &session,
		"SELECT * FROM wizard_sessions WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetByID: %w", err)
	}
	return &session, nil
}

func (r *sessionRepo) UpdateStep(ctx context.Context, id uuid.UUID, step int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE wizard_sessions SET current_step = $1, updated_at = $2 WHERE id = $3`,
		step, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("sessionRepo.UpdateStep: %w", err)
	}
	return checkAffected(result, domain.ErrSessionNotFound)
}

func (r *sessionRepo) UpdateDetails(ctx context.Context, id uuid.UUID, restaurantName, commercialRegister string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE wizard_sessions
		 SET restaurant_name = $1, commercial_register = $2, updated_at = $3
		 WHERE id = $4`,
		restaurantName, commercialRegister, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("sessionRepo.UpdateDetails: %w", err)
	}
	return checkAffected(result, domain.ErrSessionNotFound)
}

// TransitionStatus is the concurrency guard for submission: the WHERE clause
// on the current status makes the flip atomic, so two concurrent submits
// cannot both pass.
func (r *sessionRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.SessionStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE wizard_sessions SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, time.Now().UTC(), id, from)
	if err != nil {
		return fmt.Errorf("sessionRepo.TransitionStatus: %w", err)
	}
	return checkAffected(result, domain.ErrSubmissionInFlight)
}

// StoreResult writes the raw payload once. The guard on result_payload IS
// NULL enforces write-once semantics at the data layer.
func (r *sessionRepo) StoreResult(ctx context.Context, id uuid.UUID, inspectionID string, payload []byte) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE wizard_sessions
		 SET status = $1, inspection_id = $2, result_payload = $3, updated_at = $4
		 WHERE id = $5 AND result_payload IS NULL`,
		domain.SessionSubmitted, inspectionID, payload, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("sessionRepo.StoreResult: %w", err)
	}
	return checkAffected(result, domain.ErrSessionSubmitted)
}

func checkAffected(result sql.Result, missing error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return missing
	}
	return nil
}
