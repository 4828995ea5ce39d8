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

type photoRepo struct {
	db *sqlx.DB
}

// NewPhotoRepo creates a new PostgreSQL-backed PhotoRepository.
func NewPhotoRepo(db *sqlx.DB) port.PhotoRepository {
	return &photoRepo{db: db}
}

// Stage upserts on (session_id, slot): restaging a slot replaces the
// previous photo's metadata, there is never more than one row per slot.
func (r *photoRepo) Stage(ctx context.Context, photo *domain.StagedPhoto) error {
	photo.StagedAt = time.Now().UTC()

	query := `INSERT INTO session_photos
		(id, session_id, slot, original_name, content_type, file_size, s3_bucket, s3_key, staged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (session_id, slot) DO UPDATE SET
		 id = EXCLUDED.id,
		 original_name = EXCLUDED.original_name,
		 content_type = EXCLUDED.content_type,
		 file_size = EXCLUDED.file_size,
		 s3_bucket = EXCLUDED.s3_bucket,
		 s3_key = EXCLUDED.s3_key,
		 staged_at = EXCLUDED.staged_at`

	_, err := r.db.ExecContext(ctx, query,
		photo.ID, photo.SessionID, photo.Slot, photo.OriginalName, photo.ContentType,
		photo.FileSize, photo.S3Bucket, photo.S3Key, photo.StagedAt)
	if err != nil {
		return fmt.Errorf("photoRepo.Stage: %w", err)
	}
	return nil
}

func (r *photoRepo) GetBySlot(ctx context.Context, sessionID uuid.UUID, slot domain.ImageSlot) (*domain.StagedPhoto, error) {
	var photo domain.StagedPhoto
	err := r.db.GetContext(ctx, &photo,
		"SELECT * FROM session_photos WHERE session_id = $1 AND slot = $2", sessionID, slot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("photoRepo.GetBySlot: %w", err)
	}
	return &photo, nil
}

func (r *photoRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.StagedPhoto, error) {
	var photos []domain.StagedPhoto
	err := r.db.SelectContext(ctx, &photos,
		"SELECT * FROM session_photos WHERE session_id = $1 ORDER BY staged_at", sessionID)
	if err != nil {
		return nil, fmt.Errorf("photoRepo.ListBySession: %w", err)
	}
	return photos, nil
}

func (r *photoRepo) Remove(ctx context.Context, sessionID uuid.UUID, slot domain.ImageSlot) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM session_photos WHERE session_id = $1 AND slot = $2", sessionID, slot)
	if err != nil {
		return fmt.Errorf("photoRepo.Remove: %w", err)
	}
	return checkAffected(result, domain.ErrNotFound)
}
