package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"fahs/internal/domain"
	"fahs/internal/port"
)

type inspectionRepo struct {
	db *sqlx.DB
}

// NewInspectionRepo creates a new PostgreSQL-backed InspectionRepository.
func NewInspectionRepo(db *sqlx.DB) port.InspectionRepository {
	return &inspectionRepo{db: db}
}

func (r *inspectionRepo) Create(ctx context.Context, inspection *domain.Inspection) error {
	inspection.CreatedAt = time.Now().UTC()

	query := `INSERT INTO inspections
		(inspection_id, session_id, restaurant_name, commercial_register,
		 overall_status, overall_score, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		inspection.InspectionID, inspection.SessionID, inspection.RestaurantName,
		inspection.CommercialRegister, inspection.OverallStatus, inspection.OverallScore,
		inspection.Payload, inspection.CreatedAt)
	if err != nil {
		return fmt.Errorf("inspectionRepo.Create: %w", err)
	}
	return nil
}

func (r *inspectionRepo) GetByID(ctx context.Context, inspectionID string) (*domain.Inspection, error) {
	var inspection domain.Inspection
	err := r.db.GetContext(ctx, &inspection,
		"SELECT * FROM inspections WHERE inspection_id = $1", inspectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("inspectionRepo.GetByID: %w", err)
	}
	return &inspection, nil
}
