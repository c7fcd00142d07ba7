package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KauaBAG/IfControll/internal/models"
)

// StatusUpdateRepository persists the append-only status history.
type StatusUpdateRepository struct {
	db *sqlx.DB
}

// NewStatusUpdateRepository constructs the repository.
func NewStatusUpdateRepository(db *sqlx.DB) *StatusUpdateRepository {
	return &StatusUpdateRepository{db: db}
}

// Create inserts a status note and fills in the generated id and timestamp.
func (r *StatusUpdateRepository) Create(ctx context.Context, u *models.StatusUpdate) error {
	const query = `INSERT INTO status_updates (manutencao_id, texto, autor)
	VALUES ($1, $2, $3)
	RETURNING id, created_at`
	if err := r.db.QueryRowContext(ctx, query, u.ManutencaoID, u.Texto, u.Autor).
		Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("create status update: %w", err)
	}
	return nil
}

// ListByManutencao returns a case history oldest first. The id tiebreak keeps
// same-second appends in insertion order.
func (r *StatusUpdateRepository) ListByManutencao(ctx context.Context, manutencaoID int64) ([]models.StatusUpdate, error) {
	const query = `SELECT id, manutencao_id, texto, autor, created_at
	FROM status_updates WHERE manutencao_id = $1 ORDER BY created_at ASC, id ASC`
	updates := []models.StatusUpdate{}
	if err := r.db.SelectContext(ctx, &updates, query, manutencaoID); err != nil {
		return nil, fmt.Errorf("list status updates: %w", err)
	}
	return updates, nil
}
