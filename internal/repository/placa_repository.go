package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KauaBAG/IfControll/internal/models"
)

// PlacaRepository serves the per-plate aggregate view.
type PlacaRepository struct {
	db *sqlx.DB
}

// NewPlacaRepository constructs the repository.
func NewPlacaRepository(db *sqlx.DB) *PlacaRepository {
	return &PlacaRepository{db: db}
}

// Resumo returns, per distinct plate, the case count, completed count and
// most recent created_at, newest activity first, capped at 500 rows.
func (r *PlacaRepository) Resumo(ctx context.Context) ([]models.PlacaResumo, error) {
	const query = `SELECT placa, COUNT(*) AS total, COALESCE(SUM(concluido), 0) AS concluidas,
       MAX(created_at) AS ultima_atualizacao
	FROM manutencoes GROUP BY placa ORDER BY ultima_atualizacao DESC LIMIT 500`
	resumos := []models.PlacaResumo{}
	if err := r.db.SelectContext(ctx, &resumos, query); err != nil {
		return nil, fmt.Errorf("placa resumo: %w", err)
	}
	return resumos, nil
}
