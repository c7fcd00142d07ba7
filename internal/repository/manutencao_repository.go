package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/KauaBAG/IfControll/internal/models"
)

const manutencaoColumns = `id, placa, situacao, data_cadastro, quem_informou, onde_esta,
       status_texto, previsao, data_conclusao, concluido, created_at, updated_at`

// FieldUpdate is one column assignment applied during a partial update. The
// service builds the slice from its field whitelist, in whitelist order.
type FieldUpdate struct {
	Column string
	Value  interface{}
}

// ManutencaoRepository persists maintenance cases.
type ManutencaoRepository struct {
	db *sqlx.DB
}

// NewManutencaoRepository constructs the repository.
func NewManutencaoRepository(db *sqlx.DB) *ManutencaoRepository {
	return &ManutencaoRepository{db: db}
}

// GetByID fetches a case by identifier. sql.ErrNoRows propagates to the
// caller for not-found mapping.
func (r *ManutencaoRepository) GetByID(ctx context.Context, id int64) (*models.Manutencao, error) {
	const query = `SELECT ` + manutencaoColumns + ` FROM manutencoes WHERE id = $1`
	var m models.Manutencao
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		return nil, err
	}
	return &m, nil
}

// Exists reports whether a case id is present.
func (r *ManutencaoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM manutencoes WHERE id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check manutencao: %w", err)
	}
	return exists, nil
}

// List returns matching cases newest first, plus the total match count
// computed independently of the limit/offset window.
func (r *ManutencaoRepository) List(ctx context.Context, filter models.ManutencaoFilter) ([]models.Manutencao, int, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if filter.Placa != "" {
		args = append(args, "%"+filter.Placa+"%")
		conditions = append(conditions, fmt.Sprintf("placa LIKE $%d", len(args)))
	}
	if filter.Concluido != nil {
		args = append(args, *filter.Concluido)
		conditions = append(conditions, fmt.Sprintf("concluido = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM manutencoes"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count manutencoes: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM manutencoes%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		manutencaoColumns, where, filter.Limit, filter.Offset)
	rows := []models.Manutencao{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list manutencoes: %w", err)
	}
	return rows, total, nil
}

// Create inserts a new case and fills in its generated id.
func (r *ManutencaoRepository) Create(ctx context.Context, m *models.Manutencao) error {
	const query = `INSERT INTO manutencoes
	(placa, situacao, data_cadastro, quem_informou, onde_esta, status_texto, previsao, data_conclusao, concluido)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		m.Placa, m.Situacao, m.DataCadastro, m.QuemInformou, m.OndeEsta,
		m.StatusTexto, m.Previsao, m.DataConclusao, m.Concluido,
	).Scan(&m.ID); err != nil {
		return fmt.Errorf("create manutencao: %w", err)
	}
	return nil
}

// Update applies the given column assignments and refreshes updated_at.
func (r *ManutencaoRepository) Update(ctx context.Context, id int64, fields []FieldUpdate) error {
	if len(fields) == 0 {
		return nil
	}
	setParts := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+1)
	for _, f := range fields {
		args = append(args, f.Value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", f.Column, len(args)))
	}
	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE manutencoes SET %s WHERE id = $%d", strings.Join(setParts, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update manutencao: %w", err)
	}
	return nil
}

// Delete removes a case. Its status history goes with it via the cascade on
// status_updates.manutencao_id.
func (r *ManutencaoRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM manutencoes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete manutencao: %w", err)
	}
	return nil
}
