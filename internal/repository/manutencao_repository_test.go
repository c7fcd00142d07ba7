package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/KauaBAG/IfControll/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func manutencaoRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "placa", "situacao", "data_cadastro", "quem_informou", "onde_esta",
		"status_texto", "previsao", "data_conclusao", "concluido", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(id, "ABC1234", "Troca de óleo", time.Now(), nil, nil, nil, nil, nil, 0, time.Now(), time.Now())
	}
	return rows
}

func TestManutencaoRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewManutencaoRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO manutencoes")).
		WithArgs("ABC1234", "Troca de óleo", sqlmock.AnyArg(), nil, nil, nil, nil, nil, int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	m := &models.Manutencao{
		Placa:        "ABC1234",
		Situacao:     "Troca de óleo",
		DataCadastro: models.NewDateTime(time.Now()),
	}
	require.NoError(t, repo.Create(context.Background(), m))
	require.Equal(t, int64(7), m.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManutencaoRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewManutencaoRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, placa, situacao,")).
		WithArgs(int64(7)).
		WillReturnRows(manutencaoRows(7))

	found, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), found.ID)
	require.Equal(t, "ABC1234", found.Placa)
	require.Equal(t, models.Flag(0), found.Concluido)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManutencaoRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewManutencaoRepository(db)
	concluido := 0

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM manutencoes WHERE placa LIKE $1 AND concluido = $2")).
		WithArgs("%ABC%", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT 10 OFFSET 0")).
		WithArgs("%ABC%", 0).
		WillReturnRows(manutencaoRows(3, 2, 1))

	rows, total, err := repo.List(context.Background(), models.ManutencaoFilter{
		Placa:     "ABC",
		Concluido: &concluido,
		Limit:     10,
	})
	require.NoError(t, err)
	require.Equal(t, 12, total)
	require.Len(t, rows, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManutencaoRepositoryListNoFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewManutencaoRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM manutencoes")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT 100 OFFSET 0")).
		WillReturnRows(manutencaoRows(2, 1))

	rows, total, err := repo.List(context.Background(), models.ManutencaoFilter{Limit: 100})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, rows, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManutencaoRepositoryUpdateOrderedFields(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewManutencaoRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE manutencoes SET placa = $1, concluido = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("DEF5678", int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 7, []FieldUpdate{
		{Column: "placa", Value: "DEF5678"},
		{Column: "concluido", Value: models.Flag(1)},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManutencaoRepositoryUpdateNoFieldsIsNoop(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewManutencaoRepository(db)
	require.NoError(t, repo.Update(context.Background(), 7, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManutencaoRepositoryExistsAndDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewManutencaoRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM manutencoes WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	exists, err := repo.Exists(context.Background(), 9)
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, repo.Delete(context.Background(), 9))
	require.NoError(t, mock.ExpectationsWereMet())
}
