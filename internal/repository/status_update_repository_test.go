package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/KauaBAG/IfControll/internal/models"
)

func TestStatusUpdateRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStatusUpdateRepository(db)
	created := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO status_updates (manutencao_id, texto, autor)")).
		WithArgs(int64(7), "Peça chegou", "Carlos").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(21), created))

	u := &models.StatusUpdate{ManutencaoID: 7, Texto: "Peça chegou", Autor: "Carlos"}
	require.NoError(t, repo.Create(context.Background(), u))
	require.Equal(t, int64(21), u.ID)
	require.Equal(t, created, u.CreatedAt.Time)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusUpdateRepositoryListByManutencao(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStatusUpdateRepository(db)
	rows := sqlmock.NewRows([]string{"id", "manutencao_id", "texto", "autor", "created_at"}).
		AddRow(int64(1), int64(7), "Entrada na oficina", "Sistema", time.Now().Add(-time.Hour)).
		AddRow(int64(2), int64(7), "Aguardando peça", "Carlos", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, id ASC")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	updates, err := repo.ListByManutencao(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	require.Equal(t, "Entrada na oficina", updates[0].Texto)
	require.Equal(t, "Carlos", updates[1].Autor)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusUpdateRepositoryListEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStatusUpdateRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM status_updates")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manutencao_id", "texto", "autor", "created_at"}))

	updates, err := repo.ListByManutencao(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, updates)
	require.Empty(t, updates)
	require.NoError(t, mock.ExpectationsWereMet())
}
