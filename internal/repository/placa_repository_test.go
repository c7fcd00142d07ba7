package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPlacaRepositoryResumo(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPlacaRepository(db)
	rows := sqlmock.NewRows([]string{"placa", "total", "concluidas", "ultima_atualizacao"}).
		AddRow("DEF5678", 3, 1, time.Now()).
		AddRow("ABC1234", 5, 5, time.Now().Add(-24*time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY placa ORDER BY ultima_atualizacao DESC LIMIT 500")).
		WillReturnRows(rows)

	resumos, err := repo.Resumo(context.Background())
	require.NoError(t, err)
	require.Len(t, resumos, 2)
	require.Equal(t, "DEF5678", resumos[0].Placa)
	require.Equal(t, 3, resumos[0].Total)
	require.Equal(t, 1, resumos[0].Concluidas)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlacaRepositoryResumoEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPlacaRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM manutencoes GROUP BY placa")).
		WillReturnRows(sqlmock.NewRows([]string{"placa", "total", "concluidas", "ultima_atualizacao"}))

	resumos, err := repo.Resumo(context.Background())
	require.NoError(t, err)
	require.Empty(t, resumos)
	require.NoError(t, mock.ExpectationsWereMet())
}
