package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/generating"
)

func newTestRepository(t *testing.T, seedCfg config.Seed) SalesRepository {
	t.Helper()

	conn, err := sqlite.NewConnection(context.Background(), config.Database{
		Path: filepath.Join(t.TempDir(), "sales_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewSalesRepository(conn, generating.NewService(), seedCfg)
}

func testSeedConfig() config.Seed {
	return config.Seed{
		Value:     42,
		StartDate: "2026-01-01",
		Days:      30,
	}
}

func TestSalesRepository_EnsureSeeded(t *testing.T) {
	repo := newTestRepository(t, testSeedConfig())
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeeded(ctx))

	count, err := repo.CountRecords(ctx)
	require.NoError(t, err)

	// O gerador produz o mesmo ledger para a mesma configuração; a tabela
	// precisa refletir exatamente esse volume
	expected := generating.NewService().Generate(42, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 30)
	assert.Equal(t, int64(len(expected)), count)
}

func TestSalesRepository_EnsureSeeded_Idempotent(t *testing.T) {
	repo := newTestRepository(t, testSeedConfig())
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeeded(ctx))

	countAfterFirst, err := repo.CountRecords(ctx)
	require.NoError(t, err)

	// Uma segunda chamada encontra a tabela populada e não insere nada
	require.NoError(t, repo.EnsureSeeded(ctx))

	countAfterSecond, err := repo.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, countAfterFirst, countAfterSecond)
}

func TestSalesRepository_LoadAll(t *testing.T) {
	repo := newTestRepository(t, testSeedConfig())
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeeded(ctx))

	ledger, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, ledger)

	expected := generating.NewService().Generate(42, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 30)
	require.Len(t, ledger, len(expected))

	// A leitura preserva a ordem de inserção e reconstrói cada registro,
	// incluindo a data convertida do formato texto
	for i, record := range ledger {
		assert.Equal(t, int64(i+1), record.ID)
		assert.Equal(t, expected[i].Date, record.Date)
		assert.Equal(t, expected[i].Region, record.Region)
		assert.Equal(t, expected[i].Category, record.Category)
		assert.Equal(t, expected[i].Product, record.Product)
		assert.InDelta(t, expected[i].Revenue, record.Revenue, 0.001)
		assert.Equal(t, expected[i].Quantity, record.Quantity)
	}
}

func TestSalesRepository_EnsureSeeded_InvalidStartDate(t *testing.T) {
	repo := newTestRepository(t, config.Seed{
		Value:     42,
		StartDate: "01/01/2026",
		Days:      30,
	})

	err := repo.EnsureSeeded(context.Background())
	assert.Error(t, err)
}
