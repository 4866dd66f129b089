package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	salesTable = "sales"

	// Lotes de 100 linhas ficam bem abaixo do limite de variáveis do SQLite
	insertChunkSize = 100

	createSalesTable = `
		CREATE TABLE IF NOT EXISTS sales (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT,
			region TEXT,
			category TEXT,
			product TEXT,
			revenue REAL,
			quantity INTEGER
		)
	`
)

// Generator produz o ledger sintético usado na semeadura inicial
type Generator interface {
	Generate(seed int64, startDate time.Time, dayCount int) domain.Ledger
}

type SalesRepository interface {
	EnsureSeeded(ctx context.Context) error
	LoadAll(ctx context.Context) (domain.Ledger, error)
	CountRecords(ctx context.Context) (int64, error)
}

type salesRepository struct {
	conn      *sqlite.Connection
	generator Generator
	seedCfg   config.Seed
}

func NewSalesRepository(conn *sqlite.Connection, generator Generator, seedCfg config.Seed) SalesRepository {
	return &salesRepository{
		conn:      conn,
		generator: generator,
		seedCfg:   seedCfg,
	}
}

// EnsureSeeded cria a tabela se necessário e, somente se ela estiver vazia,
// popula com o ledger gerado. A verificação e a inserção acontecem dentro da
// mesma transação, então um segundo chamador concorrente observa a tabela já
// populada e não insere nada.
func (r *salesRepository) EnsureSeeded(ctx context.Context) error {
	if _, err := r.conn.Exec(ctx, createSalesTable); err != nil {
		return fmt.Errorf("erro ao criar a tabela de vendas: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var count int64
		row := tx.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", salesTable))
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("erro ao contar registros de vendas: %w", err)
		}

		if count > 0 {
			return nil
		}

		startDate, err := time.Parse(time.DateOnly, r.seedCfg.StartDate)
		if err != nil {
			return fmt.Errorf("data inicial de semeadura inválida: %w", err)
		}

		ledger := r.generator.Generate(r.seedCfg.Value, startDate, r.seedCfg.Days)

		logrus.WithFields(logrus.Fields{
			"seed":       r.seedCfg.Value,
			"start_date": r.seedCfg.StartDate,
			"days":       r.seedCfg.Days,
			"records":    len(ledger),
		}).Info("Tabela de vendas vazia, semeando com dados gerados")

		for start := 0; start < len(ledger); start += insertChunkSize {
			end := start + insertChunkSize
			if end > len(ledger) {
				end = len(ledger)
			}

			if err := insertChunk(ctx, tx, ledger[start:end]); err != nil {
				return err
			}
		}

		return nil
	})
}

func insertChunk(ctx context.Context, tx *sql.Tx, records domain.Ledger) error {
	builder := squirrel.
		Insert(salesTable).
		Columns("date", "region", "category", "product", "revenue", "quantity")

	for _, record := range records {
		builder = builder.Values(
			record.Date.Format(time.DateOnly),
			record.Region,
			record.Category,
			record.Product,
			record.Revenue,
			record.Quantity,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir registros de vendas: %w", err)
	}

	return nil
}

// LoadAll materializa a tabela inteira em memória, com a coluna de data
// convertida para time.Time. Sem paginação: a escala prevista é de dezenas
// de milhares de linhas.
func (r *salesRepository) LoadAll(ctx context.Context) (domain.Ledger, error) {
	query, args, err := squirrel.
		Select("id, date, region, category, product, revenue, quantity").
		From(salesTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ledger := make(domain.Ledger, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		ledger = append(ledger, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ledger, nil
}

func (r *salesRepository) CountRecords(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return count, nil
}

func scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}
	var dateStr string

	err := rows.Scan(
		&record.ID,
		&dateStr,
		&record.Region,
		&record.Category,
		&record.Product,
		&record.Revenue,
		&record.Quantity,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	record.Date = date

	return record, nil
}
