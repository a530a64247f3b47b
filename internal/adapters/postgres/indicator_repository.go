package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"indicators/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var recordColumns = []string{"id", "fecha", "tipo", "valor", "url_pdf", "created_at"}

const upsertSuffix = `
	ON CONFLICT (id) DO UPDATE SET
		fecha = EXCLUDED.fecha,
		tipo = EXCLUDED.tipo,
		valor = EXCLUDED.valor,
		url_pdf = EXCLUDED.url_pdf,
		created_at = EXCLUDED.created_at
`

// Pool is the part of pgxpool.Pool the repository needs.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type IndicatorRepository struct {
	pool  Pool
	table string
}

func NewIndicatorRepository(pool Pool, table string) *IndicatorRepository {
	return &IndicatorRepository{pool: pool, table: pgx.Identifier{table}.Sanitize()}
}

// Put stores the record under its ID, replacing whatever was stored there.
func (r *IndicatorRepository) Put(ctx context.Context, record domain.Record) error {
	var urlPDF *string
	if record.URLPDF != "" {
		urlPDF = &record.URLPDF
	}

	query, args, err := psql.Insert(r.table).
		Columns(recordColumns...).
		Values(record.ID, record.Fecha, string(record.Tipo), record.Valor, urlPDF, record.Timestamp).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert for %s: %w", record.ID, err)
	}

	if _, err = r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to store record %s: %w", record.ID, err)
	}
	return nil
}

// Scan returns every stored record in no particular order.
func (r *IndicatorRepository) Scan(ctx context.Context) ([]domain.Record, error) {
	query, args, err := psql.Select(recordColumns...).From(r.table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0, 64)
	for rows.Next() {
		var (
			rec    domain.Record
			tipo   string
			urlPDF *string
		)
		if err = rows.Scan(&rec.ID, &rec.Fecha, &tipo, &rec.Valor, &urlPDF, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Tipo = domain.Type(tipo)
		if urlPDF != nil {
			rec.URLPDF = *urlPDF
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}
	return records, nil
}
