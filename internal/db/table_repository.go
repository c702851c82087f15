package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/slotview/internal/table"
)

// TableRepository stores reference tables cell by cell.
// A table is an ordered list of rows; each row is kept as (row_pos, column, value) cells.
type TableRepository struct {
	db *pgxpool.Pool
}

// NewTableRepository creates a new TableRepository.
func NewTableRepository(db *pgxpool.Pool) *TableRepository {
	return &TableRepository{db: db}
}

// Rows loads all rows of a table in import order.
// Returns an empty slice if the table was never imported.
func (r *TableRepository) Rows(ctx context.Context, tableName string) ([]table.Row, error) {
	query := `
		SELECT row_pos, column_name, value
		FROM reference_cells
		WHERE table_name = $1
		ORDER BY row_pos
	`

	rows, err := r.db.Query(ctx, query, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying table %q: %w", tableName, err)
	}
	defer rows.Close()

	result := make([]table.Row, 0, 256)
	lastPos := int32(-1)
	for rows.Next() {
		var pos int32
		var column, value string
		if err := rows.Scan(&pos, &column, &value); err != nil {
			return nil, fmt.Errorf("scanning cell of table %q: %w", tableName, err)
		}

		if pos != lastPos {
			result = append(result, make(table.Row))
			lastPos = pos
		}
		result[len(result)-1][column] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cells of table %q: %w", tableName, err)
	}

	return result, nil
}

// Replace stores rows as the new content of a table.
// Performs full replace: deletes all existing cells, then inserts.
func (r *TableRepository) Replace(ctx context.Context, tableName string, rows []table.Row) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "table", tableName, "error", err)
		}
	}()

	if err := r.ReplaceTx(ctx, tx, tableName, rows); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// ReplaceTx replaces a table within an existing transaction.
func (r *TableRepository) ReplaceTx(ctx context.Context, tx pgx.Tx, tableName string, rows []table.Row) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM reference_cells WHERE table_name = $1`,
		tableName,
	); err != nil {
		return fmt.Errorf("deleting old cells of table %q: %w", tableName, err)
	}

	cells := make([][]any, 0, len(rows)*4)
	for i, row := range rows {
		for column, value := range row {
			cells = append(cells, []any{tableName, int32(i), column, value})
		}
	}
	if len(cells) == 0 {
		return nil
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"reference_cells"},
		[]string{"table_name", "row_pos", "column_name", "value"},
		pgx.CopyFromRows(cells),
	)
	if err != nil {
		return fmt.Errorf("inserting cells of table %q: %w", tableName, err)
	}

	return nil
}

// Tables returns the names of all imported tables.
func (r *TableRepository) Tables(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT table_name FROM reference_cells ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("querying table names: %w", err)
	}
	defer rows.Close()

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting table names: %w", err)
	}
	return names, nil
}
