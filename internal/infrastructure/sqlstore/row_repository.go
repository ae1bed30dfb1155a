package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/repository"
)

var _ repository.RowStore = (*RowRepo)(nil)

// RowRepo acceso genérico a filas. Tablas y columnas llegan validadas; los valores
// siempre van como parámetros.
type RowRepo struct {
	db *DB
}

// NewRowRepository construye el repositorio de filas.
func NewRowRepository(db *DB) *RowRepo {
	return &RowRepo{db: db}
}

// ListAll lee todas las filas, primero ordenadas por la primera columna descendente y,
// si esa consulta falla, sin orden. Cada fila se proyecta en el orden de headers.
func (r *RowRepo) ListAll(ctx context.Context, table string, headers []string) ([][]any, error) {
	t := quoteIdent(table)
	rows, err := r.db.X.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY 1 DESC", t))
	if err != nil {
		rows, err = r.db.X.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s", t))
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", table, r.db.Dialect.MapError(err))
		}
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	out := make([][]any, 0)
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		row := make([]any, len(headers))
		for i, h := range headers {
			if j, ok := index[h]; ok {
				row[i] = normalizeValue(vals[j])
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, r.db.Dialect.MapError(err))
	}
	return out, nil
}

// Insert agrega una fila con las columnas indicadas.
func (r *RowRepo) Insert(ctx context.Context, table string, values []repository.Assignment) error {
	cols := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		cols[i] = quoteIdent(v.Column)
		args[i] = v.Value
	}
	stmt := fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", quoteIdent(table))
	if len(values) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
		stmt = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			quoteIdent(table), strings.Join(cols, ", "), placeholders)
	}
	if _, err := r.db.X.ExecContext(ctx, r.db.X.Rebind(stmt), args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, r.db.Dialect.MapError(err))
	}
	return nil
}

// Update modifica la fila cuya columna key vale id.
func (r *RowRepo) Update(ctx context.Context, table, key string, id any, values []repository.Assignment) (int64, error) {
	sets := make([]string, len(values))
	args := make([]any, 0, len(values)+1)
	for i, v := range values {
		sets[i] = quoteIdent(v.Column) + " = ?"
		args = append(args, v.Value)
	}
	args = append(args, id)
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		quoteIdent(table), strings.Join(sets, ", "), quoteIdent(key))
	res, err := r.db.X.ExecContext(ctx, r.db.X.Rebind(stmt), args...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", table, r.db.Dialect.MapError(err))
	}
	return res.RowsAffected()
}

// DeleteMany elimina en una transacción las filas cuya columna key está en ids.
// Los ids que no existen se ignoran.
func (r *RowRepo) DeleteMany(ctx context.Context, table, key string, ids []any) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	stmt, args, err := sqlx.In(fmt.Sprintf("DELETE FROM %s WHERE %s IN (?)", quoteIdent(table), quoteIdent(key)), ids)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, err)
	}

	tx, err := r.db.X.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, tx.Rebind(stmt), args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, r.db.Dialect.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return n, nil
}
