package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/repository"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/schema"
)

var (
	_ repository.SchemaReader = (*SchemaRepo)(nil)
	_ repository.AuditSchema  = (*SchemaRepo)(nil)
)

// SchemaRepo introspección y evolución del esquema de las tablas.
type SchemaRepo struct {
	db *DB
}

// NewSchemaRepository construye el lector de esquema.
func NewSchemaRepository(db *DB) *SchemaRepo {
	return &SchemaRepo{db: db}
}

// Describe devuelve los descriptores de columna en el orden del esquema.
// Una tabla sin columnas se trata como inexistente.
func (r *SchemaRepo) Describe(ctx context.Context, table string) ([]entity.ColumnDescriptor, error) {
	query, args := r.db.Dialect.ColumnsQuery(table)
	rows, err := r.db.X.QueryContext(ctx, r.db.X.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, r.db.Dialect.MapError(err))
	}
	defer rows.Close()

	var cols []entity.ColumnDescriptor
	for rows.Next() {
		var (
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan columna: %w", err)
		}
		var def *string
		if dflt.Valid {
			def = &dflt.String
		}
		cols = append(cols, schema.Describe(name, typ, notNull != 0, def, pk))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrSchema, table)
	}
	return cols, nil
}

// EnsureColumns agrega como TEXT las columnas que falten. Es idempotente.
func (r *SchemaRepo) EnsureColumns(ctx context.Context, table string, columns []string) ([]string, error) {
	cols, err := r.Describe(ctx, table)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		existing[strings.ToLower(c.Name)] = struct{}{}
	}
	var added []string
	for _, c := range columns {
		if _, ok := existing[strings.ToLower(c)]; ok {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", quoteIdent(table), quoteIdent(c))
		if _, err := r.db.X.ExecContext(ctx, stmt); err != nil {
			return added, fmt.Errorf("add column %s.%s: %w", table, c, r.db.Dialect.MapError(err))
		}
		existing[strings.ToLower(c)] = struct{}{}
		added = append(added, c)
	}
	return added, nil
}

// BackfillNull asigna value a column donde sea NULL.
func (r *SchemaRepo) BackfillNull(ctx context.Context, table, column, value string) (int64, error) {
	stmt := r.db.X.Rebind(fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s IS NULL",
		quoteIdent(table), quoteIdent(column), quoteIdent(column)))
	res, err := r.db.X.ExecContext(ctx, stmt, value)
	if err != nil {
		return 0, fmt.Errorf("backfill %s.%s: %w", table, column, r.db.Dialect.MapError(err))
	}
	return res.RowsAffected()
}
