package sqlstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
)

// Dialect diferencias entre motores que afectan a la introspección y a los errores.
type Dialect interface {
	// Name devuelve "sqlite" o "postgres".
	Name() string
	// ColumnsQuery devuelve la consulta que lista, en orden, nombre, tipo declarado,
	// not null (0/1), valor por defecto y posición en la clave primaria de una tabla.
	ColumnsQuery(table string) (string, []any)
	// MapError traduce errores del driver a errores de dominio.
	MapError(err error) error
}

// NewDialect crea el dialecto para un nombre de driver database/sql.
func NewDialect(driverName string) Dialect {
	switch driverName {
	case "pgx", "postgres":
		return PostgresDialect{}
	default:
		return SQLiteDialect{}
	}
}

// SQLiteDialect implementa Dialect para modernc.org/sqlite.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string { return "sqlite" }

// ColumnsQuery usa la función de tabla pragma_table_info para enlazar el nombre como parámetro.
func (SQLiteDialect) ColumnsQuery(table string) (string, []any) {
	return `SELECT name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, []any{table}
}

func (SQLiteDialect) MapError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no such table"):
		return fmt.Errorf("%w: %v", domain.ErrSchema, err)
	case strings.Contains(msg, "constraint failed"),
		strings.Contains(msg, "no such column"),
		strings.Contains(msg, "has no column named"),
		strings.Contains(msg, "datatype mismatch"):
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return err
}

// PostgresDialect implementa Dialect para PostgreSQL vía pgx.
type PostgresDialect struct{}

func (PostgresDialect) Name() string { return "postgres" }

func (PostgresDialect) ColumnsQuery(table string) (string, []any) {
	q := `
		SELECT c.column_name, c.data_type,
			CASE WHEN c.is_nullable = 'NO' THEN 1 ELSE 0 END,
			c.column_default, COALESCE(pk.position, 0)
		FROM information_schema.columns c
		LEFT JOIN (
			SELECT kcu.column_name, kcu.ordinal_position AS position
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage kcu
				ON kcu.constraint_name = tc.constraint_name AND kcu.table_schema = tc.table_schema
			WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = current_schema() AND tc.table_name = ?
		) pk ON pk.column_name = c.column_name
		WHERE c.table_schema = current_schema() AND c.table_name = ?
		ORDER BY c.ordinal_position`
	return q, []any{table, table}
}

func (PostgresDialect) MapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == "42P01": // undefined_table
		return fmt.Errorf("%w: %v", domain.ErrSchema, err)
	case pgErr.Code == "42703", // undefined_column
		strings.HasPrefix(pgErr.Code, "23"), // integrity_constraint_violation
		strings.HasPrefix(pgErr.Code, "22"): // data_exception
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return err
}
