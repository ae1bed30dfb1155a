package repository

import (
	"context"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// SchemaReader lee los metadatos de columnas de una tabla.
// Devuelve un error que envuelve domain.ErrSchema si la tabla no existe.
type SchemaReader interface {
	Describe(ctx context.Context, table string) ([]entity.ColumnDescriptor, error)
}

// AuditSchema evoluciona el esquema de las tablas auditadas de forma idempotente.
type AuditSchema interface {
	// EnsureColumns agrega como TEXT las columnas que falten; devuelve las agregadas.
	EnsureColumns(ctx context.Context, table string, columns []string) ([]string, error)
	// BackfillNull asigna value a column en las filas donde es NULL; devuelve filas afectadas.
	BackfillNull(ctx context.Context, table, column, value string) (int64, error)
}
