package repository

import "context"

// Assignment par columna/valor ya validado contra el esquema.
type Assignment struct {
	Column string
	Value  any
}

// RowStore acceso genérico a filas de una tabla del registro.
// Los nombres de columna que recibe ya fueron validados contra Describe; los valores
// siempre se enlazan como parámetros.
type RowStore interface {
	// ListAll devuelve las filas proyectadas en el orden de headers.
	ListAll(ctx context.Context, table string, headers []string) ([][]any, error)
	Insert(ctx context.Context, table string, values []Assignment) error
	// Update modifica la fila cuya columna key vale id; devuelve filas afectadas.
	Update(ctx context.Context, table, key string, id any, values []Assignment) (int64, error)
	// DeleteMany elimina en una sola transacción las filas cuya columna key está en ids.
	DeleteMany(ctx context.Context, table, key string, ids []any) (int64, error)
}
