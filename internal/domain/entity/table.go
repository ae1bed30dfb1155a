package entity

import "time"

// TimestampLayout formato de las columnas de auditoría y de último inicio de sesión.
const TimestampLayout = "2006-01-02 15:04:05"

// Nombres de las tablas administradas por la aplicación.
const (
	TableProductos = "productos"
	TableAlmacenes = "almacenes"
)

// TableSpec describe una tabla expuesta en la interfaz: su título y los roles que pueden editarla.
type TableSpec struct {
	Name      string
	Title     string
	EditRoles []string
}

// CanEdit indica si rol puede agregar, modificar o eliminar registros de la tabla.
func (t TableSpec) CanEdit(rol string) bool {
	for _, r := range t.EditRoles {
		if r == rol {
			return true
		}
	}
	return false
}

// Tables registro fijo de tablas; es la única fuente de nombres de tabla que llega al SQL.
var Tables = []TableSpec{
	{Name: TableProductos, Title: "Productos", EditRoles: []string{RoleAdmin, RoleProductos}},
	{Name: TableAlmacenes, Title: "Almacenes", EditRoles: []string{RoleAdmin, RoleAlmacenes}},
}

// LookupTable busca una tabla del registro por nombre.
func LookupTable(name string) (TableSpec, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableSpec{}, false
}

// TableData encabezados y filas de una tabla, en el orden de los encabezados.
type TableData struct {
	Headers []string
	Rows    [][]any
}

// FormatTimestamp da formato YYYY-MM-DD HH:MM:SS a t.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
