// Package schema contiene las reglas puras que convierten metadatos crudos de columnas
// en descriptores para los formularios: categoría de entrada y visibilidad.
package schema

import (
	"strings"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// Columnas de auditoría garantizadas en toda tabla auditada.
const (
	ColCreacion     = "fecha_hora_creacion"
	ColModificacion = "fecha_hora_ultima_modificacion"
	ColUsuario      = "ultimo_usuario_en_modificar"
)

// AuditColumns columnas de auditoría en el orden en que se agregan a una tabla.
var AuditColumns = []string{ColCreacion, ColModificacion, ColUsuario}

// IDColumn nombre de la clave que identifica una fila en las peticiones de la API.
const IDColumn = "id"

// reservedNames columnas que nunca se muestran en el formulario de edición.
var reservedNames = map[string]struct{}{
	"id":                  {},
	"created_at":          {},
	"updated_at":          {},
	"fecha_creacion":      {},
	"fecha_actualizacion": {},
	ColCreacion:           {},
	ColModificacion:       {},
	ColUsuario:            {},
}

var (
	floatTokens    = []string{"REAL", "FLOA", "DOUB", "DEC", "NUM"}
	datetimeTokens = []string{"DATETIME", "TIMESTAMP", "DATE"}
)

// Classify asigna la categoría de entrada al tipo SQL declarado.
// El orden importa: INT gana sobre todo lo demás y DATE exacto se evalúa antes que
// los tokens de fecha-hora, que también aceptan DATE como subcadena.
func Classify(declaredType string) entity.InputKind {
	t := strings.ToUpper(declaredType)
	switch {
	case strings.Contains(t, "INT"):
		return entity.KindInt
	case containsAny(t, floatTokens):
		return entity.KindFloat
	case t == "DATE":
		return entity.KindDate
	case containsAny(t, datetimeTokens):
		return entity.KindDatetime
	default:
		return entity.KindText
	}
}

// IsHidden indica si la columna se oculta del formulario: clave primaria o nombre reservado.
func IsHidden(name string, pk int) bool {
	if pk > 0 {
		return true
	}
	_, ok := reservedNames[strings.ToLower(name)]
	return ok
}

// IsAuditColumn indica si name es una de las tres columnas de auditoría.
func IsAuditColumn(name string) bool {
	for _, c := range AuditColumns {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// Describe construye un descriptor completo a partir de los metadatos crudos.
func Describe(name, declaredType string, notNull bool, dflt *string, pk int) entity.ColumnDescriptor {
	return entity.ColumnDescriptor{
		Name:    name,
		Type:    declaredType,
		Kind:    Classify(declaredType),
		NotNull: notNull,
		Default: dflt,
		PK:      pk,
		Hidden:  IsHidden(name, pk),
	}
}

// Names devuelve los nombres de columna en el orden del esquema.
func Names(cols []entity.ColumnDescriptor) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Name)
	}
	return out
}

// Find busca una columna por nombre exacto.
func Find(cols []entity.ColumnDescriptor, name string) (entity.ColumnDescriptor, bool) {
	for _, c := range cols {
		if c.Name == name {
			return c, true
		}
	}
	return entity.ColumnDescriptor{}, false
}

// PrimaryKey devuelve la columna que identifica filas en update/delete: la única
// columna de clave primaria si existe, si no la columna "id".
func PrimaryKey(cols []entity.ColumnDescriptor) (entity.ColumnDescriptor, bool) {
	var pks []entity.ColumnDescriptor
	for _, c := range cols {
		if c.IsPrimaryKey() {
			pks = append(pks, c)
		}
	}
	if len(pks) == 1 {
		return pks[0], true
	}
	return Find(cols, IDColumn)
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
