package entity

// InputKind categoría de entrada derivada del tipo SQL declarado de una columna.
type InputKind string

const (
	KindInt      InputKind = "int"
	KindFloat    InputKind = "float"
	KindDate     InputKind = "date"
	KindDatetime InputKind = "datetime"
	KindText     InputKind = "text"
)

// HTMLType devuelve el atributo type del <input> que corresponde a la categoría.
func (k InputKind) HTMLType() string {
	switch k {
	case KindInt, KindFloat:
		return "number"
	case KindDate:
		return "date"
	case KindDatetime:
		return "datetime-local"
	default:
		return "text"
	}
}

// IsNumeric indica si la columna admite filtros por rango (mín/máx) en la vista.
func (k InputKind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// ColumnDescriptor metadatos de una columna, recalculados en cada lectura del esquema.
// Nunca se persiste ni se cachea.
type ColumnDescriptor struct {
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Kind    InputKind `json:"kind"`
	NotNull bool      `json:"notnull"`
	Default *string   `json:"default"`
	PK      int       `json:"pk"` // posición dentro de la clave primaria; 0 si no forma parte
	Hidden  bool      `json:"hidden"`
}

// IsPrimaryKey indica si la columna forma parte de la clave primaria.
func (c ColumnDescriptor) IsPrimaryKey() bool { return c.PK > 0 }
