package dto

import (
	"time"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// TableView datos de una página de tabla: encabezados, filas, columnas del formulario y permiso.
// Error contiene un mensaje para mostrar en línea cuando la tabla no existe.
type TableView struct {
	Table    string                    `json:"tabla"`
	Title    string                    `json:"titulo"`
	Error    string                    `json:"error,omitempty"`
	Headers  []string                  `json:"headers"`
	Rows     [][]any                   `json:"rows"`
	Columns  []entity.ColumnDescriptor `json:"columns"`
	Editable bool                      `json:"editable"`
}

// VisibleColumns columnas que se muestran en el formulario de edición.
func (v *TableView) VisibleColumns() []entity.ColumnDescriptor {
	out := make([]entity.ColumnDescriptor, 0, len(v.Columns))
	for _, c := range v.Columns {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// MutationResponse respuesta de los endpoints de inserción, modificación y eliminación.
type MutationResponse struct {
	Ok  bool    `json:"ok"`
	Msg *string `json:"msg"`
}

// MutationOK respuesta exitosa sin mensaje.
func MutationOK() MutationResponse {
	return MutationResponse{Ok: true}
}

// MutationFail respuesta fallida con mensaje.
func MutationFail(msg string) MutationResponse {
	return MutationResponse{Ok: false, Msg: &msg}
}

// DeleteRequest cuerpo de POST /{tabla}/delete.
type DeleteRequest struct {
	Ids []any `json:"ids"`
}

// TableDocument contenido de la exportación a PDF de una tabla.
type TableDocument struct {
	Title       string
	GeneratedBy string
	GeneratedAt time.Time
	Data        entity.TableData
}
