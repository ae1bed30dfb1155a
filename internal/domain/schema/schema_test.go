package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/schema"
)

func TestClassify_OrdenDePrioridad(t *testing.T) {
	casos := map[string]entity.InputKind{
		"INTEGER":          entity.KindInt,
		"int":              entity.KindInt,
		"BIGINT":           entity.KindInt,
		"POINT":            entity.KindInt, // contiene INT
		"INTERVAL DECIMAL": entity.KindInt,
		"REAL":             entity.KindFloat,
		"FLOAT":            entity.KindFloat,
		"DOUBLE PRECISION": entity.KindFloat,
		"DECIMAL(10,2)":    entity.KindFloat,
		"NUMERIC":          entity.KindFloat,
		"DATE":             entity.KindDate,
		"date":             entity.KindDate,
		"DATETIME":         entity.KindDatetime,
		"TIMESTAMP":        entity.KindDatetime,
		"DATE2":            entity.KindDatetime,
		"TEXT":             entity.KindText,
		"VARCHAR(50)":      entity.KindText,
		"":                 entity.KindText,
	}
	for tipo, esperado := range casos {
		assert.Equal(t, esperado, schema.Classify(tipo), "tipo %q", tipo)
	}
}

func TestIsHidden_SoloClavePrimariaYReservadas(t *testing.T) {
	assert.True(t, schema.IsHidden("codigo", 1), "toda columna de clave primaria se oculta")
	assert.True(t, schema.IsHidden("segunda", 2), "también la segunda columna de una clave compuesta")

	for _, nombre := range []string{
		"id", "ID", "created_at", "updated_at", "fecha_creacion", "fecha_actualizacion",
		"fecha_hora_creacion", "Fecha_Hora_Ultima_Modificacion", "ultimo_usuario_en_modificar",
	} {
		assert.True(t, schema.IsHidden(nombre, 0), "%s debe ocultarse", nombre)
	}

	for _, nombre := range []string{"nombre", "precio", "fecha", "usuario", "id_almacen"} {
		assert.False(t, schema.IsHidden(nombre, 0), "%s debe mostrarse", nombre)
	}
}

func TestDescribe_ArmaDescriptor(t *testing.T) {
	dflt := "0"
	d := schema.Describe("precio", "REAL", true, &dflt, 0)

	assert.Equal(t, "precio", d.Name)
	assert.Equal(t, entity.KindFloat, d.Kind)
	assert.Equal(t, "number", d.Kind.HTMLType())
	assert.True(t, d.NotNull)
	assert.Equal(t, &dflt, d.Default)
	assert.False(t, d.Hidden)
	assert.False(t, d.IsPrimaryKey())
}

func TestPrimaryKey_PrefiereClaveUnica(t *testing.T) {
	cols := []entity.ColumnDescriptor{
		schema.Describe("codigo", "INTEGER", false, nil, 1),
		schema.Describe("id", "INTEGER", false, nil, 0),
	}
	pk, ok := schema.PrimaryKey(cols)
	assert.True(t, ok)
	assert.Equal(t, "codigo", pk.Name)

	sinPK := []entity.ColumnDescriptor{schema.Describe("id", "INTEGER", false, nil, 0)}
	pk, ok = schema.PrimaryKey(sinPK)
	assert.True(t, ok)
	assert.Equal(t, "id", pk.Name)

	_, ok = schema.PrimaryKey([]entity.ColumnDescriptor{schema.Describe("nombre", "TEXT", false, nil, 0)})
	assert.False(t, ok)
}
