package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

func col(kind entity.InputKind) entity.ColumnDescriptor {
	return entity.ColumnDescriptor{Name: "c", Kind: kind}
}

func TestCoerceValue(t *testing.T) {
	cases := []struct {
		name string
		kind entity.InputKind
		in   any
		want any
	}{
		{"entero", entity.KindInt, "42", int64(42)},
		{"entero con espacios", entity.KindInt, " 7 ", int64(7)},
		{"entero decimal exacto", entity.KindInt, "3.0", int64(3)},
		{"entero vacío", entity.KindInt, "", nil},
		{"entero desde JSON", entity.KindInt, float64(5), int64(5)},
		{"entero máximo", entity.KindInt, "9223372036854775807", int64(math.MaxInt64)},
		{"entero mínimo", entity.KindInt, "-9223372036854775808", int64(math.MinInt64)},
		{"entero grande en notación decimal", entity.KindInt, "9007199254740993.0", int64(9007199254740993)},
		{"real", entity.KindFloat, "9.99", 9.99},
		{"real con coma", entity.KindFloat, "2,25", 2.25},
		{"real vacío", entity.KindFloat, "  ", nil},
		{"fecha", entity.KindDate, "2024-02-29", "2024-02-29"},
		{"fecha y hora del navegador", entity.KindDatetime, "2024-02-29T08:15", "2024-02-29 08:15:00"},
		{"fecha y hora completa", entity.KindDatetime, "2024-02-29 08:15:30", "2024-02-29 08:15:30"},
		{"fecha no reconocida", entity.KindDatetime, "mañana", "mañana"},
		{"texto", entity.KindText, " hola ", " hola "},
		{"texto vacío", entity.KindText, "", ""},
		{"nulo", entity.KindText, nil, nil},
		{"booleano numérico", entity.KindInt, true, int64(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coerceValue(col(tc.kind), tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoerceValue_Invalidos(t *testing.T) {
	for _, tc := range []struct {
		kind entity.InputKind
		in   any
	}{
		{entity.KindInt, "abc"},
		{entity.KindInt, "1.5"},
		{entity.KindInt, float64(2.5)},
		{entity.KindInt, "99999999999999999999"},
		{entity.KindInt, "-99999999999999999999"},
		{entity.KindInt, "1e20"},
		{entity.KindInt, float64(1e20)},
		{entity.KindInt, float64(-1e20)},
		{entity.KindInt, math.Pow(2, 63)},
		{entity.KindFloat, "1.2.3"},
		{entity.KindText, map[string]any{"a": 1}},
	} {
		_, err := coerceValue(col(tc.kind), tc.in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%v", tc.in)
	}
}
