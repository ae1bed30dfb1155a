package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// dateInputLayouts formatos aceptados para columnas de fecha; el primero es el de <input type="date">.
var dateInputLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	entity.TimestampLayout,
}

func invalidValue(column, detail string) error {
	return fmt.Errorf("%w: valor inválido para '%s': %s", domain.ErrValidation, column, detail)
}

// coerceValue convierte el valor recibido (texto de formulario o número JSON) al tipo
// que espera la columna. Cadenas vacías en columnas no textuales se guardan como NULL.
func coerceValue(col entity.ColumnDescriptor, v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return coerceString(col, val)
	case float64:
		return coerceFloat(col, val)
	case int:
		return int64(val), nil
	case int64:
		return val, nil
	case bool:
		if col.Kind.IsNumeric() {
			if val {
				return int64(1), nil
			}
			return int64(0), nil
		}
		return strconv.FormatBool(val), nil
	default:
		return nil, invalidValue(col.Name, fmt.Sprintf("tipo %T no soportado", v))
	}
}

func coerceString(col entity.ColumnDescriptor, raw string) (any, error) {
	s := strings.TrimSpace(raw)
	switch col.Kind {
	case entity.KindInt:
		if s == "" {
			return nil, nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		d, err := parseDecimal(s)
		if err != nil || !d.IsInteger() {
			return nil, invalidValue(col.Name, fmt.Sprintf("%q no es un entero", raw))
		}
		n := d.IntPart()
		if !decimal.NewFromInt(n).Equal(d) {
			return nil, invalidValue(col.Name, fmt.Sprintf("%q fuera de rango", raw))
		}
		return n, nil
	case entity.KindFloat:
		if s == "" {
			return nil, nil
		}
		d, err := parseDecimal(s)
		if err != nil {
			return nil, invalidValue(col.Name, fmt.Sprintf("%q no es un número", raw))
		}
		return d.InexactFloat64(), nil
	case entity.KindDate, entity.KindDatetime:
		if s == "" {
			return nil, nil
		}
		return normalizeDate(s), nil
	default:
		return raw, nil
	}
}

func coerceFloat(col entity.ColumnDescriptor, f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, invalidValue(col.Name, "número no finito")
	}
	if col.Kind == entity.KindInt {
		if f != math.Trunc(f) {
			return nil, invalidValue(col.Name, fmt.Sprintf("%v no es un entero", f))
		}
		// 2^63 es representable como float64 pero no como int64.
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, invalidValue(col.Name, fmt.Sprintf("%v fuera de rango", f))
		}
		return int64(f), nil
	}
	return f, nil
}

// parseDecimal acepta coma como separador decimal.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}

// normalizeDate deja las fechas puras como YYYY-MM-DD y las que traen hora como
// YYYY-MM-DD HH:MM:SS. Lo que no se reconoce se guarda tal cual.
func normalizeDate(s string) string {
	for i, layout := range dateInputLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if i == 0 {
			return s
		}
		return entity.FormatTimestamp(t)
	}
	return s
}

// isBlank indica si el valor equivale a "no enviado".
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
