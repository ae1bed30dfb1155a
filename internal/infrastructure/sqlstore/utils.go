package sqlstore

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// quoteIdent cita un identificador SQL. Los identificadores que llegan aquí ya salieron
// del registro de tablas o de la introspección; citar evita choques con palabras reservadas.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// normalizeValue convierte tipos propios del driver a valores presentables y serializables.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(entity.TimestampLayout)
	case decimal.Decimal:
		return val.InexactFloat64()
	default:
		return val
	}
}
