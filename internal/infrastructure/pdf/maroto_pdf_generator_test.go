package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

func TestGenerateTablePDF(t *testing.T) {
	doc := dto.TableDocument{
		Title:       "Productos",
		GeneratedBy: "ADMIN",
		GeneratedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local),
		Data: entity.TableData{
			Headers: []string{"id", "nombre", "precio"},
			Rows: [][]any{
				{int64(2), "Tuerca", 0.25},
				{int64(1), "Widget", nil},
			},
		},
	}
	out, err := NewMarotoPDFGenerator().GenerateTablePDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateTablePDF_SinColumnas(t *testing.T) {
	out, err := NewMarotoPDFGenerator().GenerateTablePDF(context.Background(), dto.TableDocument{Title: "Vacía"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestColumnSizes(t *testing.T) {
	assert.Equal(t, []int{12}, columnSizes(1))
	assert.Equal(t, []int{4, 4, 4}, columnSizes(3))
	assert.Equal(t, []int{3, 3, 2, 2, 2}, columnSizes(5))
	assert.Equal(t, []int{2, 2, 1, 1, 1, 1, 1, 1, 1, 1}, columnSizes(10))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "9.99", formatCell(9.99))
	assert.Equal(t, "7", formatCell(int64(7)))
	assert.Equal(t, "true", formatCell(true))
}
