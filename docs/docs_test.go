package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/klep98/Inventario-Desarrollo-IV/docs"
)

func TestReadDoc_DocumentoRegistrado(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	for _, p := range []string{"/login", "/health", "/{tabla}/insert", "/{tabla}/update", "/{tabla}/delete", "/{tabla}/datos", "/{tabla}/pdf"} {
		assert.Contains(t, parsed.Paths, p)
	}
}
