package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klep98/Inventario-Desarrollo-IV/pkg/password"
)

func TestHashYVerify_Bcrypt(t *testing.T) {
	h, err := password.Hash("admin23")
	require.NoError(t, err)

	ok, rehash := password.Verify(h, "admin23")
	assert.True(t, ok)
	assert.False(t, rehash)

	ok, _ = password.Verify(h, "admin24")
	assert.False(t, ok)
}

func TestVerify_MD5Heredado(t *testing.T) {
	// md5("admin23") tal como lo guardaba la versión anterior.
	legacy := password.LegacyMD5("admin23")
	require.Len(t, legacy, 32)

	ok, rehash := password.Verify(legacy, "admin23")
	assert.True(t, ok)
	assert.True(t, rehash, "un MD5 válido debe marcarse para migrar a bcrypt")

	ok, rehash = password.Verify(legacy, "otra")
	assert.False(t, ok)
	assert.False(t, rehash)
}

func TestVerify_HashDesconocido(t *testing.T) {
	ok, _ := password.Verify("texto-plano", "texto-plano")
	assert.False(t, ok, "nunca se compara contra contraseñas en claro")
}
