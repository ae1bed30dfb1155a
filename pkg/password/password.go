// Package password hashea y verifica contraseñas de usuarios.
//
// Los hashes nuevos se generan con bcrypt. Los hashes MD5 hexadecimales heredados
// de la versión anterior del sistema se siguen aceptando para que las bases existentes
// funcionen; Verify informa cuándo conviene reemplazarlos.
package password

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash genera un hash bcrypt de plain.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara plain con el hash almacenado. needsRehash es true cuando la
// contraseña coincide pero el hash usa el formato MD5 heredado.
func Verify(hash, plain string) (ok, needsRehash bool) {
	if isBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil, false
	}
	if !isLegacyMD5(hash) {
		return false, false
	}
	sum := LegacyMD5(plain)
	if subtle.ConstantTimeCompare([]byte(sum), []byte(strings.ToLower(hash))) != 1 {
		return false, false
	}
	return true, true
}

// LegacyMD5 reproduce el hash MD5 hexadecimal sin sal del sistema anterior.
func LegacyMD5(plain string) string {
	sum := md5.Sum([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}

func isLegacyMD5(hash string) bool {
	if len(hash) != md5.Size*2 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
