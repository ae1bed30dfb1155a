package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar JWT más la identidad de sesión: usuario y rol.
// El rol viaja en el token para que el middleware decida permisos sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

// Signer firma y verifica tokens de sesión HS256 de un emisor.
// El reloj es el mismo para emitir y para validar la expiración.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner construye el firmador; con now nil usa time.Now.
func NewSigner(secret, issuer string, ttl time.Duration, now func() time.Time) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("jwt: secret vacío")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt: duración inválida %s", ttl)
	}
	if now == nil {
		now = time.Now
	}
	return &Signer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: now}, nil
}

// Sign emite el token de sesión para usuario y rol.
func (s *Signer) Sign(usuario, rol string) (string, error) {
	if usuario == "" {
		return "", errors.New("jwt: usuario vacío")
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   usuario,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Usuario: usuario,
		Rol:     rol,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify valida firma, emisor y expiración y devuelve los claims.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...); err != nil {
		return nil, err
	}
	if claims.Usuario == "" {
		return nil, errors.New("jwt: token sin usuario")
	}
	return claims, nil
}
