package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation         = errors.New("entrada inválida")
	ErrSchema             = errors.New("tabla no encontrada")
	ErrStore              = errors.New("error de almacenamiento")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
