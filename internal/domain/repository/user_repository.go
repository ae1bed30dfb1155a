package repository

import (
	"context"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para la tabla usuarios (DIP).
type UserRepository interface {
	// EnsureTable crea la tabla usuarios si no existe.
	EnsureTable(ctx context.Context) error
	// FindByNombre devuelve nil, nil si el usuario no existe.
	FindByNombre(ctx context.Context, nombre string) (*entity.User, error)
	// Create inserta el usuario solo si no existe; informa si lo insertó.
	Create(ctx context.Context, user *entity.User) (bool, error)
	UpdateLastLogin(ctx context.Context, nombre, at string) error
	UpdatePassword(ctx context.Context, nombre, hash string) error
}
