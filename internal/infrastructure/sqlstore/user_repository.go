package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const createUsuariosSQL = `
	CREATE TABLE IF NOT EXISTS usuarios (
		nombre TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		fecha_hora_ultimo_inicio TEXT,
		rol TEXT NOT NULL
	)`

// UserRepo implementación del puerto UserRepository sobre la tabla usuarios.
type UserRepo struct {
	db *DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureTable crea la tabla usuarios si no existe.
func (r *UserRepo) EnsureTable(ctx context.Context) error {
	if _, err := r.db.X.ExecContext(ctx, createUsuariosSQL); err != nil {
		return fmt.Errorf("create usuarios: %w", err)
	}
	return nil
}

// FindByNombre obtiene un usuario por nombre; nil, nil si no existe.
func (r *UserRepo) FindByNombre(ctx context.Context, nombre string) (*entity.User, error) {
	query := r.db.X.Rebind(`
		SELECT nombre, password, fecha_hora_ultimo_inicio, rol
		FROM usuarios WHERE nombre = ?`)
	var u entity.User
	if err := r.db.X.GetContext(ctx, &u, query, nombre); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", r.db.Dialect.MapError(err))
	}
	return &u, nil
}

// Create inserta el usuario si no existe; devuelve false si ya estaba.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (bool, error) {
	query := r.db.X.Rebind(`
		INSERT INTO usuarios (nombre, password, fecha_hora_ultimo_inicio, rol)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (nombre) DO NOTHING`)
	res, err := r.db.X.ExecContext(ctx, query, user.Nombre, user.PasswordHash, user.UltimoInicio, user.Rol)
	if err != nil {
		return false, fmt.Errorf("insert usuario: %w", r.db.Dialect.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert usuario: %w", err)
	}
	return n > 0, nil
}

// UpdateLastLogin registra la fecha y hora del último inicio de sesión.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, nombre, at string) error {
	query := r.db.X.Rebind(`UPDATE usuarios SET fecha_hora_ultimo_inicio = ? WHERE nombre = ?`)
	if _, err := r.db.X.ExecContext(ctx, query, at, nombre); err != nil {
		return fmt.Errorf("update ultimo inicio: %w", r.db.Dialect.MapError(err))
	}
	return nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, nombre, hash string) error {
	query := r.db.X.Rebind(`UPDATE usuarios SET password = ? WHERE nombre = ?`)
	if _, err := r.db.X.ExecContext(ctx, query, hash, nombre); err != nil {
		return fmt.Errorf("update password: %w", r.db.Dialect.MapError(err))
	}
	return nil
}
