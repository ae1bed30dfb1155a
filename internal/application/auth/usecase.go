package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/repository"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/metrics"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/jwt"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/password"
)

// SessionConfig configuración para firmar y validar el token de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SeedUser usuario base que se crea al inicializar si no existe.
type SeedUser struct {
	Nombre   string
	Password string
	Rol      string
}

// DefaultSeeds usuarios base; el nombre coincide con el rol.
var DefaultSeeds = []SeedUser{
	{Nombre: "ADMIN", Password: "admin23", Rol: entity.RoleAdmin},
	{Nombre: "PRODUCTOS", Password: "productos19", Rol: entity.RoleProductos},
	{Nombre: "ALMACENES", Password: "almacenes11", Rol: entity.RoleAlmacenes},
}

// AuthUseCase casos de uso de autenticación: login, sesión y usuarios base.
type AuthUseCase struct {
	users repository.UserRepository
	// signer es nil si la configuración de sesión es inválida; signerErr explica por qué.
	signer    *jwt.Signer
	signerErr error
	now       func() time.Time
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth; con now nil usa time.Now.
func NewAuthUseCase(users repository.UserRepository, session SessionConfig, now func() time.Time, log *logger.Logger) *AuthUseCase {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	signer, err := jwt.NewSigner(session.Secret, session.Issuer, time.Duration(session.ExpMinutes)*time.Minute, now)
	return &AuthUseCase{users: users, signer: signer, signerErr: err, now: now, log: log.Component("auth")}
}

// Login valida nombre/password, registra la hora de inicio y emite el token de sesión.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginForm) (*dto.LoginResult, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" || in.Password == "" {
		metrics.Logins.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, fmt.Errorf("%w: credenciales vacías", domain.ErrValidation)
	}
	user, err := uc.users.FindByNombre(ctx, nombre)
	if err != nil {
		metrics.Logins.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	if user == nil {
		return nil, uc.reject(nombre, "usuario inexistente")
	}
	ok, needsRehash := password.Verify(user.PasswordHash, in.Password)
	if !ok {
		return nil, uc.reject(nombre, "contraseña incorrecta")
	}
	if needsRehash {
		uc.upgradePassword(ctx, user.Nombre, in.Password)
	}

	if err := uc.users.UpdateLastLogin(ctx, user.Nombre, entity.FormatTimestamp(uc.now())); err != nil {
		metrics.Logins.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	token, err := uc.sign(user)
	if err != nil {
		metrics.Logins.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("generar token: %w", err)
	}
	metrics.Logins.WithLabelValues(metrics.ResultOK).Inc()
	uc.log.Info().Str("usuario", user.Nombre).Str("rol", user.Rol).Msg("inicio de sesión")
	return &dto.LoginResult{
		Token:   token,
		Session: dto.Session{Usuario: user.Nombre, Rol: user.Rol},
	}, nil
}

// ParseSession valida el token y devuelve la identidad que contiene.
func (uc *AuthUseCase) ParseSession(token string) (*dto.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	if uc.signer == nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, uc.signerErr)
	}
	claims, err := uc.signer.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !entity.IsValidRole(claims.Rol) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrUnauthorized, claims.Rol)
	}
	return &dto.Session{Usuario: claims.Usuario, Rol: claims.Rol}, nil
}

func (uc *AuthUseCase) sign(user *entity.User) (string, error) {
	if uc.signer == nil {
		return "", uc.signerErr
	}
	return uc.signer.Sign(user.Nombre, user.Rol)
}

// SeedUsers crea los usuarios base que falten; los existentes no se modifican.
// Devuelve los nombres creados.
func (uc *AuthUseCase) SeedUsers(ctx context.Context, seeds []SeedUser) ([]string, error) {
	if err := uc.users.EnsureTable(ctx); err != nil {
		return nil, err
	}
	var created []string
	for _, s := range seeds {
		existing, err := uc.users.FindByNombre(ctx, s.Nombre)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		hash, err := password.Hash(s.Password)
		if err != nil {
			return created, fmt.Errorf("hash %s: %w", s.Nombre, err)
		}
		ok, err := uc.users.Create(ctx, &entity.User{Nombre: s.Nombre, PasswordHash: hash, Rol: s.Rol})
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, s.Nombre)
		}
	}
	if len(created) > 0 {
		uc.log.Info().Strs("usuarios", created).Msg("usuarios base creados")
	}
	return created, nil
}

func (uc *AuthUseCase) reject(nombre, reason string) error {
	metrics.Logins.WithLabelValues(metrics.ResultDenied).Inc()
	uc.log.Warn().Str("usuario", nombre).Str("motivo", reason).Msg("inicio de sesión rechazado")
	return domain.ErrInvalidCredentials
}

// upgradePassword reemplaza un hash heredado por bcrypt. Un fallo aquí no impide el login.
func (uc *AuthUseCase) upgradePassword(ctx context.Context, nombre, plain string) {
	hash, err := password.Hash(plain)
	if err == nil {
		err = uc.users.UpdatePassword(ctx, nombre, hash)
	}
	if err != nil {
		uc.log.Warn().Str("usuario", nombre).Err(err).Msg("no se pudo migrar el hash de contraseña")
		return
	}
	metrics.PasswordUpgrades.Inc()
	uc.log.Info().Str("usuario", nombre).Msg("hash de contraseña migrado a bcrypt")
}
