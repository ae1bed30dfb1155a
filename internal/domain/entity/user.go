package entity

import "time"

// Roles válidos para User. El valor coincide con el nombre del usuario semilla.
const (
	RoleAdmin     = "ADMIN"
	RoleProductos = "PRODUCTOS"
	RoleAlmacenes = "ALMACENES"
)

// Roles lista el conjunto cerrado de roles del sistema.
var Roles = []string{RoleAdmin, RoleProductos, RoleAlmacenes}

// User representa un registro de la tabla usuarios.
type User struct {
	Nombre       string  `db:"nombre"`
	PasswordHash string  `db:"password"` // bcrypt; los MD5 heredados se migran al iniciar sesión
	UltimoInicio *string `db:"fecha_hora_ultimo_inicio"`
	Rol          string  `db:"rol"`
}

// IsValidRole indica si rol pertenece al conjunto cerrado de roles.
func IsValidRole(rol string) bool {
	for _, r := range Roles {
		if r == rol {
			return true
		}
	}
	return false
}

// LastLogin interpreta fecha_hora_ultimo_inicio; devuelve el valor cero si nunca inició sesión.
func (u *User) LastLogin() time.Time {
	if u == nil || u.UltimoInicio == nil {
		return time.Time{}
	}
	t, err := time.ParseInLocation(TimestampLayout, *u.UltimoInicio, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
