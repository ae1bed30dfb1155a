// Package audit sella las columnas de auditoría en cada escritura.
package audit

import (
	"time"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/repository"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/schema"
)

// Stamper produce los valores de auditoría con un reloj inyectable.
type Stamper struct {
	now func() time.Time
}

// NewStamper crea un Stamper; con now nil usa time.Now.
func NewStamper(now func() time.Time) *Stamper {
	if now == nil {
		now = time.Now
	}
	return &Stamper{now: now}
}

// Now devuelve la hora actual con formato YYYY-MM-DD HH:MM:SS.
func (s *Stamper) Now() string {
	return entity.FormatTimestamp(s.now())
}

// ForInsert creación, modificación y usuario; creación y modificación comparten instante.
func (s *Stamper) ForInsert(usuario string) []repository.Assignment {
	ts := s.Now()
	return []repository.Assignment{
		{Column: schema.ColCreacion, Value: ts},
		{Column: schema.ColModificacion, Value: ts},
		{Column: schema.ColUsuario, Value: usuario},
	}
}

// ForUpdate modificación y usuario; la fecha de creación no se toca.
func (s *Stamper) ForUpdate(usuario string) []repository.Assignment {
	return []repository.Assignment{
		{Column: schema.ColModificacion, Value: s.Now()},
		{Column: schema.ColUsuario, Value: usuario},
	}
}
