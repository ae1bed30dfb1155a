// Package metrics contadores Prometheus de la aplicación, expuestos en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de una operación contada.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultDenied   = "denegado"
	ResultInvalid  = "invalido"
	ResultNotFound = "no_encontrado"
)

var (
	// Mutations cuenta inserciones, modificaciones y eliminaciones por tabla y resultado.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_mutaciones_total",
		Help: "Total de operaciones de escritura sobre tablas del inventario",
	}, []string{"tabla", "operacion", "resultado"})

	// RowsDeleted cuenta las filas efectivamente eliminadas por tabla.
	RowsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_filas_eliminadas_total",
		Help: "Total de filas eliminadas por tabla",
	}, []string{"tabla"})

	// Logins cuenta intentos de inicio de sesión por resultado.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_inicios_sesion_total",
		Help: "Total de intentos de inicio de sesión",
	}, []string{"resultado"})

	// PasswordUpgrades cuenta hashes heredados reemplazados por bcrypt.
	PasswordUpgrades = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_passwords_migradas_total",
		Help: "Total de contraseñas migradas desde el hash heredado",
	})
)
