// Package commands subcomandos de inventarioctl: inicializar la base, describir tablas e importar CSV.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand comando raíz de inventarioctl.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "inventarioctl",
		Short: "Herramientas de administración del inventario",
		Long: `Herramientas de línea de comandos sobre la misma base de datos que usa el servidor web.

La conexión se toma de las variables de entorno (DB_DRIVER, DB_PATH, DATABASE_URL)
y puede sobrescribirse con las banderas de cada comando.`,
		SilenceUsage: true,
	}
	root.AddCommand(newInitDBCommand())
	root.AddCommand(newDescribeCommand())
	root.AddCommand(newImportCommand())
	return root
}
