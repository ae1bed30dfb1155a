package commands

import (
	"fmt"
	"sort"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/setup"
)

func newInitDBCommand() *cobra.Command {
	flags := dbFlags()
	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Crea los usuarios base y las columnas de auditoría",
		Long: `Prepara la base de datos igual que el servidor al arrancar:
crea la tabla de usuarios con los usuarios base que falten, agrega las columnas
de auditoría a las tablas existentes y completa las fechas de creación vacías.
Ejecutarlo varias veces no cambia nada que ya esté listo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.Close()

			rep, err := setup.NewInitializer(e.authUC, e.schema, e.stamper, e.log).Run(cmd.Context())
			if err != nil {
				return err
			}
			printReport(cmd, rep)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func printReport(cmd *cobra.Command, rep *setup.Report) {
	out := cmd.OutOrStdout()
	if len(rep.UsersCreated) == 0 {
		fmt.Fprintln(out, "Usuarios: sin cambios")
	} else {
		fmt.Fprintf(out, "Usuarios creados: %v\n", rep.UsersCreated)
	}
	tables := make([]string, 0, len(rep.ColumnsAdded))
	for t := range rep.ColumnsAdded {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		fmt.Fprintf(out, "%s: columnas agregadas %v\n", t, rep.ColumnsAdded[t])
	}
	for t, n := range rep.Backfilled {
		fmt.Fprintf(out, "%s: %d filas con fecha de creación completada\n", t, n)
	}
	for _, t := range rep.Skipped {
		fmt.Fprintf(out, "%s: no existe, se omite\n", t)
	}
}
