package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

func newDescribeCommand() *cobra.Command {
	flags := dbFlags()
	cmd := &cobra.Command{
		Use:   "describir <tabla>",
		Short: "Muestra las columnas de una tabla y cómo se editan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := lookupTable(args[0])
			if err != nil {
				return err
			}
			e, err := openEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.Close()

			cols, err := e.schema.Describe(cmd.Context(), spec.Name)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "COLUMNA\tTIPO\tENTRADA\tNOT NULL\tPK\tOCULTA")
			for _, c := range cols {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%d\t%t\n", c.Name, c.Type, c.Kind, c.NotNull, c.PK, c.Hidden)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nEditan: %v\n", spec.EditRoles)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
