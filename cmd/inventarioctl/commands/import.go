package commands

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/importer"
)

const (
	usuarioFlag   = "usuario"
	encodingFlag  = "encoding"
	separatorFlag = "separador"
)

func newImportCommand() *cobra.Command {
	flags := dbFlags()
	flags[usuarioFlag] = &cobraflags.StringFlag{
		Name:  usuarioFlag,
		Value: "ADMIN",
		Usage: "Usuario que queda en la auditoría; su rol debe poder editar la tabla",
	}
	flags[encodingFlag] = &cobraflags.StringFlag{
		Name:  encodingFlag,
		Value: importer.EncodingUTF8,
		Usage: "Codificación del archivo (utf-8, latin1, windows-1252)",
	}
	flags[separatorFlag] = &cobraflags.StringFlag{
		Name:  separatorFlag,
		Value: "",
		Usage: "Separador de campos; vacío lo detecta (',' o ';')",
	}

	cmd := &cobra.Command{
		Use:   "importar <tabla> <archivo.csv>",
		Short: "Inserta filas desde un CSV con encabezado",
		Long: `Inserta cada fila del CSV en la tabla. La primera fila debe tener los nombres
de columna. Las filas inválidas se informan y el resto se sigue insertando.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := lookupTable(args[0])
			if err != nil {
				return err
			}
			var comma rune
			if sep := flags[separatorFlag].GetString(); sep != "" {
				r, size := utf8.DecodeRuneInString(sep)
				if size != len(sep) {
					return fmt.Errorf("el separador debe ser un solo carácter: %q", sep)
				}
				comma = r
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			e, err := openEnv(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer e.Close()

			im := importer.New(e.tableUC, e.users, e.log)
			res, err := im.Import(cmd.Context(), spec, f, importer.Options{
				Usuario:  flags[usuarioFlag].GetString(),
				Encoding: flags[encodingFlag].GetString(),
				Comma:    comma,
			})
			if res != nil {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Insertadas: %d\n", res.Inserted)
				for _, rowErr := range res.Failed {
					fmt.Fprintf(out, "  %v\n", rowErr)
				}
			}
			if err != nil {
				return err
			}
			if len(res.Failed) > 0 {
				return fmt.Errorf("%d filas no se importaron", len(res.Failed))
			}
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
