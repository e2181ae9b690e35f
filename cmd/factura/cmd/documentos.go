package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion-pe/pkg/formato"
	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

var digito bool

var rucCmd = &cobra.Command{
	Use:   "ruc [números...]",
	Short: "Validar RUCs (dígito verificador módulo 11)",
	Long: `Valida uno o más RUCs: 11 dígitos, prefijo 10, 15, 17 o 20 y dígito verificador.
Termina con error si alguno es inválido.

Con --digito calcula el dígito verificador a partir de los 10 primeros dígitos.

Ejemplos:
  factura ruc 20100070971 20131854278
  factura ruc 2010007097 --digito`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRUC,
}

var dniCmd = &cobra.Command{
	Use:   "dni [números...]",
	Short: "Validar DNIs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validarDocumentos(cmd, sunat.TipoDocumentoDNI, formato.FormatoDNI, args)
	},
}

func init() {
	rootCmd.AddCommand(rucCmd)
	rootCmd.AddCommand(dniCmd)

	rucCmd.Flags().BoolVar(&digito, "digito", false, "Calcular el dígito verificador en lugar de validar")
}

func runRUC(cmd *cobra.Command, args []string) error {
	if !digito {
		return validarDocumentos(cmd, sunat.TipoDocumentoRUC, formato.FormatoRUC, args)
	}
	for _, a := range args {
		d, err := sunat.ComputeRUCCheckDigit(a)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%c\n", a, d)
	}
	return nil
}

// validarDocumentos imprime una línea por documento: número formateado, VÁLIDO o el error.
func validarDocumentos(cmd *cobra.Command, tipo sunat.TipoDocumento, fmtDoc formato.FormatoDocumento, numeros []string) error {
	v := validador()
	invalidos := 0
	for _, n := range numeros {
		res := v.Documento(tipo, n)
		if res.EsValido {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tVÁLIDO\n", formato.FormatDocumento(n, fmtDoc))
			continue
		}
		invalidos++
		fmt.Fprintf(cmd.OutOrStdout(), "%s\tINVÁLIDO\t%s\n", n, res.Errores[0])
	}
	log.Debug().Str("tipo", tipo.String()).Int("total", len(numeros)).Int("invalidos", invalidos).Msg("documentos validados")
	if invalidos > 0 {
		return fmt.Errorf("%d de %d %s inválido(s)", invalidos, len(numeros), tipo.String())
	}
	return nil
}
