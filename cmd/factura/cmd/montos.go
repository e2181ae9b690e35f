package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion-pe/internal/application/dto"
)

var palabrasCmd = &cobra.Command{
	Use:   "palabras [monto]",
	Short: "Monto formateado y en letras",
	Long: `Imprime el monto formateado con el símbolo de la moneda y la leyenda en letras.

Ejemplos:
  factura palabras 118.50
  factura palabras 2500 --moneda USD`,
	Args: cobra.ExactArgs(1),
	RunE: runPalabras,
}

var serieCmd = &cobra.Command{
	Use:   "serie [serie] [último número]",
	Short: "Siguiente número correlativo de una serie",
	Args:  cobra.ExactArgs(2),
	RunE:  runSerie,
}

func init() {
	rootCmd.AddCommand(palabrasCmd)
	rootCmd.AddCommand(serieCmd)
}

func runPalabras(cmd *cobra.Command, args []string) error {
	monto, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("monto inválido %q", args[0])
	}
	out, err := newUseCase().FormatearMonto(dto.FormatearMontoRequest{Monto: monto})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Formateado)
	fmt.Fprintln(cmd.OutOrStdout(), out.EnLetras)
	return nil
}

func runSerie(cmd *cobra.Command, args []string) error {
	ultimo, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("último número inválido %q", args[1])
	}
	out, err := newUseCase().SiguienteNumero(args[0], ultimo)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.NumeroCompleto)
	return nil
}
