package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

var (
	latin1    bool
	pdfSalida string
)

var validarCmd = &cobra.Command{
	Use:   "validar [archivo.json]",
	Short: "Validar un comprobante",
	Long: `Valida un comprobante en JSON: estructura, documentos de emisor y receptor,
catálogos y coherencia de totales. Con "-" lee de la entrada estándar.

Imprime el resultado en JSON y termina con error si el comprobante no es válido.

Ejemplos:
  factura validar comprobante.json
  iconv -t latin1 comprobante.json | factura validar - --latin1`,
	Args: cobra.ExactArgs(1),
	RunE: runValidar,
}

var pdfCmd = &cobra.Command{
	Use:   "pdf [archivo.json]",
	Short: "Generar la representación impresa en PDF",
	Long: `Valida el comprobante y escribe su representación impresa en PDF.
Sin -o, el archivo se llama RUC-TIPO-SERIE-NUMERO.pdf.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDF,
}

func init() {
	rootCmd.AddCommand(validarCmd)
	rootCmd.AddCommand(pdfCmd)

	for _, c := range []*cobra.Command{validarCmd, pdfCmd} {
		c.Flags().BoolVar(&latin1, "latin1", false, "El archivo está codificado en ISO-8859-1")
	}
	pdfCmd.Flags().StringVarP(&pdfSalida, "output", "o", "", "Archivo de salida")
}

func runValidar(cmd *cobra.Command, args []string) error {
	f, err := leerFactura(cmd, args[0])
	if err != nil {
		return err
	}
	resp := newUseCase().ValidarFactura(cmd.Context(), f)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return err
	}
	if !resp.EsValida {
		return fmt.Errorf("comprobante inválido: %d error(es)", len(resp.Errores))
	}
	return nil
}

func runPDF(cmd *cobra.Command, args []string) error {
	f, err := leerFactura(cmd, args[0])
	if err != nil {
		return err
	}
	pdfBytes, filename, err := newUseCase().GenerarPDF(cmd.Context(), "", f)
	if err != nil {
		return err
	}
	if pdfSalida != "" {
		filename = pdfSalida
	}
	if err := os.WriteFile(filename, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", filename, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), filename)
	return nil
}

// leerFactura decodifica el comprobante desde path ("-" = stdin), opcionalmente en Latin-1.
func leerFactura(cmd *cobra.Command, path string) (*sunat.Factura, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}

	var f sunat.Factura
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("leer comprobante %s: %w", path, err)
	}
	log.Debug().Str("archivo", path).Str("comprobante", f.NumeroCompleto()).Int("items", len(f.Items)).Msg("comprobante leído")
	return &f, nil
}
