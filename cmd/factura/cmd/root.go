package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion-pe/internal/application/billing"
	infrapdf "github.com/jhoicas/facturacion-pe/internal/infrastructure/pdf"
	"github.com/jhoicas/facturacion-pe/pkg/config"
	"github.com/jhoicas/facturacion-pe/pkg/logger"
	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

var (
	version = "1.0.0"

	// Flags globales
	verbose   bool
	rucPrueba bool
	moneda    string

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "factura",
	Short: "Utilidades para comprobantes electrónicos SUNAT",
	Long: `factura valida documentos de identidad y comprobantes electrónicos peruanos,
calcula totales e IGV, numera series y genera la representación impresa en PDF.

Ejemplos:
  # Validar un RUC
  factura ruc 20100070971

  # Monto en letras
  factura palabras 118.50 --moneda USD

  # Siguiente número de la serie
  factura serie F001 41

  # Validar un comprobante (JSON en Latin-1)
  factura validar comprobante.json --latin1

  # Generar el PDF
  factura pdf comprobante.json -o F001-00000042.pdf`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute ejecuta el comando raíz.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Salida de depuración en stderr")
	rootCmd.PersistentFlags().BoolVar(&rucPrueba, "ruc-prueba", false, "Aceptar los RUCs de ejemplo (env: SUNAT_PERMITIR_RUC_PRUEBA)")
	rootCmd.PersistentFlags().StringVar(&moneda, "moneda", "", "Moneda por defecto: PEN, USD, EUR (env: FACTURA_MONEDA)")
}

// setup carga la configuración y el logger antes de cada subcomando.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log = logger.New(logger.Config{Env: "development", Level: level, Output: cmd.ErrOrStderr()})

	if moneda != "" {
		cfg.Facturacion.Moneda = moneda
	}
	cfg.Facturacion.PermitirRUCPrueba = cfg.Facturacion.PermitirRUCPrueba || rucPrueba
	log.Debug().
		Bool("ruc_prueba", cfg.Facturacion.PermitirRUCPrueba).
		Str("moneda", cfg.Facturacion.Moneda).
		Msg("configuración cargada")
	return nil
}

func validador() sunat.Validador {
	return sunat.Validador{PermitirRUCsDePrueba: cfg.Facturacion.PermitirRUCPrueba}
}

func newUseCase() *billing.FacturacionUseCase {
	return billing.NewFacturacionUseCase(validador(), cfg.Facturacion.Moneda, infrapdf.NewMarotoPDFGenerator(), log)
}
