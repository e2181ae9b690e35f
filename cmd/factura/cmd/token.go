package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion-pe/pkg/jwt"
)

var (
	tokenRUC    string
	tokenRol    string
	tokenSujeto string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emitir un token de acceso para la API",
	Long: `Firma un JWT con JWT_SECRET para el RUC emisor y rol indicados.

Roles: admin, emisor, consulta.

Ejemplo:
  JWT_SECRET=... factura token --ruc 20100070971 --rol emisor`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenRUC, "ruc", "", "RUC del emisor (obligatorio)")
	tokenCmd.Flags().StringVar(&tokenRol, "rol", jwt.RoleEmisor, "Rol: admin, emisor, consulta")
	tokenCmd.Flags().StringVar(&tokenSujeto, "sujeto", "cli", "Subject del token")
	_ = tokenCmd.MarkFlagRequired("ruc")
}

func runToken(cmd *cobra.Command, _ []string) error {
	switch tokenRol {
	case jwt.RoleAdmin, jwt.RoleEmisor, jwt.RoleConsulta:
	default:
		return fmt.Errorf("rol desconocido %q", tokenRol)
	}
	if !validador().RUC(tokenRUC) {
		return fmt.Errorf("RUC inválido %q", tokenRUC)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, tokenSujeto, tokenRUC, tokenRol, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		return err
	}
	log.Debug().Str("ruc", tokenRUC).Str("rol", tokenRol).Int("minutos", cfg.JWT.Expiration).Msg("token emitido")
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
