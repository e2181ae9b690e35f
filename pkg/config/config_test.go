package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-pe/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "facturacion-pe", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Facturacion.PermitirRUCPrueba)
	assert.Equal(t, "PEN", cfg.Facturacion.Moneda)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("SUNAT_PERMITIR_RUC_PRUEBA", "true")
	t.Setenv("FACTURA_MONEDA", "usd")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "secreto", cfg.JWT.Secret)
	assert.True(t, cfg.Facturacion.PermitirRUCPrueba)
	assert.Equal(t, "USD", cfg.Facturacion.Moneda)
}

func TestLoad_ValoresMalFormados(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_EXPIRATION_MINUTES", "abc")
	t.Setenv("SUNAT_PERMITIR_RUC_PRUEBA", "quizás")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.False(t, cfg.Facturacion.PermitirRUCPrueba)
}

func TestLoad_PuertoFueraDeRango(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}

// chdir cambia el directorio de trabajo durante el test y lo restaura al
// terminar (equivalente a testing.T.Chdir, disponible desde Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
