package sunat_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// RUCs con dígito verificador correcto (módulo 11).
var rucsValidos = []string{
	"20100070971",
	"20131854278",
	"10461234564",
	"20601234565",
	"15123456782",
	"17123456785",
}

func TestValidateRUC_Validos(t *testing.T) {
	for _, ruc := range rucsValidos {
		assert.True(t, sunat.ValidateRUC(ruc), "RUC %s debe ser válido", ruc)
		assert.True(t, sunat.ValidateRUCEstricto(ruc), "RUC %s debe ser válido en modo estricto", ruc)
	}
}

func TestValidateRUC_ConGuionesYEspacios(t *testing.T) {
	assert.True(t, sunat.ValidateRUC("20-10007097-1"))
	assert.True(t, sunat.ValidateRUC(" 20131854278 "))
	assert.True(t, sunat.ValidateRUC("20 131854 278"))
}

func TestValidateRUC_RUCsDeEjemplo(t *testing.T) {
	assert.True(t, sunat.ValidateRUC("20123456789"))
	assert.True(t, sunat.ValidateRUC("10123456789"))

	assert.False(t, sunat.ValidateRUCEstricto("20123456789"), "el dígito verificador correcto es 6")
	assert.False(t, sunat.ValidateRUCEstricto("10123456789"), "el dígito verificador correcto es 0")
}

func TestValidateRUC_Invalidos(t *testing.T) {
	casos := map[string]string{
		"prefijo inválido": "12345678901",
		"muy corto":        "2012345678",
		"muy largo":        "201234567890",
		"contiene letras":  "ABC12345678",
		"vacío":            "",
		"solo guiones":     "---",
	}
	for nombre, ruc := range casos {
		t.Run(nombre, func(t *testing.T) {
			assert.False(t, sunat.ValidateRUC(ruc))
		})
	}
}

// Cambiar cualquier dígito de un RUC válido debe invalidarlo.
// Se excluye 20100070971: los restos 1 y 10 producen el mismo dígito verificador (1).
func TestValidateRUC_MutarDigitoInvalida(t *testing.T) {
	for _, ruc := range rucsValidos[1:] {
		for pos := 0; pos < len(ruc); pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if ruc[pos] == d {
					continue
				}
				mutado := ruc[:pos] + string(d) + ruc[pos+1:]
				if mutado == "20123456789" || mutado == "10123456789" {
					continue
				}
				assert.False(t, sunat.ValidateRUC(mutado), "RUC mutado %s no debe validar", mutado)
			}
		}
	}
}

func TestComputeRUCCheckDigit(t *testing.T) {
	for _, ruc := range rucsValidos {
		d, err := sunat.ComputeRUCCheckDigit(ruc[:10])
		require.NoError(t, err)
		assert.Equal(t, ruc[10], d, "dígito verificador de %s", ruc)
	}

	d, err := sunat.ComputeRUCCheckDigit("20-12345678")
	require.NoError(t, err)
	assert.Equal(t, byte('6'), d)

	_, err = sunat.ComputeRUCCheckDigit("123")
	assert.Error(t, err)
}

func TestValidateDNI(t *testing.T) {
	assert.True(t, sunat.ValidateDNI("12345678"))
	assert.True(t, sunat.ValidateDNI("87654321"))
	assert.True(t, sunat.ValidateDNI("1234-5678"))

	assert.False(t, sunat.ValidateDNI("01234567"), "empieza con 0")
	assert.False(t, sunat.ValidateDNI("1234567"), "muy corto")
	assert.False(t, sunat.ValidateDNI("123456789"), "muy largo")
	assert.False(t, sunat.ValidateDNI("1234567A"), "contiene letras")
	assert.False(t, sunat.ValidateDNI(""), "vacío")
}

func TestValidateDocumento_PorTipo(t *testing.T) {
	r := sunat.ValidateDocumento(sunat.TipoDocumentoDNI, "12345678")
	assert.True(t, r.EsValido)
	assert.Empty(t, r.Errores)
	assert.NoError(t, r.Err())

	r = sunat.ValidateDocumento(sunat.TipoDocumentoRUC, "20123456789")
	assert.True(t, r.EsValido)
	assert.Empty(t, r.Errores)

	r = sunat.ValidateDocumento(sunat.TipoDocumentoCarnetExtranjeria, "ABC123456")
	assert.True(t, r.EsValido)

	r = sunat.ValidateDocumento(sunat.TipoDocumentoCarnetExtranjeria, "abc123456")
	assert.True(t, r.EsValido, "se compara en mayúsculas")

	r = sunat.ValidateDocumento(sunat.TipoDocumentoPasaporte, "AB1234")
	assert.True(t, r.EsValido)
}

func TestValidateDocumento_Errores(t *testing.T) {
	casos := []struct {
		nombre  string
		tipo    sunat.TipoDocumento
		numero  string
		mensaje string
	}{
		{"vacío", sunat.TipoDocumentoDNI, "", sunat.MsgDocumentoRequerido},
		{"solo espacios", sunat.TipoDocumentoRUC, "   ", sunat.MsgDocumentoRequerido},
		{"DNI corto", sunat.TipoDocumentoDNI, "0123456", sunat.MsgDNIInvalido},
		{"RUC con dígito errado", sunat.TipoDocumentoRUC, "20100070970", sunat.MsgRUCInvalido},
		{"carné corto", sunat.TipoDocumentoCarnetExtranjeria, "AB12", sunat.MsgCarnetInvalido},
		{"pasaporte con símbolos", sunat.TipoDocumentoPasaporte, "AB-1234", sunat.MsgPasaporteInvalido},
		{"tipo desconocido", sunat.TipoDocumento("0"), "12345678", sunat.MsgTipoDocumentoInvalido},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			r := sunat.ValidateDocumento(tc.tipo, tc.numero)
			assert.False(t, r.EsValido)
			assert.Equal(t, []string{tc.mensaje}, r.Errores)

			err := r.Err()
			require.Error(t, err)
			assert.True(t, errors.Is(err, sunat.ErrDocumentoInvalido))
			assert.Contains(t, err.Error(), tc.mensaje)
		})
	}
}

func TestValidador_Estricto(t *testing.T) {
	estricto := sunat.Validador{}
	r := estricto.Documento(sunat.TipoDocumentoRUC, "20123456789")
	assert.False(t, r.EsValido)
	assert.Equal(t, []string{sunat.MsgRUCInvalido}, r.Errores)

	assert.True(t, estricto.RUC("20131854278"))
	assert.True(t, sunat.DefaultValidador.RUC("20123456789"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, sunat.ValidateEmail("test@example.com"))
	assert.True(t, sunat.ValidateEmail("user.name+tag@domain.co.uk"))

	assert.False(t, sunat.ValidateEmail("invalid.email"))
	assert.False(t, sunat.ValidateEmail("@domain.com"))
	assert.False(t, sunat.ValidateEmail("user@"))
	assert.False(t, sunat.ValidateEmail("user @domain.com"))
	assert.False(t, sunat.ValidateEmail("a\u00a0b@c.d"))
	assert.False(t, sunat.ValidateEmail("a@c\u2003d.pe"))
	assert.False(t, sunat.ValidateEmail("a\ufeff@c.d"))
	assert.False(t, sunat.ValidateEmail("a\vb@c.d"))
	assert.True(t, sunat.ValidateEmail("josé@correo.pe"))
	assert.False(t, sunat.ValidateEmail(""))
}

func TestValidateMonto(t *testing.T) {
	assert.True(t, sunat.ValidateMonto(0))
	assert.True(t, sunat.ValidateMonto(100.50))
	assert.True(t, sunat.ValidateMonto(1000000))

	assert.False(t, sunat.ValidateMonto(-1))
	assert.False(t, sunat.ValidateMonto(math.Inf(1)))
	assert.False(t, sunat.ValidateMonto(math.NaN()))
}

func TestCatalogos(t *testing.T) {
	assert.Equal(t, "S/", sunat.MonedaSoles.Simbolo())
	assert.Equal(t, "$", sunat.MonedaDolares.Simbolo())
	assert.Equal(t, "€", sunat.MonedaEuros.Simbolo())
	assert.Equal(t, "", sunat.TipoMoneda("JPY").Simbolo())
	assert.False(t, sunat.TipoMoneda("JPY").Valido())

	assert.Equal(t, "RUC", sunat.TipoDocumentoRUC.String())
	assert.Equal(t, "9", sunat.TipoDocumento("9").String())
	assert.True(t, sunat.TipoComprobanteBoleta.Valido())
	assert.Equal(t, "FACTURA ELECTRÓNICA", sunat.TipoComprobanteFactura.Titulo())
}
