package sunat

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

// ErrDocumentoInvalido agrupa los errores de validación de un documento de identidad.
var ErrDocumentoInvalido = errors.New("sunat: documento inválido")

// Mensajes de ValidateDocumento.
const (
	MsgDocumentoRequerido    = "El número de documento es requerido"
	MsgDNIInvalido           = "El DNI no tiene un formato válido"
	MsgRUCInvalido           = "El RUC no tiene un formato válido"
	MsgCarnetInvalido        = "El carné de extranjería debe tener entre 8 y 12 caracteres alfanuméricos"
	MsgPasaporteInvalido     = "El pasaporte debe tener entre 6 y 12 caracteres alfanuméricos"
	MsgTipoDocumentoInvalido = "Tipo de documento no válido"
)

var (
	dniPattern       = regexp.MustCompile(`^[1-9][0-9]{7}$`)
	carnetPattern    = regexp.MustCompile(`^[A-Z0-9]{8,12}$`)
	pasaportePattern = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)
)

// En RE2 \s es solo ASCII; \v, \p{Z} y U+FEFF completan los espacios Unicode.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ValidacionResultado resultado de validar un documento: EsValido es true si no hay errores.
type ValidacionResultado struct {
	EsValido bool     `json:"es_valido"`
	Errores  []string `json:"errores"`
}

// Err devuelve nil si el resultado es válido; si no, ErrDocumentoInvalido unido a cada mensaje.
func (r ValidacionResultado) Err() error {
	if r.EsValido {
		return nil
	}
	errs := make([]error, 0, len(r.Errores)+1)
	errs = append(errs, ErrDocumentoInvalido)
	for _, msg := range r.Errores {
		errs = append(errs, errors.New(msg))
	}
	return errors.Join(errs...)
}

func resultado(errores []string) ValidacionResultado {
	if errores == nil {
		errores = []string{}
	}
	return ValidacionResultado{EsValido: len(errores) == 0, Errores: errores}
}

// ValidateDNI valida un DNI: 8 dígitos sin cero inicial, tras quitar espacios y guiones.
func ValidateDNI(dni string) bool {
	if dni == "" {
		return false
	}
	return dniPattern.MatchString(stripSpacesAndHyphens(dni))
}

// Validador aplica la política de validación de RUC.
// El valor cero rechaza los RUCs de ejemplo; DefaultValidador los acepta.
type Validador struct {
	PermitirRUCsDePrueba bool
}

// DefaultValidador reproduce el comportamiento de ValidateRUC y ValidateDocumento.
var DefaultValidador = Validador{PermitirRUCsDePrueba: true}

// RUC valida el número según la política del validador.
func (v Validador) RUC(ruc string) bool {
	if v.PermitirRUCsDePrueba {
		return ValidateRUC(ruc)
	}
	return ValidateRUCEstricto(ruc)
}

// Documento valida un número de documento según su tipo. Acumula a lo sumo un error.
func (v Validador) Documento(tipo TipoDocumento, numero string) ValidacionResultado {
	if strings.TrimSpace(numero) == "" {
		return resultado([]string{MsgDocumentoRequerido})
	}

	var errores []string
	switch tipo {
	case TipoDocumentoDNI:
		if !ValidateDNI(numero) {
			errores = append(errores, MsgDNIInvalido)
		}
	case TipoDocumentoRUC:
		if !v.RUC(numero) {
			errores = append(errores, MsgRUCInvalido)
		}
	case TipoDocumentoCarnetExtranjeria:
		if !carnetPattern.MatchString(strings.ToUpper(numero)) {
			errores = append(errores, MsgCarnetInvalido)
		}
	case TipoDocumentoPasaporte:
		if !pasaportePattern.MatchString(strings.ToUpper(numero)) {
			errores = append(errores, MsgPasaporteInvalido)
		}
	default:
		errores = append(errores, MsgTipoDocumentoInvalido)
	}
	return resultado(errores)
}

// ValidateDocumento valida un documento con DefaultValidador.
func ValidateDocumento(tipo TipoDocumento, numero string) ValidacionResultado {
	return DefaultValidador.Documento(tipo, numero)
}

// ValidateEmail comprobación mínima de forma usuario@dominio.tld (no es RFC 5322).
func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailPattern.MatchString(email)
}

// ValidateMonto true si el monto es finito y no negativo.
func ValidateMonto(monto float64) bool {
	return !math.IsNaN(monto) && !math.IsInf(monto, 0) && monto >= 0
}
