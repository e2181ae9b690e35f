package jwt_test

import (
	"strings"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-pe/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := jwt.Generate(secret, "caja-1", "20100070971", jwt.RoleEmisor, "facturacion-pe-test", 60)
	require.NoError(t, err)

	subject, ruc, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "caja-1", subject)
	assert.Equal(t, "20100070971", ruc)
	assert.Equal(t, jwt.RoleEmisor, role)
}

func TestGenerate_JTIUnico(t *testing.T) {
	tok1, err := jwt.Generate(secret, "a", "20100070971", jwt.RoleAdmin, "x", 60)
	require.NoError(t, err)
	tok2, err := jwt.Generate(secret, "a", "20100070971", jwt.RoleAdmin, "x", 60)
	require.NoError(t, err)

	c1, c2 := &jwt.Claims{}, &jwt.Claims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok1, c1)
	require.NoError(t, err)
	_, _, err = gojwt.NewParser().ParseUnverified(tok2, c2)
	require.NoError(t, err)
	assert.Len(t, c1.ID, 36)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "a", "20100070971", jwt.RoleAdmin, "x", 60)
	assert.ErrorIs(t, err, jwt.ErrSecretVacio)

	_, _, _, err = jwt.Parse("", "cualquier.cosa.aqui")
	assert.ErrorIs(t, err, jwt.ErrSecretVacio)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "a", "20100070971", jwt.RoleAdmin, "x", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := jwt.Generate(secret, "a", "20100070971", jwt.RoleAdmin, "x", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_TokenMalFormado(t *testing.T) {
	_, _, _, err := jwt.Parse(secret, "no-es-un-jwt")
	assert.Error(t, err)

	tok, err := jwt.Generate(secret, "a", "20100070971", jwt.RoleAdmin, "x", 60)
	require.NoError(t, err)
	partes := strings.Split(tok, ".")
	_, _, _, err = jwt.Parse(secret, partes[0]+"."+partes[1]+".firmaalterada")
	assert.Error(t, err)
}
