package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/crm-ventas/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "crm-ventas-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID, "el Subject debe mapear de vuelta al mismo usuario")
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 hora (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testIssuer, 24)
	assert.Error(t, err)
}
