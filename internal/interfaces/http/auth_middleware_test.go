package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/crm-ventas/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/crm-ventas/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "crm-ventas-test"
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler que devuelve el id extraído del token.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})
	return app
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Token válido -> 200 y el user_id del Subject queda disponible en locals.
func TestAuthMiddleware_TokenValido_ExtraeUserID(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, 24)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
}

// Sin header Authorization -> 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Header sin esquema Bearer -> 401.
func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado -> 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token expirado -> 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secret -> 401.
func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testIssuer, 24)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
