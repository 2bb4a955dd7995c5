package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/stock-lite/internal/application/auth"
	"github.com/tu-usuario/stock-lite/internal/application/backup"
	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/internal/application/item"
	"github.com/tu-usuario/stock-lite/internal/application/ledger"
	"github.com/tu-usuario/stock-lite/internal/application/report"
	"github.com/tu-usuario/stock-lite/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-lite/internal/infrastructure/storage"
	"github.com/tu-usuario/stock-lite/pkg/jwt"
)

const (
	testSecret   = "clave-de-prueba-muy-larga"
	testUser     = "admin"
	testPassword = "secreta123"
)

// newAuthApp levanta la app con autenticación activa.
func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	kv := storage.NewMemory()
	items := storage.NewItemRepository(kv)
	movs := storage.NewMovementRepository(kv)
	runner := storage.NewTxRunner(kv)
	itemUC := item.NewUseCase(runner, items, 5)

	app := fiber.New()
	Router(app, RouterDeps{
		ItemUC:   itemUC,
		LedgerUC: ledger.NewUseCase(runner, movs),
		BackupUC: backup.NewUseCase(runner, items, movs),
		ReportUC: report.NewUseCase(itemUC, pdf.NewMarotoStockReport("StockLite Test")),
		AuthUC: auth.NewUseCase(auth.Config{
			Username:     testUser,
			PasswordHash: string(hash),
			JWTSecret:    testSecret,
			ExpMinutes:   60,
			Issuer:       "stock-lite-test",
		}),
		JWTSecret:  testSecret,
		AuthActive: true,
	})
	return app
}

func TestAuth_SinTokenResponde401(t *testing.T) {
	app := newAuthApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/items/", nil)

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "MISSING_TOKEN", errBody.Code)
}

func TestAuth_FormatoInvalidoResponde401(t *testing.T) {
	app := newAuthApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/items/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_TOKEN", errBody.Code)
}

func TestAuth_TokenConOtraFirmaResponde401(t *testing.T) {
	app := newAuthApp(t)

	forged, err := jwt.Generate("otra-clave", testUser, "stock-lite-test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/api/items/", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, errTest := app.Test(req, -1)
	require.NoError(t, errTest)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_LoginYAccesoConToken(t *testing.T) {
	app := newAuthApp(t)

	// Credenciales malas primero.
	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", dto.LoginRequest{
		Username: testUser, Password: "equivocada",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "BAD_CREDENTIALS", errBody.Code)

	// Login correcto emite el token.
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", dto.LoginRequest{
		Username: testUser, Password: testPassword,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, 3600, login.ExpiresIn)

	// El token habilita el acceso a la API protegida.
	req := httptest.NewRequest(fiber.MethodGet, "/api/items/", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
