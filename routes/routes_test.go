package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/controllers"
	"github.com/marcelosanto/telegram-food-boot/models"
	"github.com/marcelosanto/telegram-food-boot/services"
)

var routesDBSeq atomic.Int64

const routesFoodJSON = `[
  {"id": 12, "description": "Arroz, branco, cozido", "energy_kcal": "130",
   "protein_g": "2.5", "lipid_g": "0.2", "carbohydrate_g": "28.1", "fiber_g": "1.6"}
]`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Env{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLMinutes = 30
	config.Cfg = cfg

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", routesDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserToken{},
		&models.MealEntry{},
		&models.Goal{},
		&models.WaterEntry{},
		&models.Calculation{},
		&models.Reminder{},
	))
	config.DB = db

	foods, err := services.ParseFoodTable([]byte(routesFoodJSON))
	require.NoError(t, err)

	notifier := services.NewNotifierService(discardOutbox{})
	t.Cleanup(notifier.Stop)
	controllers.Init(foods, notifier)

	return SetupRouter()
}

type discardOutbox struct{}

func (discardOutbox) Send(uint, string) error { return nil }

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	decoded := map[string]any{}
	_ = json.Unmarshal(recorder.Body.Bytes(), &decoded)
	return recorder, decoded
}

func registerTestUser(t *testing.T, router *gin.Engine) (token string, userID float64) {
	t.Helper()
	recorder, body := doJSON(t, router, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "maria",
		"password": "segredo123",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	token, _ = body["access_token"].(string)
	require.NotEmpty(t, token)
	userID, _ = body["user_id"].(float64)
	require.NotZero(t, userID)
	return token, userID
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	recorder, body := doJSON(t, router, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "maria",
		"password": "segredo123",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotEmpty(t, body["access_token"])

	recorder, body = doJSON(t, router, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "maria",
		"password": "outrasenha",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Username already exists", body["error"])

	recorder, _ = doJSON(t, router, http.MethodPost, "/api/v1/login", "", map[string]string{
		"username": "maria",
		"password": "segredo123",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder, body = doJSON(t, router, http.MethodPost, "/api/v1/login", "", map[string]string{
		"username": "maria",
		"password": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Incorrect username or password", body["error"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/meals", "/api/v1/goals", "/api/v1/water", "/api/v1/calculations", "/api/v1/reminders"} {
		recorder, _ := doJSON(t, router, http.MethodPost, path, "", map[string]any{})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "path %s", path)
	}

	recorder, _ := doJSON(t, router, http.MethodPost, "/api/v1/meals", "garbage-token", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateMeal(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerTestUser(t, router)

	recorder, body := doJSON(t, router, http.MethodPost, "/api/v1/meals", token, map[string]any{
		"meal_type": "lunch",
		"food_id":   12,
		"quantity":  200,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body["message"], "Refeição registrada")

	recorder, _ = doJSON(t, router, http.MethodPost, "/api/v1/meals", token, map[string]any{
		"meal_type": "brunch",
		"food_id":   12,
		"quantity":  200,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, _ = doJSON(t, router, http.MethodPost, "/api/v1/meals", token, map[string]any{
		"meal_type": "lunch",
		"food_id":   999,
		"quantity":  200,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateWaterReportsDailyTotal(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerTestUser(t, router)

	recorder, body := doJSON(t, router, http.MethodPost, "/api/v1/water", token, map[string]any{"amount": 250})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body["message"], "250ml")

	recorder, body = doJSON(t, router, http.MethodPost, "/api/v1/water", token, map[string]any{"amount": 500})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body["message"], "750ml")
}

func TestCreateReminderValidatesTime(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerTestUser(t, router)

	recorder, body := doJSON(t, router, http.MethodPost, "/api/v1/reminders", token, map[string]any{
		"type": "meal_reminder",
		"time": "25:00",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, body["error"], "Formato de horário inválido")

	recorder, body = doJSON(t, router, http.MethodPost, "/api/v1/reminders", token, map[string]any{
		"type": "meal_reminder",
		"time": "07:30",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body["message"], "07:30")
}

func TestCreateCalculationIMC(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerTestUser(t, router)

	recorder, body := doJSON(t, router, http.MethodPost, "/api/v1/calculations", token, map[string]any{
		"calc_type": "imc",
		"weight":    70,
		"height":    175,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	message, _ := body["message"].(string)
	assert.Contains(t, message, "22.9")
	assert.Contains(t, message, "Peso normal")

	// height is required for the imc calculator
	recorder, _ = doJSON(t, router, http.MethodPost, "/api/v1/calculations", token, map[string]any{
		"calc_type": "imc",
		"weight":    70,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSummaryEnforcesTokenOwnership(t *testing.T) {
	router := newTestRouter(t)
	token, userID := registerTestUser(t, router)

	_, _ = doJSON(t, router, http.MethodPost, "/api/v1/meals", token, map[string]any{
		"meal_type": "lunch",
		"food_id":   12,
		"quantity":  200,
	})

	recorder, body := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/summary/%d", int(userID)), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	text, _ := body["text"].(string)
	assert.Contains(t, text, "Resumo Diário")
	assert.Contains(t, text, "Arroz, branco, cozido")

	recorder, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/summary/%d", int(userID)+1), token, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestTipsArePublic(t *testing.T) {
	router := newTestRouter(t)

	recorder, body := doJSON(t, router, http.MethodGet, "/api/v1/tips", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	tip, _ := body["tip"].(string)
	assert.NotEmpty(t, tip)
}
