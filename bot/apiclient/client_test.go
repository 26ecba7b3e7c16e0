package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelosanto/telegram-food-boot/bot"
)

type capturedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// newTestServer answers every request with the given status/payload and
// records what arrived.
func newTestServer(t *testing.T, status int, payload any) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var requests []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured := capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&captured.Body)
		}
		requests = append(requests, captured)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func authedClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client := New(server.URL)
	client.storeCredential(1, authResponse{AccessToken: "tok123", UserID: 42})
	return client
}

func TestSignUpStoresCredential(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, map[string]any{
		"access_token": "tok123",
		"token_type":   "bearer",
		"user_id":      42,
	})
	client := New(server.URL)

	require.NoError(t, client.SignUp(context.Background(), 1, "maria", "segredo123"))
	assert.True(t, client.Authenticated(1))
	assert.False(t, client.Authenticated(2))

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/users", req.Path)
	assert.Equal(t, "maria", req.Body["username"])
	assert.Empty(t, req.Auth, "signup is unauthenticated")
}

func TestSignUpUsernameTaken(t *testing.T) {
	server, _ := newTestServer(t, http.StatusBadRequest, map[string]any{
		"detail": "Username already exists",
	})
	client := New(server.URL)

	err := client.SignUp(context.Background(), 1, "maria", "segredo123")
	assert.ErrorIs(t, err, bot.ErrUsernameTaken)
	assert.False(t, client.Authenticated(1))
}

func TestLoginRejected(t *testing.T) {
	server, _ := newTestServer(t, http.StatusUnauthorized, map[string]any{
		"detail": "Incorrect username or password",
	})
	client := New(server.URL)

	err := client.Login(context.Background(), 1, "maria", "errada")
	assert.ErrorIs(t, err, bot.ErrUnauthorized)
	assert.False(t, client.Authenticated(1))
}

func TestCreateMealSendsBearerToken(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, map[string]any{
		"message": "🎉 Refeição registrada com sucesso!",
	})
	client := authedClient(t, server)

	message, err := client.CreateMeal(context.Background(), 1, "lunch", 12, 200)
	require.NoError(t, err)
	assert.Contains(t, message, "Refeição registrada")

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/meals", req.Path)
	assert.Equal(t, "Bearer tok123", req.Auth)
	assert.Equal(t, "lunch", req.Body["meal_type"])
	assert.Equal(t, 12.0, req.Body["food_id"])
	assert.Equal(t, 200.0, req.Body["quantity"])
}

func TestPostWithoutCredential(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, map[string]any{"message": "ok"})
	client := New(server.URL)

	_, err := client.AddWater(context.Background(), 1, 250)
	assert.ErrorIs(t, err, bot.ErrUnauthorized)
	assert.Empty(t, *requests, "no request without a credential")
}

func TestExpiredTokenDropsCredential(t *testing.T) {
	server, _ := newTestServer(t, http.StatusUnauthorized, map[string]any{
		"detail": "Invalid or expired token",
	})
	client := authedClient(t, server)
	require.True(t, client.Authenticated(1))

	_, err := client.AddWater(context.Background(), 1, 250)
	assert.ErrorIs(t, err, bot.ErrUnauthorized)
	assert.False(t, client.Authenticated(1), "credential dropped after 401")
}

func TestBadRequestMapsToErrBadRequest(t *testing.T) {
	server, _ := newTestServer(t, http.StatusBadRequest, map[string]any{
		"detail": "Formato de horário inválido",
	})
	client := authedClient(t, server)

	_, err := client.SetReminder(context.Background(), 1, "meal_reminder", "25:00")
	assert.ErrorIs(t, err, bot.ErrBadRequest)
}

func TestCalculateOmitsUncollectedFields(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, map[string]any{"message": "ok"})
	client := authedClient(t, server)

	height := 175.0
	_, err := client.Calculate(context.Background(), 1, bot.CalculationRequest{
		CalcType: "imc",
		Weight:   70,
		Height:   &height,
	})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	body := (*requests)[0].Body
	assert.Equal(t, "imc", body["calc_type"])
	assert.Equal(t, 175.0, body["height"])
	assert.NotContains(t, body, "age")
	assert.NotContains(t, body, "gender")
	assert.NotContains(t, body, "activity_level")
}

func TestDailySummaryUsesStoredUserID(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, map[string]any{
		"text": "📊 *Resumo Diário*",
	})
	client := authedClient(t, server)

	text, err := client.DailySummary(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, text, "Resumo Diário")

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/summary/42", req.Path)
	assert.Equal(t, "Bearer tok123", req.Auth)
}

func TestTipOfTheDay(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, map[string]any{
		"tip": "Beba bastante água.",
	})
	client := New(server.URL)

	tip, err := client.TipOfTheDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Beba bastante água.", tip)

	require.Len(t, *requests, 1)
	assert.Equal(t, "/tips", (*requests)[0].Path)
	assert.Empty(t, (*requests)[0].Auth)
}
