// Package apiclient is the one place the bot talks HTTP to the backend:
// one base URL, one token store, one error mapping.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/marcelosanto/telegram-food-boot/bot"
)

type credential struct {
	accessToken string
	userID      uint
}

// Client implements bot.Backend against the HTTP API. Access tokens are held
// in memory per chat; a restart simply requires logging in again.
type Client struct {
	base string
	http *http.Client

	mu    sync.RWMutex
	creds map[int64]credential
}

func New(baseURL string) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  &http.Client{Timeout: 15 * time.Second},
		creds: make(map[int64]credential),
	}
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) SignUp(ctx context.Context, chatID int64, username, password string) error {
	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, "/users", "", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusBadRequest:
		return bot.ErrUsernameTaken
	case status >= 300:
		return fmt.Errorf("signup: unexpected status %d", status)
	}

	c.storeCredential(chatID, resp)
	return nil
}

func (c *Client) Login(ctx context.Context, chatID int64, username, password string) error {
	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusUnauthorized:
		return bot.ErrUnauthorized
	case status >= 300:
		return fmt.Errorf("login: unexpected status %d", status)
	}

	c.storeCredential(chatID, resp)
	return nil
}

func (c *Client) storeCredential(chatID int64, resp authResponse) {
	c.mu.Lock()
	c.creds[chatID] = credential{accessToken: resp.AccessToken, userID: resp.UserID}
	c.mu.Unlock()
}

func (c *Client) Authenticated(chatID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.creds[chatID]
	return ok
}

func (c *Client) credential(chatID int64) (credential, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cred, ok := c.creds[chatID]
	return cred, ok
}

func (c *Client) CreateMeal(ctx context.Context, chatID int64, mealType string, foodID int, quantityGrams float64) (string, error) {
	return c.postMessage(ctx, chatID, "/meals", map[string]any{
		"meal_type": mealType,
		"food_id":   foodID,
		"quantity":  quantityGrams,
	})
}

func (c *Client) SetGoal(ctx context.Context, chatID int64, nutrient string, value float64) (string, error) {
	return c.postMessage(ctx, chatID, "/goals", map[string]any{
		"nutrient": nutrient,
		"value":    value,
	})
}

func (c *Client) AddWater(ctx context.Context, chatID int64, amountML float64) (string, error) {
	return c.postMessage(ctx, chatID, "/water", map[string]any{
		"amount": amountML,
	})
}

func (c *Client) Calculate(ctx context.Context, chatID int64, req bot.CalculationRequest) (string, error) {
	body := map[string]any{
		"calc_type": req.CalcType,
		"weight":    req.Weight,
	}
	if req.Height != nil {
		body["height"] = *req.Height
	}
	if req.Age != nil {
		body["age"] = *req.Age
	}
	if req.Gender != "" {
		body["gender"] = req.Gender
	}
	if req.ActivityLevel != "" {
		body["activity_level"] = req.ActivityLevel
	}
	return c.postMessage(ctx, chatID, "/calculations", body)
}

func (c *Client) SetReminder(ctx context.Context, chatID int64, reminderType, timeOfDay string) (string, error) {
	return c.postMessage(ctx, chatID, "/reminders", map[string]any{
		"type": reminderType,
		"time": timeOfDay,
	})
}

func (c *Client) DailySummary(ctx context.Context, chatID int64) (string, error) {
	cred, ok := c.credential(chatID)
	if !ok {
		return "", bot.ErrUnauthorized
	}

	var resp struct {
		Text string `json:"text"`
	}
	status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/summary/%d", cred.userID), cred.accessToken, nil, &resp)
	if err != nil {
		return "", err
	}
	if status == http.StatusUnauthorized {
		c.dropCredential(chatID)
		return "", bot.ErrUnauthorized
	}
	if status >= 300 {
		return "", fmt.Errorf("summary: unexpected status %d", status)
	}
	return resp.Text, nil
}

func (c *Client) TipOfTheDay(ctx context.Context) (string, error) {
	var resp struct {
		Tip string `json:"tip"`
	}
	status, err := c.do(ctx, http.MethodGet, "/tips", "", nil, &resp)
	if err != nil {
		return "", err
	}
	if status >= 300 {
		return "", fmt.Errorf("tips: unexpected status %d", status)
	}
	return resp.Tip, nil
}

// postMessage runs an authenticated POST whose success payload is {message}.
func (c *Client) postMessage(ctx context.Context, chatID int64, path string, body any) (string, error) {
	cred, ok := c.credential(chatID)
	if !ok {
		return "", bot.ErrUnauthorized
	}

	var resp messageResponse
	status, err := c.do(ctx, http.MethodPost, path, cred.accessToken, body, &resp)
	if err != nil {
		return "", err
	}
	switch {
	case status == http.StatusUnauthorized:
		c.dropCredential(chatID)
		return "", bot.ErrUnauthorized
	case status == http.StatusBadRequest:
		return "", bot.ErrBadRequest
	case status >= 300:
		return "", fmt.Errorf("%s: unexpected status %d", path, status)
	}
	return resp.Message, nil
}

func (c *Client) dropCredential(chatID int64) {
	c.mu.Lock()
	delete(c.creds, chatID)
	c.mu.Unlock()
}

// do sends one request and decodes the body into out when provided.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
