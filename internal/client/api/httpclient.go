package api

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

	"github.com/google/uuid"

	"github.com/astroai/astroai-cli/internal/client/models"
	"github.com/astroai/astroai-cli/internal/logging"
)

// HTTPClient talks JSON over HTTP to the AstroAI backend. The bearer token
// is held here and attached to every authenticated request; the session
// service is the only component that sets or clears it.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient constructs a client for the given base URL, e.g.
// "http://localhost:8001". A zero timeout means no client-side timeout;
// requests then run until the caller's context cancels them.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type authResponse struct {
	AccessToken string             `json:"access_token"`
	User        models.UserProfile `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type dailyRequest struct {
	Tone models.Tone `json:"tone"`
}

type compatibilityRequest struct {
	models.CompatibilityInput
	Tone models.Tone `json:"tone"`
}

type friendAdviceRequest struct {
	models.FriendAdviceInput
	Tone models.Tone `json:"tone"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// doJSON issues one request and decodes the JSON response into out (if out
// is non-nil). Transport failures map to ErrUnavailable; non-2xx statuses
// map to *APIError carrying the server detail.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api transport failure", "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		c.log.Debug(ctx, "api error response", "path", path, "request_id", requestID, "status", resp.StatusCode, "detail", eb.Detail)
		return &APIError{Status: resp.StatusCode, Detail: eb.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (string, models.UserProfile, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return "", models.UserProfile{}, err
	}
	return resp.AccessToken, resp.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, models.UserProfile, error) {
	var resp authResponse
	body := loginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return "", models.UserProfile{}, err
	}
	return resp.AccessToken, resp.User, nil
}

func (c *HTTPClient) FetchProfile(ctx context.Context) (models.UserProfile, error) {
	var user models.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/api/profile", nil, &user); err != nil {
		return models.UserProfile{}, err
	}
	return user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error) {
	var user models.UserProfile
	if err := c.doJSON(ctx, http.MethodPut, "/api/profile", update, &user); err != nil {
		return models.UserProfile{}, err
	}
	return user, nil
}

func (c *HTTPClient) DailyHoroscope(ctx context.Context, tone models.Tone) (models.ContentResult, error) {
	var result models.ContentResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/horoscope/daily", dailyRequest{Tone: tone}, &result); err != nil {
		return models.ContentResult{}, err
	}
	return result, nil
}

func (c *HTTPClient) AnalyzeCompatibility(ctx context.Context, input models.CompatibilityInput, tone models.Tone) (models.ContentResult, error) {
	var result models.ContentResult
	body := compatibilityRequest{CompatibilityInput: input, Tone: tone}
	if err := c.doJSON(ctx, http.MethodPost, "/api/compatibility/analyze", body, &result); err != nil {
		return models.ContentResult{}, err
	}
	return result, nil
}

func (c *HTTPClient) FriendAdvice(ctx context.Context, input models.FriendAdviceInput, tone models.Tone) (models.ContentResult, error) {
	var result models.ContentResult
	body := friendAdviceRequest{FriendAdviceInput: input, Tone: tone}
	if err := c.doJSON(ctx, http.MethodPost, "/api/friends/advice", body, &result); err != nil {
		return models.ContentResult{}, err
	}
	return result, nil
}
