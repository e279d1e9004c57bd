package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astroai/astroai-cli/internal/client/models"
	"github.com/astroai/astroai-cli/internal/client/repositories/prefs"
	"github.com/astroai/astroai-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE preferences (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func getPref(t *testing.T, db *sql.DB, key string) string {
	t.Helper()
	var v string
	err := db.QueryRow(`SELECT value FROM preferences WHERE key=?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return ""
	}
	require.NoError(t, err)
	return v
}

func setPref(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO preferences(key,value) VALUES(?,?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	require.NoError(t, err)
}

func newToneService(t *testing.T, db *sql.DB) *ToneService {
	t.Helper()
	tone, err := NewToneService(context.Background(), prefs.NewSQLiteRepository(db), testLogger())
	require.NoError(t, err)
	return tone
}

// ---- fake API client ----

// fakeClient implements api.Client for unit tests. Behavior is injected via
// function fields; nil fields return zero values. Recorded counters and
// last-call arguments allow argument assertions, and the function fields can
// block on channels to simulate overlapping requests.
type fakeClient struct {
	mu sync.Mutex

	token        string
	setTokens    []string
	clearedCount int

	LoginFn         func(ctx context.Context, email, password string) (string, models.UserProfile, error)
	RegisterFn      func(ctx context.Context, req models.RegisterRequest) (string, models.UserProfile, error)
	FetchProfileFn  func(ctx context.Context) (models.UserProfile, error)
	UpdateProfileFn func(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error)

	loginCalls    int
	registerCalls int
	fetchCalls    int
	updateCalls   int

	lastLoginEmail string
	lastRegister   models.RegisterRequest
	lastUpdate     models.ProfileUpdate
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, models.UserProfile, error) {
	f.mu.Lock()
	f.loginCalls++
	f.lastLoginEmail = email
	fn := f.LoginFn
	f.mu.Unlock()
	if fn == nil {
		return "", models.UserProfile{}, nil
	}
	return fn(ctx, email, password)
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (string, models.UserProfile, error) {
	f.mu.Lock()
	f.registerCalls++
	f.lastRegister = req
	fn := f.RegisterFn
	f.mu.Unlock()
	if fn == nil {
		return "", models.UserProfile{}, nil
	}
	return fn(ctx, req)
}

func (f *fakeClient) FetchProfile(ctx context.Context) (models.UserProfile, error) {
	f.mu.Lock()
	f.fetchCalls++
	fn := f.FetchProfileFn
	f.mu.Unlock()
	if fn == nil {
		return models.UserProfile{}, nil
	}
	return fn(ctx)
}

func (f *fakeClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error) {
	f.mu.Lock()
	f.updateCalls++
	f.lastUpdate = update
	fn := f.UpdateProfileFn
	f.mu.Unlock()
	if fn == nil {
		return models.UserProfile{}, nil
	}
	return fn(ctx, update)
}

func (f *fakeClient) DailyHoroscope(ctx context.Context, tone models.Tone) (models.ContentResult, error) {
	return models.ContentResult{}, nil
}

func (f *fakeClient) AnalyzeCompatibility(ctx context.Context, input models.CompatibilityInput, tone models.Tone) (models.ContentResult, error) {
	return models.ContentResult{}, nil
}

func (f *fakeClient) FriendAdvice(ctx context.Context, input models.FriendAdviceInput, tone models.Tone) (models.ContentResult, error) {
	return models.ContentResult{}, nil
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	f.setTokens = append(f.setTokens, token)
}

func (f *fakeClient) ClearToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.clearedCount++
}

func (f *fakeClient) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}
