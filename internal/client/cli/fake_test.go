package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astroai/astroai-cli/internal/client/models"
	"github.com/astroai/astroai-cli/internal/client/nav"
	"github.com/astroai/astroai-cli/internal/client/repositories/prefs"
	"github.com/astroai/astroai-cli/internal/client/services"
	"github.com/astroai/astroai-cli/internal/logging"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func muteOutput(t *testing.T) {
	t.Helper()
	origPrintln, origPrintf := printlnFn, printfFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	printfFn = func(string, ...any) (int, error) { return 0, nil }
	t.Cleanup(func() {
		printlnFn = origPrintln
		printfFn = origPrintf
	})
}

// stubInputs replaces the prompt seams with canned answers: text prompts are
// answered in order from answers, every password prompt returns password.
func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared")
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

// fakeAPI implements api.Client with injectable behavior.
type fakeAPI struct {
	token string

	LoginFn         func(ctx context.Context, email, password string) (string, models.UserProfile, error)
	RegisterFn      func(ctx context.Context, req models.RegisterRequest) (string, models.UserProfile, error)
	FetchProfileFn  func(ctx context.Context) (models.UserProfile, error)
	UpdateProfileFn func(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error)
	DailyFn         func(ctx context.Context, tone models.Tone) (models.ContentResult, error)

	lastUpdate models.ProfileUpdate
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, models.UserProfile, error) {
	if f.LoginFn == nil {
		return "", models.UserProfile{}, nil
	}
	return f.LoginFn(ctx, email, password)
}

func (f *fakeAPI) Register(ctx context.Context, req models.RegisterRequest) (string, models.UserProfile, error) {
	if f.RegisterFn == nil {
		return "", models.UserProfile{}, nil
	}
	return f.RegisterFn(ctx, req)
}

func (f *fakeAPI) FetchProfile(ctx context.Context) (models.UserProfile, error) {
	if f.FetchProfileFn == nil {
		return models.UserProfile{}, nil
	}
	return f.FetchProfileFn(ctx)
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error) {
	f.lastUpdate = update
	if f.UpdateProfileFn == nil {
		return models.UserProfile{}, nil
	}
	return f.UpdateProfileFn(ctx, update)
}

func (f *fakeAPI) DailyHoroscope(ctx context.Context, tone models.Tone) (models.ContentResult, error) {
	if f.DailyFn == nil {
		return models.ContentResult{}, nil
	}
	return f.DailyFn(ctx, tone)
}

func (f *fakeAPI) AnalyzeCompatibility(ctx context.Context, input models.CompatibilityInput, tone models.Tone) (models.ContentResult, error) {
	return models.ContentResult{}, nil
}

func (f *fakeAPI) FriendAdvice(ctx context.Context, input models.FriendAdviceInput, tone models.Tone) (models.ContentResult, error) {
	return models.ContentResult{}, nil
}

func (f *fakeAPI) SetToken(token string) { f.token = token }
func (f *fakeAPI) ClearToken()           { f.token = "" }

func testUser() models.UserProfile {
	return models.UserProfile{
		ID:         "u1",
		Email:      "ann@example.com",
		Name:       "Ann",
		BirthDate:  "1990-05-04",
		BirthTime:  "12:30",
		BirthPlace: "Riga, Latvia",
		ZodiacSign: "Taurus",
	}
}

// newTestApp builds an App over a fake API client and an in-memory database,
// skipping NewApp's storage and HTTP setup.
func newTestApp(t *testing.T, fa *fakeAPI) *App {
	t.Helper()
	muteOutput(t)

	ctx := context.Background()
	db := testDB(t)
	log := testLogger()

	tone, err := services.NewToneService(ctx, prefs.NewSQLiteRepository(db), log)
	require.NoError(t, err)
	session := services.NewSessionService(fa, db, tone, log)

	daily := services.NewPanelController[models.DailyInput]("daily", tone,
		func(ctx context.Context, _ models.DailyInput, tn models.Tone) (models.ContentResult, error) {
			return fa.DailyHoroscope(ctx, tn)
		}, log)
	compat := services.NewPanelController[models.CompatibilityInput]("compatibility", tone,
		func(ctx context.Context, input models.CompatibilityInput, tn models.Tone) (models.ContentResult, error) {
			return fa.AnalyzeCompatibility(ctx, input, tn)
		}, log)
	advice := services.NewPanelController[models.FriendAdviceInput]("advice", tone,
		func(ctx context.Context, input models.FriendAdviceInput, tn models.Tone) (models.ContentResult, error) {
			return fa.FriendAdvice(ctx, input, tn)
		}, log)

	return &App{
		log:     log,
		db:      db,
		session: session,
		tone:    tone,
		nav:     nav.NewController(session),
		editor:  services.NewProfileEditor(session),
		daily:   daily,
		compat:  compat,
		advice:  advice,
		reader:  bufio.NewReader(os.Stdin),
	}
}
