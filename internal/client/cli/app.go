package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/astroai/astroai-cli/internal/client/api"
	"github.com/astroai/astroai-cli/internal/client/config"
	"github.com/astroai/astroai-cli/internal/client/models"
	"github.com/astroai/astroai-cli/internal/client/nav"
	"github.com/astroai/astroai-cli/internal/client/repositories/prefs"
	"github.com/astroai/astroai-cli/internal/client/services"
	"github.com/astroai/astroai-cli/internal/client/storage"
	"github.com/astroai/astroai-cli/internal/logging"
)

// App wires the AstroAI client together: configuration, the local preference
// store, the API client and the controllers the REPL dispatches to.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session *services.SessionService
	tone    *services.ToneService
	nav     *nav.Controller
	editor  *services.ProfileEditor

	daily  *services.PanelController[models.DailyInput]
	compat *services.PanelController[models.CompatibilityInput]
	advice *services.PanelController[models.FriendAdviceInput]

	reader *bufio.Reader
}

// NewApp opens the local database, runs migrations and builds the service
// graph around an HTTP API client for the configured backend.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)

	tone, err := services.NewToneService(ctx, prefs.NewSQLiteRepository(db), log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	session := services.NewSessionService(apiClient, db, tone, log)

	daily := services.NewPanelController[models.DailyInput]("daily", tone,
		func(ctx context.Context, _ models.DailyInput, tn models.Tone) (models.ContentResult, error) {
			return apiClient.DailyHoroscope(ctx, tn)
		}, log)
	compat := services.NewPanelController[models.CompatibilityInput]("compatibility", tone,
		func(ctx context.Context, input models.CompatibilityInput, tn models.Tone) (models.ContentResult, error) {
			return apiClient.AnalyzeCompatibility(ctx, input, tn)
		}, log)
	advice := services.NewPanelController[models.FriendAdviceInput]("advice", tone,
		func(ctx context.Context, input models.FriendAdviceInput, tn models.Tone) (models.ContentResult, error) {
			return apiClient.FriendAdvice(ctx, input, tn)
		}, log)

	return &App{
		config:  c,
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
	}, nil
}

// Run restores a persisted session, if any, and enters the REPL. It returns
// when the user quits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	printlnFn("Welcome to AstroAI (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// Close releases the local database handle.
func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing database", "error", err)
	}
}

// Screen is the navigation state the REPL dispatches on.
func (a *App) Screen() nav.Screen {
	return a.nav.Current()
}

// StatusLine renders the prompt suffix: the current screen plus the logged-in
// user, when there is one.
func (a *App) StatusLine() string {
	s := a.nav.Current().String()
	if user, ok := a.session.User(); ok {
		s += " " + user.Email
	}
	return "(" + s + ")"
}

func (a *App) GoLogin()      { a.nav.GoLogin() }
func (a *App) GoRegister()   { a.nav.GoRegister() }
func (a *App) Back()         { a.nav.Back() }
func (a *App) OpenSettings() { a.nav.OpenSettings() }

// Logout clears the session and returns navigation to the welcome screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.nav.Reset()
	printlnFn("Logged out.")
	return nil
}
