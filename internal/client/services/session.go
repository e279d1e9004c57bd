package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/astroai/astroai-cli/internal/client/api"
	"github.com/astroai/astroai-cli/internal/client/models"
	"github.com/astroai/astroai-cli/internal/client/repositories/prefs"
	"github.com/astroai/astroai-cli/internal/dbx"
	"github.com/astroai/astroai-cli/internal/logging"
)

// SessionService owns the authenticated session: the token and the user
// profile it authenticates. No other component assigns to either.
//
// Lifecycle:
//   - Login / Register install a fresh session and persist the token.
//   - Restore re-installs a stored token at startup and confirms it with a
//     profile fetch; until that fetch succeeds the client counts as
//     unauthenticated.
//   - FetchProfile failures of any kind escalate to Logout ("session
//     invalid"); UpdateProfile failures do not.
//   - Logout clears the stored token and resets the tone preference in one
//     transaction, then clears the in-memory state. Idempotent.
//
// A generation counter guards against responses resolving after a logout or
// re-login: such responses are discarded instead of resurrecting state.
type SessionService struct {
	client api.Client
	db     *sql.DB
	tone   *ToneService
	log    logging.Logger

	mu         sync.Mutex
	token      string
	user       *models.UserProfile
	generation uint64
}

// NewSessionService wires the session manager to the API client, the local
// database holding the preference store, and the tone service it resets on
// logout.
func NewSessionService(client api.Client, db *sql.DB, tone *ToneService, log logging.Logger) *SessionService {
	return &SessionService{client: client, db: db, tone: tone, log: log}
}

func (s *SessionService) prefsRepo() prefs.Repository {
	return prefs.NewSQLiteRepository(s.db)
}

// IsAuthenticated reports whether a confirmed session exists. A restored
// token whose profile fetch has not succeeded yet does not count.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// User returns a copy of the current profile snapshot.
func (s *SessionService) User() (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.UserProfile{}, false
	}
	return *s.user, true
}

// currentGeneration is the guard token captured at request issue.
func (s *SessionService) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// installSession persists the token and replaces the in-memory session.
// The response of the authentication call is trusted as-is.
func (s *SessionService) installSession(ctx context.Context, token string, user models.UserProfile) error {
	if err := s.prefsRepo().Set(ctx, prefs.KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	s.client.SetToken(token)

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.generation++
	s.mu.Unlock()

	s.log.Info(ctx, "session established", "user", user.Email, "zodiac_sign", user.ZodiacSign)
	return nil
}

// Login authenticates with the backend and installs the returned session.
// Authentication rejections are returned to the caller (banner surface);
// nothing is logged out on failure.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	token, user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.installSession(ctx, token, user)
}

// Register creates an account and, like the login path, installs the
// session carried by the response.
func (s *SessionService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	token, user, err := s.client.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.installSession(ctx, token, user)
}

// Logout clears the stored token and resets the tone preference in a single
// transaction, then clears the in-memory session and the bearer credential.
// Calling it when already logged out is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := prefs.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, prefs.KeyToken); err != nil {
			return err
		}
		return repo.Set(ctx, prefs.KeyTone, string(models.DefaultTone))
	})
	if err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	s.tone.resetMemory()
	s.client.ClearToken()

	s.mu.Lock()
	wasAuthenticated := s.user != nil
	s.token = ""
	s.user = nil
	s.generation++
	s.mu.Unlock()

	if wasAuthenticated {
		s.log.Info(ctx, "logged out")
	}
	return nil
}

// FetchProfile refreshes the user snapshot with the current token. Any
// failure is treated as "session invalid" and escalates to Logout; the
// failure is never retried.
func (s *SessionService) FetchProfile(ctx context.Context) error {
	gen := s.currentGeneration()

	user, err := s.client.FetchProfile(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile fetch failed, dropping session", "error", err)
		if lerr := s.Logout(ctx); lerr != nil {
			s.log.Error(ctx, "logout after failed profile fetch", "error", lerr)
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		// the session changed while the request was in flight
		s.log.Debug(ctx, "discarding stale profile response")
		return nil
	}
	s.user = &user
	return nil
}

// UpdateProfile sends only the provided fields and replaces the in-memory
// user wholesale with the server's authoritative response. A rejection does
// NOT invalidate the session; the error carries the server detail.
func (s *SessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error) {
	gen := s.currentGeneration()

	user, err := s.client.UpdateProfile(ctx, update)
	if err != nil {
		return models.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.log.Debug(ctx, "discarding profile update resolved after logout")
		return user, nil
	}
	s.user = &user
	return user, nil
}

// Restore implements the startup protocol: when a token survives in the
// preference store, install it and confirm it with a profile fetch. Before
// the fetch resolves the client is treated as unauthenticated; there is no
// separate "restoring" state.
func (s *SessionService) Restore(ctx context.Context) error {
	token, err := s.prefsRepo().Get(ctx, prefs.KeyToken)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if token == "" {
		return nil
	}

	s.client.SetToken(token)
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.log.Info(ctx, "restoring session from stored token")
	return s.FetchProfile(ctx)
}
