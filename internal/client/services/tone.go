// Package services contains the application services of the AstroAI client:
// session lifecycle, tone preference, the generic content-panel controller
// and the diff-based profile editor. Services own their state and receive
// their collaborators (API client, repositories, logger) by injection.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/astroai/astroai-cli/internal/client/models"
	"github.com/astroai/astroai-cli/internal/client/repositories/prefs"
	"github.com/astroai/astroai-cli/internal/logging"
)

// ToneService owns the content-tone selection. The value is persisted
// independently of the session and survives restarts; it is reset to the
// default only by an explicit logout.
type ToneService struct {
	repo prefs.Repository
	log  logging.Logger

	mu   sync.RWMutex
	tone models.Tone
}

// NewToneService loads the stored tone. A missing or unknown stored value
// falls back to the default without failing startup.
func NewToneService(ctx context.Context, repo prefs.Repository, log logging.Logger) (*ToneService, error) {
	s := &ToneService{repo: repo, log: log, tone: models.DefaultTone}

	stored, err := repo.Get(ctx, prefs.KeyTone)
	if err != nil {
		return nil, fmt.Errorf("load tone preference: %w", err)
	}
	if stored != "" {
		tone, err := models.ParseTone(stored)
		if err != nil {
			log.Warn(ctx, "ignoring unknown stored tone", "value", stored)
		} else {
			s.tone = tone
		}
	}

	return s, nil
}

// Get returns the currently selected tone.
func (s *ToneService) Get() models.Tone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tone
}

// Set validates the tone, persists it and then updates the in-memory value.
// A failed store write leaves the in-memory value untouched, so there is no
// partial update.
func (s *ToneService) Set(ctx context.Context, tone models.Tone) error {
	if _, err := models.ParseTone(string(tone)); err != nil {
		return err
	}

	if err := s.repo.Set(ctx, prefs.KeyTone, string(tone)); err != nil {
		return fmt.Errorf("persist tone preference: %w", err)
	}

	s.mu.Lock()
	s.tone = tone
	s.mu.Unlock()

	s.log.Debug(ctx, "tone updated", "tone", tone)
	return nil
}

// resetMemory drops the in-memory value to the default. Used by the session
// logout path after the durable reset already happened in its transaction.
func (s *ToneService) resetMemory() {
	s.mu.Lock()
	s.tone = models.DefaultTone
	s.mu.Unlock()
}
