package services

import (
	"context"
	"sync"

	"github.com/astroai/astroai-cli/internal/client/api"
	"github.com/astroai/astroai-cli/internal/client/models"
	"github.com/astroai/astroai-cli/internal/logging"
)

// Status is the pending-operation state of a panel controller. A controller
// tracks at most one pending operation; a newer trigger supersedes the
// tracking of the previous one.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// PanelInput is implemented by the per-feature input types; validation
// failures are surfaced inline and never reach the network.
type PanelInput interface {
	Validate() error
}

// FetchFunc issues the panel's single request for the given input and tone.
type FetchFunc[I PanelInput] func(ctx context.Context, input I, tone models.Tone) (models.ContentResult, error)

// PanelController runs the shared fetch/loading/error protocol of one
// content panel (daily horoscope, compatibility, friend advice).
//
// Each trigger snapshots the tone at issue time, so a tone change mid-flight
// does not alter an in-flight request. Every issued request carries a
// monotonically increasing sequence number; a completion that is no longer
// the latest issued is discarded, so the stored result always belongs to the
// last *issued* request regardless of arrival order.
//
// An error never erases a previously stored result.
type PanelController[I PanelInput] struct {
	name  string
	tone  *ToneService
	fetch FetchFunc[I]
	log   logging.Logger

	mu     sync.Mutex
	seq    uint64
	status Status
	errMsg string
	result *models.ContentResult
}

func NewPanelController[I PanelInput](name string, tone *ToneService, fetch FetchFunc[I], log logging.Logger) *PanelController[I] {
	return &PanelController[I]{
		name:  name,
		tone:  tone,
		fetch: fetch,
		log:   log.With("panel", name),
	}
}

// Trigger validates the input and issues exactly one request. On success the
// result replaces the prior one and the controller goes idle; on failure the
// error slot is set from the server detail and the prior result is kept.
// The returned error reflects this call's own request even when its
// completion was superseded and discarded.
func (p *PanelController[I]) Trigger(ctx context.Context, input I) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	p.seq++
	id := p.seq
	p.status = StatusLoading
	p.errMsg = ""
	tone := p.tone.Get()
	p.mu.Unlock()

	p.log.Debug(ctx, "panel request issued", "seq", id, "tone", tone)

	result, err := p.fetch(ctx, input, tone)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.seq != id {
		p.log.Debug(ctx, "discarding superseded panel response", "seq", id, "latest", p.seq)
		return err
	}

	if err != nil {
		p.status = StatusError
		p.errMsg = api.ErrorDetail(err, "could not generate content, please try again")
		p.log.Warn(ctx, "panel request failed", "seq", id, "error", err)
		return err
	}

	p.result = &result
	p.status = StatusIdle
	return nil
}

// Status returns the pending-operation state and, when it is StatusError,
// the message to surface within this panel.
func (p *PanelController[I]) Status() (Status, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.errMsg
}

// Result returns the most recent successful content, if any.
func (p *PanelController[I]) Result() (models.ContentResult, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return models.ContentResult{}, false
	}
	return *p.result, true
}
