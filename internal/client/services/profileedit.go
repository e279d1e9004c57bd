package services

import (
	"context"
	"errors"
	"sync"

	"github.com/astroai/astroai-cli/internal/client/models"
)

// ErrNotEditing is returned by draft operations outside an edit session.
var ErrNotEditing = errors.New("no profile edit in progress")

// ProfileEditor runs the diff-based partial-update flow on top of the
// session service. It holds a transient draft copy of the profile; the
// session's snapshot stays authoritative throughout.
type ProfileEditor struct {
	session *SessionService

	mu      sync.Mutex
	editing bool
	draft   models.UserProfile
}

func NewProfileEditor(session *SessionService) *ProfileEditor {
	return &ProfileEditor{session: session}
}

// Begin enters edit mode with a draft initialized from the current profile
// snapshot.
func (e *ProfileEditor) Begin() error {
	user, ok := e.session.User()
	if !ok {
		return errors.New("not authenticated")
	}

	e.mu.Lock()
	e.editing = true
	e.draft = user
	e.mu.Unlock()
	return nil
}

// Editing reports whether an edit session is in progress.
func (e *ProfileEditor) Editing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editing
}

// Draft returns the current draft copy.
func (e *ProfileEditor) Draft() (models.UserProfile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return models.UserProfile{}, ErrNotEditing
	}
	return e.draft, nil
}

// Cancel discards the draft and exits edit mode without any network call.
func (e *ProfileEditor) Cancel() {
	e.mu.Lock()
	e.editing = false
	e.draft = models.UserProfile{}
	e.mu.Unlock()
}

// SetName stages a new name in the draft. The zodiac sign has no setter:
// it is server-derived and never client-editable.
func (e *ProfileEditor) SetName(v string) error { return e.setField(func(d *models.UserProfile) { d.Name = v }) }

// SetBirthDate stages a new birth date in the draft.
func (e *ProfileEditor) SetBirthDate(v string) error {
	return e.setField(func(d *models.UserProfile) { d.BirthDate = v })
}

// SetBirthTime stages a new birth time in the draft.
func (e *ProfileEditor) SetBirthTime(v string) error {
	return e.setField(func(d *models.UserProfile) { d.BirthTime = v })
}

// SetBirthPlace stages a new birth place in the draft.
func (e *ProfileEditor) SetBirthPlace(v string) error {
	return e.setField(func(d *models.UserProfile) { d.BirthPlace = v })
}

func (e *ProfileEditor) setField(apply func(*models.UserProfile)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return ErrNotEditing
	}
	apply(&e.draft)
	return nil
}

// Diff computes the fields whose draft value differs from the session's
// current snapshot. Only those fields are ever sent on submit.
func (e *ProfileEditor) Diff() (models.ProfileUpdate, error) {
	current, ok := e.session.User()
	if !ok {
		return models.ProfileUpdate{}, errors.New("not authenticated")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return models.ProfileUpdate{}, ErrNotEditing
	}

	var update models.ProfileUpdate
	if v := e.draft.Name; v != current.Name {
		update.Name = &v
	}
	if v := e.draft.BirthDate; v != current.BirthDate {
		update.BirthDate = &v
	}
	if v := e.draft.BirthTime; v != current.BirthTime {
		update.BirthTime = &v
	}
	if v := e.draft.BirthPlace; v != current.BirthPlace {
		update.BirthPlace = &v
	}
	return update, nil
}

// Submit sends the changed fields, if any. An empty diff exits edit mode
// without a network call and reports saved=false. On success edit mode ends
// and saved=true; on failure the draft and edit mode are kept so the user
// can correct and retry.
func (e *ProfileEditor) Submit(ctx context.Context) (saved bool, err error) {
	update, err := e.Diff()
	if err != nil {
		return false, err
	}

	if update.IsEmpty() {
		e.Cancel()
		return false, nil
	}

	if _, err := e.session.UpdateProfile(ctx, update); err != nil {
		return false, err
	}

	e.Cancel()
	return true, nil
}
