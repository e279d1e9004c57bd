// Package models defines the client-side domain types: the user profile,
// the content-tone enumeration, generated-content results and the inputs of
// the three content panels. JSON field names mirror the backend contract and
// must not change.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Tone is the style parameter applied to every generated-content request.
type Tone string

const (
	ToneSerious  Tone = "serious"
	ToneHumorous Tone = "humorous"
	ToneSoul     Tone = "soul"
)

// DefaultTone is used when nothing is stored or the stored value is unknown.
const DefaultTone = ToneSerious

// ErrUnknownTone is returned by ParseTone for values outside the enumeration.
var ErrUnknownTone = errors.New("unknown tone")

// ParseTone validates s against the fixed tone set.
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneSerious, ToneHumorous, ToneSoul:
		return Tone(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTone, s)
}

// Tones lists the selectable tones in display order.
func Tones() []Tone {
	return []Tone{ToneSerious, ToneHumorous, ToneSoul}
}

// UserProfile is the authoritative user record as returned by the server.
// ZodiacSign is server-derived and never sent on update.
type UserProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
	ZodiacSign string `json:"zodiac_sign"`
}

// ProfileUpdate carries only the fields being changed; nil fields are
// omitted from the request body.
type ProfileUpdate struct {
	Name       *string `json:"name,omitempty"`
	BirthDate  *string `json:"birth_date,omitempty"`
	BirthTime  *string `json:"birth_time,omitempty"`
	BirthPlace *string `json:"birth_place,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.BirthDate == nil && u.BirthTime == nil && u.BirthPlace == nil
}

// ContentResult is one generated-content response. It is immutable once
// received; a newer successful request replaces it wholesale.
type ContentResult struct {
	Content     string    `json:"content"`
	Tone        Tone      `json:"tone"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ValidationError reports a required/shape violation on a single input
// field, caught before any request is issued.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func requiredField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Msg: "is required"}
	}
	return nil
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
}

// Validate checks the required fields and the rough e-mail shape.
func (r RegisterRequest) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"name", r.Name},
		{"email", r.Email},
		{"password", r.Password},
		{"birth_date", r.BirthDate},
		{"birth_time", r.BirthTime},
		{"birth_place", r.BirthPlace},
	} {
		if err := requiredField(f.name, f.value); err != nil {
			return err
		}
	}
	if !strings.Contains(r.Email, "@") {
		return &ValidationError{Field: "email", Msg: "must be an e-mail address"}
	}
	return nil
}

// DailyInput is the (empty) input of the daily-horoscope panel.
type DailyInput struct{}

// Validate always succeeds: the daily panel takes no user input.
func (DailyInput) Validate() error { return nil }

// CompatibilityInput holds the partner birth details for the pairwise
// comparison panel. All three fields are required.
type CompatibilityInput struct {
	PartnerBirthDate  string `json:"partner_birth_date"`
	PartnerBirthTime  string `json:"partner_birth_time"`
	PartnerBirthPlace string `json:"partner_birth_place"`
}

func (i CompatibilityInput) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"partner_birth_date", i.PartnerBirthDate},
		{"partner_birth_time", i.PartnerBirthTime},
		{"partner_birth_place", i.PartnerBirthPlace},
	} {
		if err := requiredField(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// FriendAdviceInput holds the friend names for the group-advice panel.
type FriendAdviceInput struct {
	FriendNames []string `json:"friend_names"`
}

func (i FriendAdviceInput) Validate() error {
	if len(i.FriendNames) == 0 {
		return &ValidationError{Field: "friend_names", Msg: "at least one name is required"}
	}
	return nil
}

// ParseFriendNames splits a free-text list on commas, trims each entry and
// drops empty ones.
func ParseFriendNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}
