package cli

import (
	"context"
	"os"

	"github.com/astroai/astroai-cli/internal/client/api"
	"github.com/astroai/astroai-cli/internal/client/models"
)

// ShowProfile prints the current profile snapshot.
func (a *App) ShowProfile(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}

	printfFn("Name:        %s\n", user.Name)
	printfFn("Email:       %s\n", user.Email)
	printfFn("Born:        %s %s, %s\n", user.BirthDate, user.BirthTime, user.BirthPlace)
	printfFn("Zodiac sign: %s\n", user.ZodiacSign)
	return nil
}

// RefreshProfile re-fetches the profile with the current token. A failure
// drops the session, so the navigation gate sends the user back to the
// welcome screen.
func (a *App) RefreshProfile(ctx context.Context) error {
	if err := a.session.FetchProfile(ctx); err != nil {
		a.nav.Reset()
		printlnFn("Session expired, please log in again.")
		return err
	}
	return a.ShowProfile(ctx)
}

// EditProfile runs the interactive edit flow: every editable field is
// prompted with its current value; an empty answer keeps it. Only the fields
// that end up different from the current profile are sent.
func (a *App) EditProfile(ctx context.Context) error {
	if err := a.editor.Begin(); err != nil {
		printlnFn(err.Error())
		return err
	}

	draft, err := a.editor.Draft()
	if err != nil {
		return err
	}

	fields := []struct {
		prompt  string
		current string
		set     func(string) error
	}{
		{"Name", draft.Name, a.editor.SetName},
		{"Birth date (YYYY-MM-DD)", draft.BirthDate, a.editor.SetBirthDate},
		{"Birth time (HH:MM)", draft.BirthTime, a.editor.SetBirthTime},
		{"Birth place", draft.BirthPlace, a.editor.SetBirthPlace},
	}

	for _, f := range fields {
		answer, err := getSimpleText(a.reader, f.prompt+" ["+f.current+"], empty keeps", os.Stdout)
		if err != nil {
			a.editor.Cancel()
			return err
		}
		if answer == "" {
			continue
		}
		if err := f.set(answer); err != nil {
			a.editor.Cancel()
			return err
		}
	}

	saved, err := a.editor.Submit(ctx)
	if err != nil {
		printlnFn(api.ErrorDetail(err, "Could not save the profile."))
		return err
	}
	if !saved {
		printlnFn("No changes.")
		return nil
	}

	printlnFn("Profile saved.")
	return a.ShowProfile(ctx)
}

// ChooseTone switches the content tone, or lists the options when called
// without one.
func (a *App) ChooseTone(ctx context.Context, name string) error {
	if name == "" {
		printfFn("Current tone: %s (choose one of: serious, humorous, soul)\n", a.tone.Get())
		return nil
	}

	if err := a.tone.Set(ctx, models.Tone(name)); err != nil {
		printlnFn(err.Error())
		return err
	}

	printfFn("Tone set to %s.\n", name)
	return nil
}
