package cli

import (
	"context"
	"os"

	"github.com/astroai/astroai-cli/internal/client/api"
	"github.com/astroai/astroai-cli/internal/client/models"
)

// Login runs the interactive login flow. A rejection keeps the user on the
// login screen with an inline message; nothing else changes.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn(api.ErrorDetail(err, "Login failed, please try again."))
		return err
	}

	a.nav.Reset()
	user, _ := a.session.User()
	printfFn("Welcome back, %s! Your sign is %s.\n", user.Name, user.ZodiacSign)
	return nil
}

// Register runs the interactive registration flow. On success the server has
// already issued a token, so the user lands on the dashboard logged in.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	req.Password = string(password)
	if req.BirthDate, err = getSimpleText(a.reader, "Birth date (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}
	if req.BirthTime, err = getSimpleText(a.reader, "Birth time (HH:MM)", os.Stdout); err != nil {
		return err
	}
	if req.BirthPlace, err = getSimpleText(a.reader, "Birth place", os.Stdout); err != nil {
		return err
	}

	if err := a.session.Register(ctx, req); err != nil {
		printlnFn(api.ErrorDetail(err, err.Error()))
		return err
	}

	a.nav.Reset()
	user, _ := a.session.User()
	printfFn("Account created. Welcome, %s! Your sign is %s.\n", user.Name, user.ZodiacSign)
	return nil
}
