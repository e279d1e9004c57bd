package cli

import (
	"context"
	"os"

	"github.com/astroai/astroai-cli/internal/client/models"
)

// Horoscope fetches today's horoscope in the currently selected tone.
func (a *App) Horoscope(ctx context.Context) error {
	printlnFn("Consulting the stars...")
	if err := a.daily.Trigger(ctx, models.DailyInput{}); err != nil {
		_, msg := a.daily.Status()
		if msg == "" {
			msg = err.Error()
		}
		printlnFn(msg)
		return err
	}

	result, _ := a.daily.Result()
	printContent(result)
	return nil
}

// Compatibility prompts for the partner's birth details and runs the
// pairwise analysis.
func (a *App) Compatibility(ctx context.Context) error {
	var input models.CompatibilityInput
	var err error

	if input.PartnerBirthDate, err = getSimpleText(a.reader, "Partner birth date (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}
	if input.PartnerBirthTime, err = getSimpleText(a.reader, "Partner birth time (HH:MM)", os.Stdout); err != nil {
		return err
	}
	if input.PartnerBirthPlace, err = getSimpleText(a.reader, "Partner birth place", os.Stdout); err != nil {
		return err
	}

	printlnFn("Comparing your charts...")
	if err := a.compat.Trigger(ctx, input); err != nil {
		_, msg := a.compat.Status()
		if msg == "" {
			msg = err.Error()
		}
		printlnFn(msg)
		return err
	}

	result, _ := a.compat.Result()
	printContent(result)
	return nil
}

// FriendAdvice prompts for a comma-separated list of friend names and fetches
// communication advice for the group.
func (a *App) FriendAdvice(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Friend names (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}
	input := models.FriendAdviceInput{FriendNames: models.ParseFriendNames(raw)}

	printlnFn("Asking the stars about your friends...")
	if err := a.advice.Trigger(ctx, input); err != nil {
		_, msg := a.advice.Status()
		if msg == "" {
			msg = err.Error()
		}
		printlnFn(msg)
		return err
	}

	result, _ := a.advice.Result()
	printContent(result)
	return nil
}

func printContent(r models.ContentResult) {
	printfFn("[%s, %s]\n%s\n", r.Tone, r.GeneratedAt.Local().Format("2006-01-02 15:04"), r.Content)
}
