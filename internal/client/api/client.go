// Package api implements the AstroAI backend client: an HTTP JSON boundary
// with bearer-token authentication and a fixed set of operations. Everything
// behind it (content generation, token issuance) is an external collaborator.
package api

import (
	"context"

	"github.com/astroai/astroai-cli/internal/client/models"
)

// Client is the remote operation surface consumed by the services layer.
//
// Contract:
//   - Register / Login return the issued access token together with the
//     authenticated user profile.
//   - FetchProfile / UpdateProfile operate on the profile of the user the
//     current bearer token authenticates.
//   - The three content operations return a ContentResult generated for the
//     given tone.
//   - SetToken installs the bearer credential carried by all subsequent
//     authenticated requests; ClearToken removes it.
//
// All methods honor context cancellation.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (string, models.UserProfile, error)
	Login(ctx context.Context, email, password string) (string, models.UserProfile, error)
	FetchProfile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error)
	DailyHoroscope(ctx context.Context, tone models.Tone) (models.ContentResult, error)
	AnalyzeCompatibility(ctx context.Context, input models.CompatibilityInput, tone models.Tone) (models.ContentResult, error)
	FriendAdvice(ctx context.Context, input models.FriendAdviceInput, tone models.Tone) (models.ContentResult, error)
	SetToken(token string)
	ClearToken()
}
