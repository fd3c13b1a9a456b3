package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/rohits-web03/clubhouse/internal/config"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuth runs the authorization code exchange and fetches the signed
// in user's profile.
type GoogleOAuth struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleOAuth(cfg config.GoogleConfig) *GoogleOAuth {
	return &GoogleOAuth{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (g *GoogleOAuth) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state)
}

func (g *GoogleOAuth) Profile(ctx context.Context, code string) (GoogleProfile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := g.config.Client(ctx, token).Get(g.userInfoURL)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleProfile{}, fmt.Errorf("user info returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to read user info: %w", err)
	}

	var profile GoogleProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to parse user info: %w", err)
	}
	return profile, nil
}
