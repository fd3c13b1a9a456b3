package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/rohits-web03/clubhouse/internal/config"
)

func TestGoogleOAuth_AuthCodeURL(t *testing.T) {
	g := NewGoogleOAuth(config.GoogleConfig{ClientID: "cid", ClientSecret: "cs", RedirectURL: "http://localhost/cb"})

	u, err := url.Parse(g.AuthCodeURL("state-123"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "state-123", u.Query().Get("state"))
	assert.Equal(t, "cid", u.Query().Get("client_id"))
}

func TestGoogleOAuth_Profile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-1",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(GoogleProfile{ID: "g-1", Email: "jo@example.com", GivenName: "Jo", FamilyName: "Dii"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewGoogleOAuth(config.GoogleConfig{ClientID: "cid", ClientSecret: "cs"})
	g.config.Endpoint = oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
	g.userInfoURL = srv.URL + "/userinfo"

	profile, err := g.Profile(context.Background(), "code-1")
	require.NoError(t, err)
	assert.Equal(t, "g-1", profile.ID)
	assert.Equal(t, "Dii", profile.FamilyName)
}
