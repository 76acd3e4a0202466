// Package itmo is the authenticated client for the ITMO schedule API.
//
// The interactive browser login that mints the first token is out of scope
// here; the client consumes a token previously stored on disk and keeps it
// fresh through the standard refresh-token grant, persisting rotated
// tokens back to the same file.
package itmo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/oauth2"
)

const (
	authURL     = "https://id.itmo.ru/auth/realms/itmo/protocol/openid-connect/auth"
	tokenURL    = "https://id.itmo.ru/auth/realms/itmo/protocol/openid-connect/token"
	redirectURL = "https://id.itmo.ru/login/callback"

	// The public client the university identity provider issues personal
	// tokens for.
	clientID = "profile"
)

// Endpoint is the id.itmo.ru OpenID Connect endpoint pair.
var Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}

// OAuthConfig returns the OAuth2 client configuration used for refreshes.
func OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:    clientID,
		Endpoint:    Endpoint,
		RedirectURL: redirectURL,
	}
}

// fileTokenSource refreshes through the wrapped source and writes rotated
// tokens back to disk, so refresh tokens survive restarts.
type fileTokenSource struct {
	path string

	mu   sync.Mutex
	src  oauth2.TokenSource
	last *oauth2.Token
}

// NewFileTokenSource loads a stored token from path and returns a source
// that keeps it fresh and persisted.
func NewFileTokenSource(ctx context.Context, path string) (oauth2.TokenSource, error) {
	tok, err := loadToken(path)
	if err != nil {
		return nil, err
	}
	return &fileTokenSource{
		path: path,
		src:  OAuthConfig().TokenSource(ctx, tok),
		last: tok,
	}, nil
}

func (f *fileTokenSource) Token() (*oauth2.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tok, err := f.src.Token()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}

	if tok.AccessToken != f.last.AccessToken {
		if err := saveToken(f.path, tok); err != nil {
			// Keep serving the fresh token even if persistence fails;
			// the next process start will just refresh again.
			slog.Error("Failed to persist refreshed token", "path", f.path, "error", err)
		}
		f.last = tok
	}

	return tok, nil
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("decode token file %s: %w", path, err)
	}
	if tok.RefreshToken == "" && tok.AccessToken == "" {
		return nil, fmt.Errorf("token file %s holds no usable token", path)
	}
	return &tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
