package itmo

import (
	"context"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

func TestFileTokenSource(t *testing.T) {
	ctx := context.Background()

	t.Run("serves a stored non-expired token", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token.json")
		if err := saveToken(path, &oauth2.Token{AccessToken: "stored"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		src, err := NewFileTokenSource(ctx, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tok, err := src.Token()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.AccessToken != "stored" {
			t.Errorf("expected the stored token, got %q", tok.AccessToken)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := NewFileTokenSource(ctx, filepath.Join(t.TempDir(), "absent.json")); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("empty token file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token.json")
		if err := saveToken(path, &oauth2.Token{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := NewFileTokenSource(ctx, path); err == nil {
			t.Fatal("expected error for a token file with no usable token")
		}
	})
}
