package itmo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/isu2cal/isu2cal/internal/i18n"
)

func TestClient_PersonalSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches token and range", func(t *testing.T) {
		var gotAuth, gotLang, gotUA string
		var gotQuery map[string][]string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotLang = r.Header.Get("Accept-Language")
			gotUA = r.Header.Get("User-Agent")
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{"code": 200, "data": [], "message": null}`))
		}))
		defer ts.Close()

		client := NewClient(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}))
		client.baseURL = ts.URL

		start := time.Date(2023, 9, 4, 0, 0, 0, 0, time.UTC)
		end := time.Date(2023, 9, 10, 0, 0, 0, 0, time.UTC)

		body, err := client.PersonalSchedule(ctx, start, end, i18n.Russian)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(body), `"code": 200`) {
			t.Errorf("unexpected body %q", body)
		}

		if gotAuth != "Bearer test-token" {
			t.Errorf("expected bearer token, got %q", gotAuth)
		}
		if gotLang != "ru" {
			t.Errorf("expected Accept-Language ru, got %q", gotLang)
		}
		if gotUA != "isu2cal/1.0" {
			t.Errorf("unexpected User-Agent %q", gotUA)
		}
		if got := gotQuery["date_start"]; len(got) != 1 || got[0] != "2023-09-04" {
			t.Errorf("unexpected date_start %v", got)
		}
		if got := gotQuery["date_end"]; len(got) != 1 || got[0] != "2023-09-10" {
			t.Errorf("unexpected date_end %v", got)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "expired token", http.StatusUnauthorized)
		}))
		defer ts.Close()

		client := NewClient(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "stale"}))
		client.baseURL = ts.URL

		_, err := client.PersonalSchedule(ctx, time.Now(), time.Now(), i18n.English)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "401") {
			t.Errorf("expected the status in the error, got %v", err)
		}
	})
}
