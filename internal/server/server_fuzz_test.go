package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/vlistdata/internal/config"
	"github.com/conneroisu/vlistdata/internal/dataset"
)

func FuzzUsersQuery(f *testing.F) {
	f.Add("offset=0&limit=50")
	f.Add("offset=990&limit=50&total=1000")
	f.Add("limit=-1&total=abc")
	f.Add("offset=99999999999999999999999")
	f.Add("%zz")

	cfg, err := config.LoadFrom(viper.New())
	if err != nil {
		f.Fatal(err)
	}
	s, err := New(cfg, nil)
	if err != nil {
		f.Fatal(err)
	}
	s.sleep = func(_ context.Context, _ time.Duration) error { return nil }

	f.Fuzz(func(t *testing.T, query string) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.URL.RawQuery = query
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status %d for query %q", w.Code, query)
		}

		var page dataset.Page
		if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
			t.Fatalf("invalid JSON for query %q: %v", query, err)
		}
		if len(page.Items) > dataset.MaxPageSize {
			t.Fatalf("page of %d items exceeds %d", len(page.Items), dataset.MaxPageSize)
		}
		if page.Items == nil {
			t.Fatalf("items is null for query %q", query)
		}
	})
}
