package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `{
	"products": [
		{"url": "/p/whey", "name": "Whey Gold", "price": 1200, "in_stock": true,
		 "description": "24g protein", "images": ["https://cdn.example/whey.png"]},
		{"url": "/p/creatine", "name": "Creatine X", "price": 300,
		 "categories": ["Creatine"]}
	]
}`

func TestLoaderFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	got, err := NewLoader(srv.URL).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Whey Gold" || got[1].Price != 300 {
		t.Fatalf("unexpected products: %+v", got)
	}
}

func TestLoaderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := NewLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
}

func TestLoaderRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewLoader(srv.URL).Load(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestLoaderRejectsInvalidDocument(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"products": [`,
		"missing name":   `{"products": [{"url": "/p/x", "price": 10}]}`,
		"negative price": `{"products": [{"url": "/p/x", "name": "X", "price": -1}]}`,
	}
	for label, body := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))
		if _, err := NewLoader(srv.URL).Load(context.Background()); err == nil {
			t.Errorf("%s: expected validation error", label)
		}
		srv.Close()
	}
}
