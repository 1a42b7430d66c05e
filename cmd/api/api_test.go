package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"grlla/internal/auth"
	"grlla/internal/catalog"
	"grlla/internal/checkout"
	"grlla/internal/i18n"
	"grlla/internal/orders"
	"grlla/internal/ratelimiter"

	"go.uber.org/zap"
)

var errTest = errors.New("catalog source unreachable")

func testProducts() []catalog.Product {
	return []catalog.Product{
		{URL: "https://shop.example/p/whey-gold", Name: "Optimum Nutrition Whey Gold", Description: "whey protein isolate", Price: 2500, InStock: true},
		{URL: "https://shop.example/p/creatine-x", Name: "Nutrex Creatine X", Description: "creatine monohydrate", Price: 800, InStock: true},
		{URL: "https://shop.example/p/pre-pump", Name: "Limitless Pre Pump", Description: "pre-workout formula", Price: 1200, InStock: true},
		{URL: "https://shop.example/p/amino-go", Name: "NOW Amino Go", Description: "bcaa blend", Price: 600, InStock: false},
		{URL: "https://shop.example/p/zinc", Name: "Zinc Tabs", Description: "mineral support", Price: 300, InStock: true},
	}
}

func newTestApp(t *testing.T, orderEndpoint, catalogSrc string) *application {
	t.Helper()

	bundle, err := i18n.Load()
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}

	store := catalog.NewStore()
	store.SetProducts(testProducts())

	refs, err := orders.NewReferenceGenerator("test-salt")
	if err != nil {
		t.Fatalf("reference generator: %v", err)
	}

	return &application{
		config: config{
			addr:    ":0",
			env:     "test",
			catalog: catalogConfig{src: catalogSrc, pageSize: 2},
			order:   orderConfig{endpoint: orderEndpoint},
			auth: authConfig{
				basic: basicConfig{user: "admin", pass: "secret"},
				token: tokenConfig{secret: "test-secret", exp: time.Hour, iss: "GRLLA"},
			},
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		logger:        zap.NewNop().Sugar(),
		store:         store,
		loader:        catalog.NewLoader(catalogSrc),
		bundle:        bundle,
		lang:          i18n.NewSwitcher(),
		checkout:      checkout.New(orderEndpoint),
		refs:          refs,
		authenticator: auth.NewJWTAuthenticator("test-secret", "GRLLA", "GRLLA"),
	}
}

func doRequest(t *testing.T, app *application, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)
	return rr
}

func decodeData(t *testing.T, body []byte, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestListSupplementsFilterAndSort(t *testing.T) {
	app := newTestApp(t, "", "")

	req := httptest.NewRequest(http.MethodGet, "/v1/supplements?search=creatine&sort=price-asc", nil)
	rr := doRequest(t, app, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	var view catalog.View
	decodeData(t, rr.Body.Bytes(), &view)
	if view.Total != 1 {
		t.Fatalf("total: got %d, want 1", view.Total)
	}
	if view.Products[0].Name != "Nutrex Creatine X" {
		t.Fatalf("product: got %q", view.Products[0].Name)
	}
}

func TestListSupplementsClampsPage(t *testing.T) {
	app := newTestApp(t, "", "")

	// 5 products, page size 2 → 3 pages; page=99 clamps to the last one.
	req := httptest.NewRequest(http.MethodGet, "/v1/supplements?page=99", nil)
	rr := doRequest(t, app, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	var view catalog.View
	decodeData(t, rr.Body.Bytes(), &view)
	if view.Page != 3 || view.TotalPages != 3 {
		t.Fatalf("page/totalPages: got %d/%d, want 3/3", view.Page, view.TotalPages)
	}
	if view.HasNext {
		t.Fatal("last page should not have next")
	}
}

func TestListSupplementsZeroPriceCeiling(t *testing.T) {
	app := newTestApp(t, "", "")

	req := httptest.NewRequest(http.MethodGet, "/v1/supplements?max_price=0", nil)
	rr := doRequest(t, app, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	var view catalog.View
	decodeData(t, rr.Body.Bytes(), &view)
	if view.Total != 0 {
		t.Fatalf("a zero ceiling keeps only zero-priced products, got %d", view.Total)
	}
}

func TestListSupplementsUnavailableWhenCatalogEmpty(t *testing.T) {
	app := newTestApp(t, "", "")
	app.store = catalog.NewStore()
	app.store.SetLoadError(errTest)

	req := httptest.NewRequest(http.MethodGet, "/v1/supplements?lang=ar", nil)
	rr := doRequest(t, app, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want 503", rr.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != app.bundle.T(i18n.LangAR, "catalogUnavailable") {
		t.Fatalf("message not localized: got %q", resp.Message)
	}
}

func TestListSupplementsRejectsBadSort(t *testing.T) {
	app := newTestApp(t, "", "")

	req := httptest.NewRequest(http.MethodGet, "/v1/supplements?sort=sideways", nil)
	rr := doRequest(t, app, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
}

func TestGetSupplementNotFoundIsLocalized(t *testing.T) {
	app := newTestApp(t, "", "")

	req := httptest.NewRequest(http.MethodGet, "/v1/supplements/detail?product=https://shop.example/p/nope&lang=ar", nil)
	rr := doRequest(t, app, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rr.Code)
	}
	var resp struct {
		Message  string `json:"message"`
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Redirect != "/supplements" {
		t.Fatalf("redirect: got %q", resp.Redirect)
	}
	if resp.Message != app.bundle.T(i18n.LangAR, "productNotFound") {
		t.Fatalf("message not localized: got %q", resp.Message)
	}
}

func TestToggleLanguageRoundTrip(t *testing.T) {
	app := newTestApp(t, "", "")

	var first struct {
		Lang string `json:"lang"`
		Dir  string `json:"dir"`
	}
	rr := doRequest(t, app, httptest.NewRequest(http.MethodPost, "/v1/language/toggle", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	decodeData(t, rr.Body.Bytes(), &first)
	if first.Lang != i18n.LangAR || first.Dir != "rtl" {
		t.Fatalf("first toggle: got %s/%s, want ar/rtl", first.Lang, first.Dir)
	}

	rr = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/v1/language/toggle", nil))
	decodeData(t, rr.Body.Bytes(), &first)
	if first.Lang != i18n.LangEN || first.Dir != "ltr" {
		t.Fatalf("second toggle: got %s/%s, want en/ltr", first.Lang, first.Dir)
	}
}

func TestCreateOrder(t *testing.T) {
	var received checkout.Order
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode upstream order: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	app := newTestApp(t, upstream.URL, "")

	payload := []byte(`{"product_url":"https://shop.example/p/creatine-x","quantity":2}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(payload))
	rr := doRequest(t, app, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Reference string `json:"reference"`
		Message   string `json:"message"`
	}
	decodeData(t, rr.Body.Bytes(), &resp)
	if !strings.HasPrefix(resp.Reference, "GRLLA-") {
		t.Fatalf("reference: got %q", resp.Reference)
	}
	if received.Total != 1600 || received.Quantity != 2 {
		t.Fatalf("forwarded order: got total=%v quantity=%d", received.Total, received.Quantity)
	}
}

func TestCreateOrderUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	app := newTestApp(t, upstream.URL, "")

	payload := []byte(`{"product_url":"https://shop.example/p/zinc"}`)
	rr := doRequest(t, app, httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(payload)))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d, want 502", rr.Code)
	}
}

func TestHealthRequiresBasicAuth(t *testing.T) {
	app := newTestApp(t, "", "")

	rr := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status without credentials: got %d, want 401", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.SetBasicAuth("admin", "secret")
	rr = doRequest(t, app, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status with credentials: got %d", rr.Code)
	}
}

func TestAdminTokenAndCatalogReload(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "catalog.json")
	doc := catalog.Document{Products: testProducts()[:2]}
	raw, _ := json.Marshal(doc)
	if err := os.WriteFile(src, raw, 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}

	app := newTestApp(t, "", src)

	// mint a token
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/token", nil)
	req.SetBasicAuth("admin", "secret")
	rr := doRequest(t, app, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("token status: got %d", rr.Code)
	}
	var tok struct {
		Token string `json:"token"`
	}
	decodeData(t, rr.Body.Bytes(), &tok)

	// reload without it
	rr = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/v1/admin/catalog/reload", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("reload without token: got %d, want 401", rr.Code)
	}

	// reload with it
	req = httptest.NewRequest(http.MethodPost, "/v1/admin/catalog/reload", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rr = doRequest(t, app, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("reload status: got %d, body %s", rr.Code, rr.Body.String())
	}
	if app.store.Len() != 2 {
		t.Fatalf("store after reload: got %d products, want 2", app.store.Len())
	}
}
