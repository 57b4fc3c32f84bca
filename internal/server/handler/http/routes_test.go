package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/foodfairhq/fairtrack/internal/service"
	"go.uber.org/zap"
)

func newTestRouter(cfg RouterConfig) http.Handler {
	return NewRouter(
		&TokenHandler{TokenService: service.NewTokenService("router-test-secret")},
		&ItemHandler{ItemService: &fakeItemService{listReturn: []models.Item{}}},
		&SaleHandler{SaleService: &fakeSaleService{listReturn: []models.Sale{}}},
		&CostHandler{CostService: &fakeCostService{listReturn: []models.Cost{}}},
		&PlaceHandler{PlaceService: &fakePlaceService{listReturn: []models.Place{}}},
		&ReportHandler{ReportService: &fakeReportService{}},
		zap.NewNop(),
		cfg,
	)
}

func TestRouter_PublicSurface(t *testing.T) {
	router := newTestRouter(RouterConfig{CORSOrigin: "http://localhost:5173"})

	targets := []struct {
		method string
		path   string
	}{
		{"GET", "/api/items"},
		{"GET", "/api/sales"},
		{"GET", "/api/costs"},
		{"GET", "/api/report"},
		{"GET", "/api/places"},
	}

	for _, tt := range targets {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s %s: expected 200 without a session, got %d", tt.method, tt.path, rec.Code)
		}
	}
}

func TestRouter_RejectsNonJSONBody(t *testing.T) {
	router := newTestRouter(RouterConfig{CORSOrigin: "http://localhost:5173"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/places", bytes.NewBufferString(`{"name":"A"}`))
	req.Header.Set("Content-Type", "text/plain")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rec.Code)
	}
}

func TestRouter_AuthGuard(t *testing.T) {
	tokens := service.NewTokenService("router-test-secret")
	router := newTestRouter(RouterConfig{
		CORSOrigin:  "http://localhost:5173",
		RequireAuth: true,
		Verifier:    tokens,
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/sales", nil)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := tokens.Issue(map[string]any{"email": "vendor@example.com"})
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/sales", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token + "x"})
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := tokens.Issue(map[string]any{"email": "vendor@example.com"})
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/sales", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("jwt endpoint stays public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/jwt", bytes.NewBufferString(`{"email":"vendor@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestRouter_CORSCredentials(t *testing.T) {
	router := newTestRouter(RouterConfig{CORSOrigin: "http://localhost:5173"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/places", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q", got)
	}
}
