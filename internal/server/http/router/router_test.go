package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	pkgAuth "github.com/primedecor/backend/internal/pkg/auth"
	"github.com/primedecor/backend/internal/server/http/dto"
	testhelpers "github.com/primedecor/backend/internal/test"
)

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	gate := pkgAuth.NewStaticTokenGate("secret")
	return Setup(testhelpers.StudioFacadeStub{}, gate, prometheus.NewRegistry(), logger)
}

func TestRouterPlacesOrder(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
		Items:           []dto.OrderItemRequest{{ProductID: "P1", Quantity: 2}},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
}

func TestRouterPublicRoutes(t *testing.T) {
	paths := []string{
		"/api/products",
		"/api/projects",
		"/api/gallery",
		"/healthz",
		"/metrics",
	}
	router := newTestRouter()
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, w.Code)
		}
	}
}

func TestRouterAdminRequiresToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d", w.Code)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
