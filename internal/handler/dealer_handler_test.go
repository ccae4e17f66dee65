package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"finder-service/internal/service"
	"finder-service/pkg/config"
	"finder-service/pkg/jwtutil"
	"finder-service/prometheus"

	"github.com/labstack/echo/v4"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "handlertest"}})
	os.Exit(m.Run())
}

// stubDealerService returns canned values for handler tests
type stubDealerService struct {
	profile map[string]interface{}
	view    *service.ProductView
	views   []service.ProductView
	err     error
}

func (s *stubDealerService) Profile(ctx context.Context, dealerID uint) (map[string]interface{}, error) {
	return s.profile, s.err
}

func (s *stubDealerService) ListVariants(ctx context.Context, dealerID uint, page, perPage int) ([]service.ProductView, error) {
	return s.views, s.err
}

func (s *stubDealerService) GetVariant(ctx context.Context, id uint) (*service.ProductView, error) {
	return s.view, s.err
}

func (s *stubDealerService) CreateVariant(ctx context.Context, dealerID uint, in service.CreateVariantInput) (*service.ProductView, error) {
	return s.view, s.err
}

func (s *stubDealerService) EditVariant(ctx context.Context, dealerID, id uint, in service.EditVariantInput) (*service.ProductView, error) {
	return s.view, s.err
}

func (s *stubDealerService) DeleteVariant(ctx context.Context, dealerID, id uint) error {
	return s.err
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context) {
	c.Set("claims", &jwtutil.DealerClaims{UserID: 42, Login: "jdoe", Capabilities: []string{"manage_catalog"}})
}

func TestDealerCreateRespondsWith200(t *testing.T) {
	svc := &stubDealerService{view: &service.ProductView{ID: 10, SKU: "BIKE-100-jdoe-red-m"}}
	h := NewDealerHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/dealer/products",
		`{"parent_id":1,"size":"M","color":"red","price":"199.99"}`)
	authenticate(c)

	if err := h.CreateProduct(c); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	// Creation responds 200, not 201, like every other operation
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var body service.ProductView
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.SKU != "BIKE-100-jdoe-red-m" {
		t.Errorf("sku = %q", body.SKU)
	}
}

func TestDealerCreateInvalidInput(t *testing.T) {
	svc := &stubDealerService{err: service.ErrInvalidVariantInput}
	h := NewDealerHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/dealer/products", `{"parent_id":1}`)
	authenticate(c)

	if err := h.CreateProduct(c); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cannot create product") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDealerCreateRequiresAuthentication(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/dealer/products", `{}`)

	if err := h.CreateProduct(c); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestDealerEditNotFound(t *testing.T) {
	svc := &stubDealerService{err: service.ErrDealerProductNotFound}
	h := NewDealerHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/api/v1/dealer/products/5", `{"color":"blue"}`)
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.EditProduct(c); err != nil {
		t.Fatalf("EditProduct: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "associated with the current dealer") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDealerEditMalformedPrice(t *testing.T) {
	svc := &stubDealerService{err: service.ErrInvalidPrice}
	h := NewDealerHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/api/v1/dealer/products/5", `{"price":"banana"}`)
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.EditProduct(c); err != nil {
		t.Fatalf("EditProduct: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDealerDeleteOK(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{})

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/dealer/products/5", "")
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.DeleteProduct(c); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["status"] != "OK" {
		t.Errorf(`body = %v, want {"status":"OK"}`, body)
	}
}

func TestDealerDeleteNotFound(t *testing.T) {
	svc := &stubDealerService{err: service.ErrVariantDelete}
	h := NewDealerHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/dealer/products/5", "")
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.DeleteProduct(c); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDealerInvalidIDParam(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/dealer/products/abc", "")
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.GetProduct(c); err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDealerProfile(t *testing.T) {
	svc := &stubDealerService{profile: map[string]interface{}{
		"login": "jdoe",
		"meta":  map[string]interface{}{"phone": "555-0100"},
	}}
	h := NewDealerHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/dealer", "")
	authenticate(c)

	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"login":"jdoe"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
