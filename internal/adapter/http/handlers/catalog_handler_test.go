package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"espaco_eventos/internal/adapter/http/middleware"
	"espaco_eventos/internal/domain/catalog"
	"espaco_eventos/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func modifier(v float64) *float64 { return &v }

func catalogRouter(role entities.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := catalog.New(
		[]entities.Service{
			{ID: "s1", Name: "Salão", Category: entities.CategoryEspaco, Unit: entities.UnitPerUnit, BasePrice: 1000},
			{ID: "s2", Name: "Buffet", Category: entities.CategoryGastronomia, Unit: entities.UnitPerGuest, BasePrice: 90},
		},
		[]entities.PriceTable{{ID: "t1", Name: "Padrão", Modifier: modifier(1.0), ConsumableCredit: 100}},
		nil,
	)
	h := NewCatalogHandler(store)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.RoleContextKey, role)
		c.Next()
	})
	r.GET("/v1/catalog", h.GetCatalog)
	return r
}

func getCatalog(t *testing.T, r *gin.Engine) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	return body
}

func TestCatalogHandler_AdminSeesPrices(t *testing.T) {
	body := getCatalog(t, catalogRouter(entities.RoleAdmin))

	if _, ok := body["price_tables"]; !ok {
		t.Fatalf("expected price tables for admin, got %v", body)
	}
	categories := body["categories"].([]any)
	first := categories[0].(map[string]any)
	svc := first["services"].([]any)[0].(map[string]any)
	if _, ok := svc["base_price"]; !ok {
		t.Fatalf("expected base price for admin, got %v", svc)
	}
}

func TestCatalogHandler_ClientGetsFilteredCatalog(t *testing.T) {
	body := getCatalog(t, catalogRouter(entities.RoleClient))

	if _, ok := body["price_tables"]; ok {
		t.Fatalf("client must not see price tables, got %v", body)
	}
	categories := body["categories"].([]any)
	if len(categories) != 2 {
		t.Fatalf("expected both categories, got %d", len(categories))
	}
	first := categories[0].(map[string]any)
	if first["category"] != string(entities.CategoryEspaco) {
		t.Fatalf("expected Espaço first, got %v", first["category"])
	}
	svc := first["services"].([]any)[0].(map[string]any)
	if _, ok := svc["base_price"]; ok {
		t.Fatalf("client must not see base prices, got %v", svc)
	}
}
