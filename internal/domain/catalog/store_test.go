package catalog

import (
	"testing"

	"espaco_eventos/internal/domain/entities"
)

func testStore() *Store {
	return New(
		[]entities.Service{
			{ID: "s3", Name: "Garçom", Category: entities.CategoryServicosOutros},
			{ID: "s1", Name: "Buffet", Category: entities.CategoryGastronomia},
			{ID: "s2", Name: "Almoço", Category: entities.CategoryGastronomia},
			{ID: "s4", Name: "Salão", Category: entities.CategoryEspaco},
		},
		[]entities.PriceTable{
			{ID: "t2", Name: "Premium"},
			{ID: "t1", Name: "Básica"},
		},
		[]entities.ServicePrice{
			{PriceTableID: "t1", ServiceID: "s1", Price: 42},
		},
	)
}

func TestStore_ServiceByID(t *testing.T) {
	s := testStore()
	if _, ok := s.ServiceByID("s1"); !ok {
		t.Fatalf("expected s1 to resolve")
	}
	if _, ok := s.ServiceByID("nope"); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestStore_ServicesByCategorySortedByName(t *testing.T) {
	s := testStore()
	got := s.ServicesByCategory(entities.CategoryGastronomia)
	if len(got) != 2 || got[0].Name != "Almoço" || got[1].Name != "Buffet" {
		t.Fatalf("expected name order, got %+v", got)
	}
}

func TestStore_ServicesFollowCategoryOrder(t *testing.T) {
	s := testStore()
	all := s.Services()
	if len(all) != 4 {
		t.Fatalf("expected 4 services, got %d", len(all))
	}
	if all[0].Category != entities.CategoryEspaco {
		t.Fatalf("expected Espaço first, got %s", all[0].Category)
	}
	if all[len(all)-1].Category != entities.CategoryServicosOutros {
		t.Fatalf("expected Serviços / Outros last, got %s", all[len(all)-1].Category)
	}
}

func TestStore_PriceTablesSortedByName(t *testing.T) {
	s := testStore()
	tables := s.PriceTables()
	if len(tables) != 2 || tables[0].Name != "Básica" || tables[1].Name != "Premium" {
		t.Fatalf("expected name order, got %+v", tables)
	}
}

func TestStore_Price(t *testing.T) {
	s := testStore()
	if p, ok := s.Price("t1", "s1"); !ok || p != 42 {
		t.Fatalf("expected explicit price 42, got %v ok=%v", p, ok)
	}
	if _, ok := s.Price("t1", "s2"); ok {
		t.Fatalf("expected missing pair to miss")
	}
	if _, ok := s.Price("unknown", "s1"); ok {
		t.Fatalf("expected unknown table to miss")
	}
}
