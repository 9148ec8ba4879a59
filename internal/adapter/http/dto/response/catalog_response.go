package response

import (
	"espaco_eventos/internal/domain/catalog"
	"espaco_eventos/internal/domain/entities"
)

type CatalogServiceResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Unit      string   `json:"unit"`
	BasePrice *float64 `json:"base_price,omitempty"`
}

type CatalogCategoryResponse struct {
	Category string                   `json:"category"`
	Services []CatalogServiceResponse `json:"services"`
}

type PriceTableResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Modifier         *float64 `json:"modifier,omitempty"`
	ConsumableCredit float64  `json:"consumable_credit"`
}

// CatalogResponse lists the catalog in fixed category order. Price tables and
// base prices are omitted entirely for roles without pricing visibility; the
// filter is applied server-side, not by the consumer.
type CatalogResponse struct {
	Categories  []CatalogCategoryResponse `json:"categories"`
	PriceTables []PriceTableResponse      `json:"price_tables,omitempty"`
}

func FromCatalog(cat *catalog.Store, role entities.Role) CatalogResponse {
	visible := role.PricingVisible()

	out := CatalogResponse{}
	for _, category := range entities.CategoryOrder() {
		services := cat.ServicesByCategory(category)
		if len(services) == 0 {
			continue
		}
		bucket := CatalogCategoryResponse{Category: string(category)}
		for _, svc := range services {
			item := CatalogServiceResponse{
				ID:   svc.ID,
				Name: svc.Name,
				Unit: string(svc.Unit),
			}
			if visible {
				price := svc.BasePrice
				item.BasePrice = &price
			}
			bucket.Services = append(bucket.Services, item)
		}
		out.Categories = append(out.Categories, bucket)
	}

	if visible {
		for _, table := range cat.PriceTables() {
			out.PriceTables = append(out.PriceTables, PriceTableResponse{
				ID:               table.ID,
				Name:             table.Name,
				Modifier:         table.Modifier,
				ConsumableCredit: table.ConsumableCredit,
			})
		}
	}
	return out
}
