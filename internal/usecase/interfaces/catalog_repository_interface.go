package interfaces

import (
	"context"

	"espaco_eventos/internal/domain/entities"
)

// CatalogData is the raw reference data as loaded from the external store.
// The pricing tables and price rows may arrive empty for a restricted role;
// the server-side filter, not the client, decides that.
type CatalogData struct {
	Services      []entities.Service
	PriceTables   []entities.PriceTable
	ServicePrices []entities.ServicePrice
}

// ICatalogRepository loads the immutable-per-session catalog.
//
// A load failure is fatal for initialization: no partial catalog is usable.
type ICatalogRepository interface {
	LoadCatalog(ctx context.Context) (CatalogData, error)
}
