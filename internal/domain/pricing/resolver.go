// Package pricing turns a quote document, the catalog and the caller's role
// into a fully derived set of totals. Everything here is a pure computation,
// re-run in full after every document mutation; nothing is cached between
// passes.
package pricing

import (
	"espaco_eventos/internal/domain/catalog"
	"espaco_eventos/internal/domain/entities"
)

// ResolveUnitPrice returns the unit price of a service under a price table
// for the given role:
//
//   - no pricing visibility        -> 0 (hidden, not absent from the model)
//   - explicit per-service price   -> that price
//   - table modifier               -> base price x modifier
//   - otherwise                    -> 0
//
// An unknown table id resolves every price to zero; it is not an error.
func ResolveUnitPrice(svc entities.Service, tableID string, cat *catalog.Store, role entities.Role) float64 {
	if !role.PricingVisible() {
		return 0
	}
	table, ok := cat.PriceTable(tableID)
	if !ok {
		return 0
	}
	if price, ok := cat.Price(tableID, svc.ID); ok {
		return price
	}
	if table.Modifier != nil {
		return svc.BasePrice * *table.Modifier
	}
	return 0
}
