package entities

// PriceTable is a named pricing scheme, immutable per session.
//
// A table prices services either through explicit ServicePrice rows or, when
// no row exists for a service, through Modifier applied to the service's base
// price. ConsumableCredit is a currency amount already included in the deal,
// consumed against the consumable-eligible categories.
type PriceTable struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Modifier         *float64 `json:"modifier,omitempty"`
	ConsumableCredit float64  `json:"consumable_credit"`
}

// ServicePrice is one explicit (price table, service) price row.
// The pair is unique; an absent pair means "no price defined" and resolves
// to zero.
type ServicePrice struct {
	PriceTableID string  `json:"price_table_id"`
	ServiceID    string  `json:"service_id"`
	Price        float64 `json:"price"`
}
