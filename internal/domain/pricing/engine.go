package pricing

import (
	"espaco_eventos/internal/domain/catalog"
	"espaco_eventos/internal/domain/entities"
)

// LineTotals is the derived view of one line item. Skipped is set when the
// item references a service no longer in the catalog; such an item
// contributes nothing to any total and is invisible in every count.
type LineTotals struct {
	Index           int     `json:"index"`
	ServiceID       string  `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	Category        string  `json:"category"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	LineTotal       float64 `json:"line_total"`
	Skipped         bool    `json:"-"`
}

// CategorySubtotal is one non-zero category bucket, in fixed category order.
type CategorySubtotal struct {
	Category string  `json:"category"`
	Subtotal float64 `json:"subtotal"`
}

// TotalsResult is the full output of a pricing pass. Values carry full
// float64 precision; two-decimal rounding happens only where figures are
// formatted for display.
type TotalsResult struct {
	Lines               []LineTotals       `json:"lines"`
	Subtotal            float64            `json:"subtotal"`
	CategorySubtotals   []CategorySubtotal `json:"category_subtotals"`
	ConsumableDeduction float64            `json:"consumable_deduction"`
	GeneralDiscount     float64            `json:"general_discount"`
	GrandTotal          float64            `json:"grand_total"`
}

// ComputeTotals derives every total of the document from scratch.
//
// Per resolvable line item: quantity is the guest count for per-guest
// services, otherwise the stored quantity floored to 1 for cost purposes (the
// stored value itself is not rewritten); the unit price comes from
// ResolveUnitPrice; the line total applies the item discount. The consumable
// deduction is the eligible-category spend capped at the table's credit, and
// the grand total never goes below zero.
func ComputeTotals(doc *entities.QuoteDocument, cat *catalog.Store, role entities.Role) TotalsResult {
	res := TotalsResult{Lines: make([]LineTotals, 0, len(doc.Items))}
	tableID := doc.General.PriceTableID
	byCategory := make(map[entities.ServiceCategory]float64)
	consumableEligible := 0.0

	for i, item := range doc.Items {
		svc, ok := cat.ServiceByID(item.ServiceID)
		if !ok {
			res.Lines = append(res.Lines, LineTotals{Index: i, ServiceID: item.ServiceID, Skipped: true})
			continue
		}

		qty := item.Quantity
		if svc.Unit == entities.UnitPerGuest {
			qty = float64(doc.General.GuestCount)
		} else if qty < 1 {
			qty = 1
		}

		unitPrice := ResolveUnitPrice(svc, tableID, cat, role)
		lineTotal := unitPrice * qty * (1 - item.DiscountPercent/100)

		res.Lines = append(res.Lines, LineTotals{
			Index:           i,
			ServiceID:       svc.ID,
			ServiceName:     svc.Name,
			Category:        string(svc.Category),
			Quantity:        qty,
			UnitPrice:       unitPrice,
			DiscountPercent: item.DiscountPercent,
			LineTotal:       lineTotal,
		})

		res.Subtotal += lineTotal
		byCategory[svc.Category] += lineTotal
		if svc.Category.ConsumableEligible() {
			consumableEligible += lineTotal
		}
	}

	credit := 0.0
	if role.PricingVisible() {
		if table, ok := cat.PriceTable(tableID); ok {
			credit = table.ConsumableCredit
		}
	}
	res.ConsumableDeduction = consumableEligible
	if credit < consumableEligible {
		res.ConsumableDeduction = credit
	}

	res.GeneralDiscount = doc.General.GeneralDiscount

	res.GrandTotal = res.Subtotal - res.ConsumableDeduction - res.GeneralDiscount
	if res.GrandTotal < 0 {
		res.GrandTotal = 0
	}

	for _, c := range entities.CategoryOrder() {
		if sub := byCategory[c]; sub > 0 {
			res.CategorySubtotals = append(res.CategorySubtotals, CategorySubtotal{
				Category: string(c),
				Subtotal: sub,
			})
		}
	}

	return res
}

// Apply stamps the derived unit price and line total of each resolvable line
// back onto the document's cached projection fields. The caches exist for
// serialization and display; they are overwritten on every pass and never
// read back.
func (r TotalsResult) Apply(doc *entities.QuoteDocument) {
	for _, line := range r.Lines {
		if line.Index < 0 || line.Index >= len(doc.Items) || line.Skipped {
			continue
		}
		doc.Items[line.Index].UnitPrice = line.UnitPrice
		doc.Items[line.Index].LineTotal = line.LineTotal
	}
}
