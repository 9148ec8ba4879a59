package entities

import "time"

// QuoteStatus represents the lifecycle of a quote document.
//
// Domain notes:
//   - A client-originated submission is always created fresh (never updates
//     an existing identity) and arrives with pricing fields redacted.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSubmitted QuoteStatus = "submitted"
)

// EventDate is one scheduled date of the event. Dates form an ordered
// sequence; line items reference a date by its calendar value, not by index,
// so an item's reference survives reordering and removal of other dates.
type EventDate struct {
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Observations string `json:"observations"`
}

// LineItem is one selected service instance within a quote.
//
// UnitPrice and LineTotal are cached projections of the last pricing pass.
// They exist for serialization and display only and are never read back as
// input to a later calculation.
type LineItem struct {
	ServiceID       string  `json:"service_id"`
	Quantity        float64 `json:"quantity"`
	DiscountPercent float64 `json:"discount_percent"`
	AssignedDate    string  `json:"assigned_date"`
	Observations    string  `json:"observations"`

	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// GeneralInfo is the document-level block of a quote.
type GeneralInfo struct {
	ClientName      string      `json:"client_name"`
	ClientCnpj      string      `json:"client_cnpj"`
	ClientEmail     string      `json:"client_email"`
	ClientPhone     string      `json:"client_phone"`
	GuestCount      int         `json:"guest_count"`
	PriceTableID    string      `json:"price_table_id"`
	GeneralDiscount float64     `json:"general_discount"`
	Dates           []EventDate `json:"dates"`
}

// QuoteDocument is the mutable aggregate owning all structural invariants of
// a quote. It is mutated exclusively through the methods below; every
// mutation marks the document dirty, and the caller recomputes totals before
// showing any figure.
type QuoteDocument struct {
	ID      string      `json:"id,omitempty"`
	General GeneralInfo `json:"general"`
	Items   []LineItem  `json:"items"`
	Status  QuoteStatus `json:"status"`

	Dirty bool `json:"-"`
}

const (
	defaultGuestCount = 100
	defaultStartTime  = "19:00"
	defaultEndTime    = "23:00"
)

// NewQuoteDocument creates an empty draft with the session defaults: 100
// guests and a single event date for today.
func NewQuoteDocument() *QuoteDocument {
	return &QuoteDocument{
		General: GeneralInfo{
			GuestCount: defaultGuestCount,
			Dates: []EventDate{{
				Date:      time.Now().Format("2006-01-02"),
				StartTime: defaultStartTime,
				EndTime:   defaultEndTime,
			}},
		},
		Items:  []LineItem{},
		Status: QuoteStatusDraft,
	}
}

func (q *QuoteDocument) markDirty() { q.Dirty = true }

// AddDate appends an event date. Duplicate date values are allowed.
func (q *QuoteDocument) AddDate(d EventDate) {
	if d.StartTime == "" {
		d.StartTime = defaultStartTime
	}
	if d.EndTime == "" {
		d.EndTime = defaultEndTime
	}
	q.General.Dates = append(q.General.Dates, d)
	q.markDirty()
}

// RemoveDate removes the date at the given position. Line items assigned to
// the removed date keep their stale value; the reference is resolved as
// "unassigned" at read time, never nulled here. Out-of-range indexes are a
// no-op.
func (q *QuoteDocument) RemoveDate(index int) bool {
	if index < 0 || index >= len(q.General.Dates) {
		return false
	}
	q.General.Dates = append(q.General.Dates[:index], q.General.Dates[index+1:]...)
	q.markDirty()
	return true
}

// DatePatch carries in-place field updates for an event date. Nil fields are
// left untouched.
type DatePatch struct {
	Date         *string
	StartTime    *string
	EndTime      *string
	Observations *string
}

// UpdateDate applies a partial update to the date at the given position.
func (q *QuoteDocument) UpdateDate(index int, p DatePatch) bool {
	if index < 0 || index >= len(q.General.Dates) {
		return false
	}
	d := &q.General.Dates[index]
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.StartTime != nil {
		d.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		d.EndTime = *p.EndTime
	}
	if p.Observations != nil {
		d.Observations = *p.Observations
	}
	q.markDirty()
	return true
}

// DefaultAssignDate returns the first event date's value, or empty when no
// date exists yet. New items are assigned to it.
func (q *QuoteDocument) DefaultAssignDate() string {
	if len(q.General.Dates) == 0 {
		return ""
	}
	return q.General.Dates[0].Date
}

// HasItem reports whether an item with the same service and assigned date is
// already present.
func (q *QuoteDocument) HasItem(serviceID, assignedDate string) bool {
	for _, it := range q.Items {
		if it.ServiceID == serviceID && it.AssignedDate == assignedDate {
			return true
		}
	}
	return false
}

// AddItems appends one line item per catalog service, assigned to the given
// date. A per-guest service starts with the current guest count as quantity,
// anything else starts at 1. Adding a service already present with the same
// assigned date is silently suppressed. Returns the number of items added.
func (q *QuoteDocument) AddItems(services []Service, assignedDate string) int {
	added := 0
	for _, svc := range services {
		if q.HasItem(svc.ID, assignedDate) {
			continue
		}
		qty := 1.0
		if svc.Unit == UnitPerGuest {
			qty = float64(q.General.GuestCount)
			if qty <= 0 {
				qty = 1
			}
		}
		q.Items = append(q.Items, LineItem{
			ServiceID:    svc.ID,
			Quantity:     qty,
			AssignedDate: assignedDate,
		})
		added++
	}
	if added > 0 {
		q.markDirty()
	}
	return added
}

// ItemPatch carries partial updates for a line item. Nil fields are left
// untouched. Numeric values are clamped to be non-negative; the 0–100 bound
// on the discount percent is enforced at the input surface, not re-validated
// here.
type ItemPatch struct {
	Quantity        *float64
	DiscountPercent *float64
	AssignedDate    *string
	Observations    *string
}

// UpdateItem applies a partial update to the item at the given position.
func (q *QuoteDocument) UpdateItem(index int, p ItemPatch) bool {
	if index < 0 || index >= len(q.Items) {
		return false
	}
	it := &q.Items[index]
	if p.Quantity != nil {
		it.Quantity = clampNonNegative(*p.Quantity)
	}
	if p.DiscountPercent != nil {
		it.DiscountPercent = clampNonNegative(*p.DiscountPercent)
	}
	if p.AssignedDate != nil {
		it.AssignedDate = *p.AssignedDate
	}
	if p.Observations != nil {
		it.Observations = *p.Observations
	}
	q.markDirty()
	return true
}

// DuplicateItem deep-copies the item at the given position and inserts the
// copy immediately after it. The copied cached price fields are stale until
// the next pricing pass recomputes them.
func (q *QuoteDocument) DuplicateItem(index int) bool {
	if index < 0 || index >= len(q.Items) {
		return false
	}
	dup := q.Items[index]
	q.Items = append(q.Items, LineItem{})
	copy(q.Items[index+2:], q.Items[index+1:])
	q.Items[index+1] = dup
	q.markDirty()
	return true
}

// RemoveItem removes the item at the given position.
func (q *QuoteDocument) RemoveItem(index int) bool {
	if index < 0 || index >= len(q.Items) {
		return false
	}
	q.Items = append(q.Items[:index], q.Items[index+1:]...)
	q.markDirty()
	return true
}

// SetGeneralDiscount sets the flat document-level currency deduction.
func (q *QuoteDocument) SetGeneralDiscount(amount float64) {
	q.General.GeneralDiscount = clampNonNegative(amount)
	q.markDirty()
}

// SetPriceTable selects the active price table. An id that does not resolve
// in the catalog makes every unit price resolve to zero; it is not an error.
func (q *QuoteDocument) SetPriceTable(id string) {
	q.General.PriceTableID = id
	q.markDirty()
}

// SetGuestCount updates the guest count. Per-guest item quantities are forced
// to the new value on the next pricing pass, not rewritten here.
func (q *QuoteDocument) SetGuestCount(n int) {
	if n < 0 {
		n = 0
	}
	q.General.GuestCount = n
	q.markDirty()
}

// Clone returns a deep copy of the document.
func (q *QuoteDocument) Clone() *QuoteDocument {
	out := *q
	out.General.Dates = append([]EventDate(nil), q.General.Dates...)
	out.Items = append([]LineItem(nil), q.Items...)
	return &out
}

// Redacted returns the document as it may cross the persistence boundary for
// the given role. For a client this strips every pricing field before
// transmission: the price table reference, the general discount, per-item
// discounts and the cached price projections. This is a server-trust
// boundary, not a display concern. An admin document passes through
// unchanged.
func (q *QuoteDocument) Redacted(role Role) *QuoteDocument {
	out := q.Clone()
	if role.PricingVisible() {
		return out
	}
	out.General.PriceTableID = ""
	out.General.GeneralDiscount = 0
	for i := range out.Items {
		out.Items[i].DiscountPercent = 0
		out.Items[i].UnitPrice = 0
		out.Items[i].LineTotal = 0
	}
	return out
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
