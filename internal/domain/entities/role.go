package entities

// Role is the caller's capability level, resolved outside the core (JWT
// claim, session, ...) and threaded explicitly through pricing and saving.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// PricingVisible reports whether the role may see unit prices, credits and
// totals. A client works with a zeroed price surface; the values are hidden
// from the model's outputs, not merely from the screen.
func (r Role) PricingVisible() bool {
	return r == RoleAdmin
}
