package entities

// ServiceCategory is one of the fixed, ordered categories the venue sells.
//
// The order is part of the domain: summaries, printed proposals and the
// editing UI always list categories in this sequence.
type ServiceCategory string

const (
	CategoryEspaco         ServiceCategory = "Espaço"
	CategoryGastronomia    ServiceCategory = "Gastronomia"
	CategoryEquipamentos   ServiceCategory = "Equipamentos"
	CategoryServicosOutros ServiceCategory = "Serviços / Outros"
)

// CategoryOrder returns the fixed display/reference order of categories.
func CategoryOrder() []ServiceCategory {
	return []ServiceCategory{
		CategoryEspaco,
		CategoryGastronomia,
		CategoryEquipamentos,
		CategoryServicosOutros,
	}
}

// ConsumableEligible reports whether spend in this category counts against a
// price table's included consumption credit.
func (c ServiceCategory) ConsumableEligible() bool {
	return c == CategoryGastronomia || c == CategoryEquipamentos
}

// ServiceUnit determines how a line item's quantity is derived.
type ServiceUnit string

const (
	// UnitPerUnit bills the stored quantity.
	UnitPerUnit ServiceUnit = "per_unit"
	// UnitPerGuest bills once per guest; the stored quantity is ignored and
	// the document's guest count is used on every pricing pass.
	UnitPerGuest ServiceUnit = "per_guest"
)

// Service is an immutable catalog offering (menu item, rental, staff, ...).
type Service struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ServiceCategory `json:"category"`
	Unit      ServiceUnit     `json:"unit"`
	BasePrice float64         `json:"base_price"`
}
