package export

import (
	"bytes"
	"testing"

	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/domain/pricing"
)

func TestProposalGenerator_Generate(t *testing.T) {
	doc := entities.NewQuoteDocument()
	doc.General.ClientName = "Festas & Cia Ltda"
	doc.General.ClientCnpj = "12.345.678/0001-99"
	doc.General.Dates = []entities.EventDate{{Date: "2026-09-01", StartTime: "19:00", EndTime: "23:00"}}
	doc.Items = []entities.LineItem{
		{ServiceID: "svc-1", Quantity: 1, AssignedDate: "2026-09-01", Observations: "salão decorado"},
		{ServiceID: "svc-2", Quantity: 100, AssignedDate: "2026-09-01", DiscountPercent: 10},
	}

	totals := pricing.TotalsResult{
		Lines: []pricing.LineTotals{
			{Index: 0, ServiceID: "svc-1", ServiceName: "Salão Principal", Category: string(entities.CategoryEspaco), Quantity: 1, UnitPrice: 1000, LineTotal: 1000},
			{Index: 1, ServiceID: "svc-2", ServiceName: "Jantar", Category: string(entities.CategoryGastronomia), Quantity: 100, UnitPrice: 90, DiscountPercent: 10, LineTotal: 8100},
		},
		Subtotal:            9100,
		ConsumableDeduction: 100,
		GeneralDiscount:     500,
		GrandTotal:          8500,
	}

	out, err := NewProposalGenerator().Generate(doc, totals)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected a pdf document, got %q", out[:min(len(out), 8)])
	}
}

func TestProposalGenerator_SkipsUnresolvableLines(t *testing.T) {
	doc := entities.NewQuoteDocument()
	doc.Items = []entities.LineItem{{ServiceID: "gone"}}

	totals := pricing.TotalsResult{
		Lines: []pricing.LineTotals{{Index: 0, ServiceID: "gone", Skipped: true}},
	}

	out, err := NewProposalGenerator().Generate(doc, totals)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected a document even with no renderable lines")
	}
}

func TestProposalGenerator_EmptyDocument(t *testing.T) {
	doc := entities.NewQuoteDocument()
	out, err := NewProposalGenerator().Generate(doc, pricing.TotalsResult{})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected a pdf document")
	}
}
