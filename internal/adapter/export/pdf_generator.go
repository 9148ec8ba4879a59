// Package export renders read-only views of a quote. The printable proposal
// consumes the pricing engine's most recent output as-is; it never recomputes
// a figure with rules of its own.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/domain/pricing"

	"github.com/jung-kurt/gofpdf"
)

type ProposalGenerator struct{}

func NewProposalGenerator() *ProposalGenerator {
	return &ProposalGenerator{}
}

// Generate renders the investment proposal for a quote document and the
// totals already derived from it.
func (g *ProposalGenerator) Generate(doc *entities.QuoteDocument, totals pricing.TotalsResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Proposta de Investimento"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Cliente: %s", doc.General.ClientName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("CNPJ/CPF: %s", doc.General.ClientCnpj)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Nº de Convidados: %d", doc.General.GuestCount)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	byCategory := groupLines(totals)
	for _, category := range entities.CategoryOrder() {
		lines := byCategory[string(category)]
		if len(lines) == 0 {
			continue
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(string(category)), "", 1, "L", false, 0, "")

		drawRow(pdf, tr, []string{"Item", "Data", "Qtde", "Vlr. Unit.", "Subtotal"}, true)
		for _, line := range lines {
			label := line.ServiceName
			if obs := itemObservations(doc, line.Index); obs != "" {
				label += " - " + obs
			}
			if line.DiscountPercent > 0 {
				label += fmt.Sprintf(" (desconto %.0f%%)", line.DiscountPercent)
			}
			drawRow(pdf, tr, []string{
				label,
				formatDateBR(itemAssignedDate(doc, line.Index)),
				formatQuantity(line.Quantity),
				formatCurrency(line.UnitPrice),
				formatCurrency(line.LineTotal),
			}, false)
		}
		pdf.Ln(3)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Subtotal: %s", formatCurrency(totals.Subtotal))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Consumação Inclusa: - %s", formatCurrency(totals.ConsumableDeduction))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Desconto Geral: - %s", formatCurrency(totals.GeneralDiscount))), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("VALOR TOTAL: %s", formatCurrency(totals.GrandTotal))), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func groupLines(totals pricing.TotalsResult) map[string][]pricing.LineTotals {
	out := make(map[string][]pricing.LineTotals)
	for _, line := range totals.Lines {
		if line.Skipped {
			continue
		}
		out[line.Category] = append(out[line.Category], line)
	}
	return out
}

func drawRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, header bool) {
	widths := []float64{80, 25, 20, 27, 28}
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	for i, col := range cols {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 6, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func itemAssignedDate(doc *entities.QuoteDocument, index int) string {
	if index < 0 || index >= len(doc.Items) {
		return ""
	}
	assigned := doc.Items[index].AssignedDate
	for _, d := range doc.General.Dates {
		if d.Date == assigned {
			return assigned
		}
	}
	// Dangling reference after a date removal: shown as unassigned.
	return ""
}

func itemObservations(doc *entities.QuoteDocument, index int) string {
	if index < 0 || index >= len(doc.Items) {
		return ""
	}
	return doc.Items[index].Observations
}

func formatDateBR(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "-"
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

func formatQuantity(qty float64) string {
	if qty == float64(int64(qty)) {
		return fmt.Sprintf("%d", int64(qty))
	}
	return fmt.Sprintf("%.2f", qty)
}

func formatCurrency(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
