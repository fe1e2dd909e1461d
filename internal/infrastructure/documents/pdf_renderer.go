package documents

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
	"biquote/internal/usecase/interfaces"
)

// PDFRenderer renders an issued quote into a one-page PDF: a header with the
// client and project, the itemized breakdown table, the total and the
// validity line.
type PDFRenderer struct{}

var _ interfaces.IQuoteRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(quote entities.Quote, label interfaces.DocumentLabel) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "QUOTE", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	if label.ClientName != "" {
		pdf.CellFormat(190, 10, "Client: "+label.ClientName, "", 1, "L", false, 0, "")
	}
	if label.ProjectTitle != "" {
		pdf.CellFormat(190, 10, "Project: "+label.ProjectTitle, "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 10, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 10, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, category := range pricing.Categories() {
		pdf.CellFormat(100, 10, categoryLabel(category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 10, "$"+quote.Breakdown.Amount(category).StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 10, "TOTAL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 10, "$"+quote.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.Ln(15)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 10, "Valid until: "+quote.ValidUntil.Format("2006-01-02"), "", 1, "L", false, 0, "")
	if quote.Note != "" {
		pdf.CellFormat(190, 10, quote.Note, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// categoryLabel turns a snake_case category into its printable form, e.g.
// "database_tables" becomes "Database Tables".
func categoryLabel(c pricing.Category) string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if w == "bi" {
			words[i] = "BI"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
