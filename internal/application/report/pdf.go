package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const pdfContentType = "application/pdf"

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a money value with thousands separators and two decimals
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return amountPrinter.Sprintf("%.2f", f)
}

// RenderPDF lays out a one-page summary
func RenderPDF(s *Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Stock ledger summary", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Stock ledger summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s",
		s.From.Format("2006-01-02 15:04"), s.To.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := [][3]string{
		{"Sales", amountPrinter.Sprintf("%d", s.SalesCount), FormatAmount(s.SalesTotal)},
		{"Purchases", amountPrinter.Sprintf("%d", s.PurchasesCount), FormatAmount(s.PurchasesTotal)},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 8, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Count", "1", 0, "R", true, 0, "")
	pdf.CellFormat(60, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, r := range rows {
		pdf.CellFormat(70, 8, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, r[1], "1", 0, "R", false, 0, "")
		pdf.CellFormat(60, 8, r[2], "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "Gross", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, FormatAmount(s.Gross), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
