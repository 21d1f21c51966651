package pdfexport

import (
	"bytes"
	"fmt"

	"nutrimed/internal/core/catalog"

	"github.com/go-pdf/fpdf"
)

// DiseaseInfoPDF 產生單一疾病資訊的 PDF
func DiseaseInfoPDF(d catalog.Disease) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	// 標題
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(231, 76, 60)
	pdf.CellFormat(0, 14, d.Name, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeSection(pdf, "Definition", nil, d.Definition, "No definition available.")
	writeSection(pdf, "Symptoms", d.Symptoms, "", "No symptoms information available.")
	writeSection(pdf, "Treatment", d.Treatment, "", "No treatment information available.")
	writeSection(pdf, "Prevention", d.Prevention, "", "No prevention information available.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render disease pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSection 寫出一個段落：items 為清單內容，text 為單段文字；
// 兩者皆空時輸出 fallback
func writeSection(pdf *fpdf.Fpdf, title string, items []string, text, fallback string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(192, 57, 43)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)

	switch {
	case text != "":
		pdf.MultiCell(0, 6, text, "", "L", false)
	case len(items) > 0:
		for _, item := range items {
			pdf.CellFormat(0, 6, "- "+item, "", 1, "L", false, 0, "")
		}
	default:
		pdf.CellFormat(0, 6, fallback, "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
}
