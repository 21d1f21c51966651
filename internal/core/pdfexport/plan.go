// Package pdfexport 將週計畫與疾病資料輸出為 PDF
package pdfexport

import (
	"bytes"
	"fmt"

	"nutrimed/internal/core/diet"

	"github.com/go-pdf/fpdf"
)

// WeeklyPlanPDF 產生一週飲食與作息計畫的 PDF
func WeeklyPlanPDF(plan *diet.WeeklyPlan) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	// 標題
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 14, "Weekly Diet & Routine Plan", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// 摘要
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, fmt.Sprintf("Daily Calorie Requirement: %d kcal", plan.Calories), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("BMI: %.1f (%s)", plan.BMI.Value, plan.BMI.Category), "", 1, "L", false, 0, "")

	// 每天一頁
	for _, day := range plan.Days {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(52, 73, 94)
		pdf.CellFormat(0, 10, day.Day, "", 1, "L", false, 0, "")
		pdf.Ln(2)

		writeMealTable(pdf, day.Meals)

		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 7, "Daily Routine:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, tip := range day.Routine {
			pdf.CellFormat(0, 6, "- "+tip, "", 1, "L", false, 0, "")
		}

		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("Total Calories: %d kcal", day.TotalCalories), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render weekly plan pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeMealTable 畫出 Meal/Dish/Calories 表格
func writeMealTable(pdf *fpdf.Fpdf, meals []diet.Meal) {
	colWidths := []float64{38, 95, 38}

	// 表頭
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(52, 152, 219)
	pdf.SetTextColor(255, 255, 255)
	headers := []string{"Meal", "Dish", "Calories"}
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// 資料列
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, m := range meals {
		pdf.CellFormat(colWidths[0], 8, m.Slot, "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[1], 8, m.Dish, "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%d kcal", m.Calories), "1", 0, "L", true, 0, "")
		pdf.Ln(-1)
	}
}
