package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"findash/pkg/core/analysis"
)

func newPDF(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	return pdf
}

func pdfHeading(pdf *fpdf.Fpdf, text string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
}

func pdfLine(pdf *fpdf.Fpdf, format string, args ...interface{}) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf(format, args...), "", 1, "L", false, 0, "")
}

func pdfTableHeader(pdf *fpdf.Fpdf, widths []float64, cols []string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func pdfTableRow(pdf *fpdf.Fpdf, widths []float64, cells []string) {
	pdf.SetFont("Helvetica", "", 9)
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}

// ValuationPDF renders the valuation report as a one-page PDF.
func ValuationPDF(in analysis.ValuationInputs, rep *analysis.ValuationReport) ([]byte, error) {
	pdf := newPDF("Company Valuation")

	pdfHeading(pdf, "Assumptions")
	pdfLine(pdf, "Initial revenue %s, growth %.1f%%, EBIT margin %.1f%%, tax %.1f%%",
		money(in.Projection.InitialRevenue), in.Projection.GrowthRate*100,
		in.Projection.EBITMargin*100, in.Projection.TaxRate*100)
	pdfLine(pdf, "CapEx %.1f%% of revenue, WC change %.1f%%, depreciation %s",
		in.Projection.CapexPct*100, in.Projection.WCChangePct*100, money(in.Projection.Depreciation))
	pdfLine(pdf, "Discount rate %.2f%%, terminal growth %.2f%%",
		in.DiscountRate*100, in.TerminalGrowth*100)

	pdfHeading(pdf, "Projected Free Cash Flows")
	widths := []float64{12, 28, 28, 28, 26, 26, 28}
	pdfTableHeader(pdf, widths, []string{"Year", "Revenue", "EBIT", "NOPAT", "CapEx", "WC Change", "FCF"})
	for _, y := range rep.Projections {
		pdfTableRow(pdf, widths, []string{
			fmt.Sprintf("%d", y.Year), money(y.Revenue), money(y.EBIT),
			money(y.NOPAT), money(y.Capex), money(y.WCChange), money(y.FCF),
		})
	}

	pdfHeading(pdf, "DCF Valuation")
	pdfLine(pdf, "PV of projected FCF: %s", money(rep.DCF.PVFCF))
	pdfLine(pdf, "PV of terminal value: %s", money(rep.DCF.PVTerminal))
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Estimated Enterprise Value: %s", money(rep.DCF.EnterpriseValue)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RiskPDF renders the risk report as a PDF, one section per analysis.
func RiskPDF(in analysis.RiskInputs, rep *analysis.RiskReport) ([]byte, error) {
	pdf := newPDF("NPV Risk Analysis")

	pdfLine(pdf, "Base discount rate %.2f%% over %d cash flows", in.BaseDiscountRate*100, len(in.FCFF))
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Base NPV: %s", money(rep.BaseNPV)), "", 1, "L", false, 0, "")

	if len(rep.Sensitivity) > 0 {
		pdfHeading(pdf, "Sensitivity Analysis")
		widths := []float64{30, 50}
		pdfTableHeader(pdf, widths, []string{"Change (%)", "NPV"})
		for _, p := range rep.Sensitivity {
			pdfTableRow(pdf, widths, []string{fmt.Sprintf("%+d", p.ChangePct), money(p.NPV)})
		}
	}

	if len(rep.Scenarios) > 0 {
		pdfHeading(pdf, "Scenario Analysis")
		widths := []float64{40, 40, 50}
		pdfTableHeader(pdf, widths, []string{"Scenario", "Discount Rate", "NPV"})
		for _, row := range rep.Scenarios {
			pdfTableRow(pdf, widths, []string{row.Scenario, fmt.Sprintf("%.2f%%", row.DiscountRate*100), money(row.NPV)})
		}
	}

	if mc := rep.MonteCarlo; mc != nil {
		pdfHeading(pdf, "Monte Carlo Simulation")
		pdfLine(pdf, "Simulations: %d", mc.Summary.Count)
		pdfLine(pdf, "Mean NPV: %s", money(mc.Summary.Mean))
		pdfLine(pdf, "Standard deviation: %s", money(mc.Summary.StdDev))
		pdfLine(pdf, "5th percentile: %s", money(mc.Summary.P5))
		pdfLine(pdf, "95th percentile: %s", money(mc.Summary.P95))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
