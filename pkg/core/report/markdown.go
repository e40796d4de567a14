// Package report renders completed analyses as Markdown, standalone
// HTML and PDF documents.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"findash/pkg/core/analysis"
)

// money formats a value as $1,234,567.89 for report output.
func money(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return sign + "$" + b.String() + frac
}

// ValuationMarkdown renders the projection table and DCF summary.
func ValuationMarkdown(in analysis.ValuationInputs, rep *analysis.ValuationReport) string {
	var b strings.Builder

	b.WriteString("# Company Valuation\n\n")
	b.WriteString("## Assumptions\n\n")
	fmt.Fprintf(&b, "- Initial revenue: %s\n", money(in.Projection.InitialRevenue))
	fmt.Fprintf(&b, "- Revenue growth: %.1f%%\n", in.Projection.GrowthRate*100)
	fmt.Fprintf(&b, "- EBIT margin: %.1f%%\n", in.Projection.EBITMargin*100)
	fmt.Fprintf(&b, "- Tax rate: %.1f%%\n", in.Projection.TaxRate*100)
	fmt.Fprintf(&b, "- CapEx: %.1f%% of revenue\n", in.Projection.CapexPct*100)
	fmt.Fprintf(&b, "- Working-capital change: %.1f%% of revenue\n", in.Projection.WCChangePct*100)
	fmt.Fprintf(&b, "- Depreciation: %s per year\n", money(in.Projection.Depreciation))
	fmt.Fprintf(&b, "- Discount rate: %.2f%%\n", in.DiscountRate*100)
	fmt.Fprintf(&b, "- Terminal growth: %.2f%%\n\n", in.TerminalGrowth*100)

	b.WriteString("## Projected Free Cash Flows\n\n")
	b.WriteString("| Year | Revenue | EBIT | NOPAT | CapEx | WC Change | FCF |\n")
	b.WriteString("|------|---------|------|-------|-------|-----------|-----|\n")
	for _, y := range rep.Projections {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			y.Year, money(y.Revenue), money(y.EBIT), money(y.NOPAT),
			money(y.Capex), money(y.WCChange), money(y.FCF))
	}

	b.WriteString("\n## DCF Valuation\n\n")
	fmt.Fprintf(&b, "- PV of projected FCF: %s\n", money(rep.DCF.PVFCF))
	fmt.Fprintf(&b, "- PV of terminal value: %s\n", money(rep.DCF.PVTerminal))
	fmt.Fprintf(&b, "\n**Estimated Enterprise Value: %s**\n", money(rep.DCF.EnterpriseValue))

	return b.String()
}

// RiskMarkdown renders the base NPV plus whichever sections the report
// carries.
func RiskMarkdown(in analysis.RiskInputs, rep *analysis.RiskReport) string {
	var b strings.Builder

	b.WriteString("# NPV Risk Analysis\n\n")
	fmt.Fprintf(&b, "Base discount rate: %.2f%% over %d cash flows.\n\n", in.BaseDiscountRate*100, len(in.FCFF))
	fmt.Fprintf(&b, "**Base NPV: %s**\n", money(rep.BaseNPV))

	if len(rep.Sensitivity) > 0 {
		b.WriteString("\n## Sensitivity Analysis\n\n")
		b.WriteString("| Change (%) | NPV |\n|------------|-----|\n")
		for _, p := range rep.Sensitivity {
			fmt.Fprintf(&b, "| %+d | %s |\n", p.ChangePct, money(p.NPV))
		}
	}

	if len(rep.Scenarios) > 0 {
		b.WriteString("\n## Scenario Analysis\n\n")
		b.WriteString("| Scenario | Discount Rate | NPV |\n|----------|---------------|-----|\n")
		for _, row := range rep.Scenarios {
			fmt.Fprintf(&b, "| %s | %.2f%% | %s |\n", row.Scenario, row.DiscountRate*100, money(row.NPV))
		}
	}

	if mc := rep.MonteCarlo; mc != nil {
		b.WriteString("\n## Monte Carlo Simulation\n\n")
		fmt.Fprintf(&b, "- Simulations: %d\n", mc.Summary.Count)
		fmt.Fprintf(&b, "- Mean NPV: %s\n", money(mc.Summary.Mean))
		fmt.Fprintf(&b, "- Standard deviation: %s\n", money(mc.Summary.StdDev))
		fmt.Fprintf(&b, "- 5th percentile: %s\n", money(mc.Summary.P5))
		fmt.Fprintf(&b, "- 95th percentile: %s\n", money(mc.Summary.P95))
	}

	return b.String()
}

// RenderHTML converts report Markdown to a standalone HTML page. Tables
// require the GFM extension; plain goldmark leaves them as text.
func RenderHTML(title, markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", title)
	page.WriteString("<style>body{font-family:sans-serif;max-width:60em;margin:2em auto}table{border-collapse:collapse}td,th{border:1px solid #999;padding:4px 8px;text-align:right}th{background:#eee}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	return page.String(), nil
}
