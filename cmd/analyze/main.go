// Command analyze runs a valuation or risk analysis from an input file
// and prints the results, optionally writing HTML and PDF reports.
//
// Input files are JSON, sloppy JSON or Hjson matching the
// analysis.ValuationInputs / analysis.RiskInputs schemas.
package main

import (
	"flag"
	"fmt"
	"os"

	"findash/pkg/core/analysis"
	"findash/pkg/core/parse"
	"findash/pkg/core/report"
)

func main() {
	mode := flag.String("mode", "valuation", "Mode: valuation or risk")
	input := flag.String("input", "", "Input file (json or hjson)")
	htmlOut := flag.String("html", "", "Write HTML report to this file")
	pdfOut := flag.String("pdf", "", "Write PDF report to this file")
	seed := flag.Int64("seed", 0, "Monte Carlo seed (risk mode; 0 keeps fresh randomness)")
	flag.Parse()

	if *input == "" {
		fmt.Println("Error: -input is required")
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}

	engine := analysis.NewEngine()

	switch *mode {
	case "valuation":
		runValuation(engine, data, *htmlOut, *pdfOut)
	case "risk":
		runRisk(engine, data, *htmlOut, *pdfOut, *seed)
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

func runValuation(engine *analysis.Engine, data []byte, htmlOut, pdfOut string) {
	var in analysis.ValuationInputs
	if err := parse.Decode(data, &in); err != nil {
		fmt.Printf("Error parsing input: %v\n", err)
		os.Exit(1)
	}

	rep, err := engine.Valuation(in)
	if err != nil {
		fmt.Printf("Valuation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Projected Free Cash Flows")
	fmt.Println("Year        Revenue           EBIT          NOPAT            FCF")
	for _, y := range rep.Projections {
		fmt.Printf("%4d %14.2f %14.2f %14.2f %14.2f\n", y.Year, y.Revenue, y.EBIT, y.NOPAT, y.FCF)
	}
	fmt.Printf("\nEstimated Enterprise Value: %.2f\n", rep.DCF.EnterpriseValue)

	writeReports(htmlOut, pdfOut, "Company Valuation",
		func() string { return report.ValuationMarkdown(in, rep) },
		func() ([]byte, error) { return report.ValuationPDF(in, rep) })
}

func runRisk(engine *analysis.Engine, data []byte, htmlOut, pdfOut string, seed int64) {
	var in analysis.RiskInputs
	if err := parse.Decode(data, &in); err != nil {
		fmt.Printf("Error parsing input: %v\n", err)
		os.Exit(1)
	}
	if seed != 0 && in.MonteCarlo != nil {
		in.MonteCarlo.Seed = &seed
	}

	rep, err := engine.Risk(in)
	if err != nil {
		fmt.Printf("Risk analysis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Base NPV: %.2f\n", rep.BaseNPV)
	if len(rep.Sensitivity) > 0 {
		fmt.Printf("Sensitivity: %d points over [%+d%%, %+d%%]\n",
			len(rep.Sensitivity), rep.Sensitivity[0].ChangePct, rep.Sensitivity[len(rep.Sensitivity)-1].ChangePct)
	}
	for _, row := range rep.Scenarios {
		fmt.Printf("%-10s r=%.4f  NPV %.2f\n", row.Scenario, row.DiscountRate, row.NPV)
	}
	if mc := rep.MonteCarlo; mc != nil {
		fmt.Printf("Monte Carlo (%d runs): mean %.2f  std %.2f  p5 %.2f  p95 %.2f\n",
			mc.Summary.Count, mc.Summary.Mean, mc.Summary.StdDev, mc.Summary.P5, mc.Summary.P95)
	}

	writeReports(htmlOut, pdfOut, "NPV Risk Analysis",
		func() string { return report.RiskMarkdown(in, rep) },
		func() ([]byte, error) { return report.RiskPDF(in, rep) })
}

func writeReports(htmlOut, pdfOut, title string, md func() string, pdf func() ([]byte, error)) {
	if htmlOut != "" {
		html, err := report.RenderHTML(title, md())
		if err != nil {
			fmt.Printf("Error rendering HTML: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(htmlOut, []byte(html), 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", htmlOut, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", htmlOut)
	}
	if pdfOut != "" {
		data, err := pdf()
		if err != nil {
			fmt.Printf("Error rendering PDF: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(pdfOut, data, 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", pdfOut, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", pdfOut)
	}
}
