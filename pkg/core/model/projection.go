// Package model provides the deterministic financial calculations behind
// the valuation and risk dashboards: five-year free-cash-flow projection,
// DCF enterprise valuation, NPV discounting and Monte Carlo NPV sampling.
//
// Every function here is pure arithmetic over float64 inputs. The model
// performs no range validation: negative growth, margins above 100% or
// other implausible assumptions are accepted and produce the
// correspondingly implausible outputs. Bounds are a presentation concern.
package model

// ProjectionHorizon is the fixed number of years projected by
// ProjectFinancials.
const ProjectionHorizon = 5

// ProjectionInput holds the operating assumptions for a five-year
// free-cash-flow projection.
type ProjectionInput struct {
	InitialRevenue float64 `json:"initial_revenue"` // Revenue in the year before projection starts
	GrowthRate     float64 `json:"growth_rate"`     // Annual revenue growth, e.g. 0.10
	EBITMargin     float64 `json:"ebit_margin"`     // EBIT as a fraction of revenue
	TaxRate        float64 `json:"tax_rate"`        // Corporate tax rate applied to EBIT
	CapexPct       float64 `json:"capex_pct"`       // CapEx as a fraction of revenue
	WCChangePct    float64 `json:"wc_change_pct"`   // Working-capital change as a fraction of revenue
	Depreciation   float64 `json:"depreciation"`    // Constant annual depreciation add-back
}

// ProjectionYear is one row of the projection table. Rows are produced
// once and never mutated.
type ProjectionYear struct {
	Year     int     `json:"year"` // 1..ProjectionHorizon
	Revenue  float64 `json:"revenue"`
	EBIT     float64 `json:"ebit"`
	NOPAT    float64 `json:"nopat"`
	Capex    float64 `json:"capex"`
	WCChange float64 `json:"wc_change"`
	FCF      float64 `json:"fcf"`
}

// ProjectFinancials builds the five-year projection schedule.
//
// Revenue compounds forward each year:
//
//	Revenue_t = Revenue_{t-1} × (1 + g)
//
// and each year derives:
//
//	EBIT   = Revenue × margin
//	NOPAT  = EBIT × (1 - tax)
//	CapEx  = Revenue × capexPct
//	ΔWC    = Revenue × wcChangePct
//	FCF    = NOPAT + Depreciation - CapEx - ΔWC
//
// The function always succeeds for finite inputs.
func ProjectFinancials(in ProjectionInput) []ProjectionYear {
	years := make([]ProjectionYear, 0, ProjectionHorizon)

	revenue := in.InitialRevenue
	for year := 1; year <= ProjectionHorizon; year++ {
		revenue *= 1 + in.GrowthRate

		ebit := revenue * in.EBITMargin
		nopat := ebit * (1 - in.TaxRate)
		capex := revenue * in.CapexPct
		wcChange := revenue * in.WCChangePct
		fcf := nopat + in.Depreciation - capex - wcChange

		years = append(years, ProjectionYear{
			Year:     year,
			Revenue:  revenue,
			EBIT:     ebit,
			NOPAT:    nopat,
			Capex:    capex,
			WCChange: wcChange,
			FCF:      fcf,
		})
	}

	return years
}

// FreeCashFlows extracts the FCF column from a projection schedule, in
// year order, for handoff to the DCF valuation.
func FreeCashFlows(years []ProjectionYear) []float64 {
	flows := make([]float64, len(years))
	for i, y := range years {
		flows[i] = y.FCF
	}
	return flows
}
