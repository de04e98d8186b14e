package domain

// DisplayPeriods caps how many cash-flow rows the dashboard table shows.
// Totals and cumulative balances always cover the full series; only the
// row slice is windowed.
const DisplayPeriods = 12

// CashFlowRow is one period of the tabular cash-flow view.
type CashFlowRow struct {
	Period     int     `json:"period"`
	Flow       float64 `json:"flow"`
	Cumulative float64 `json:"cumulative"`
}

// CashFlowSummary aggregates a signed periodic cash-flow series.
type CashFlowSummary struct {
	TotalInvestment float64       `json:"total_investment"`
	TotalRevenue    float64       `json:"total_revenue"`
	NetTotal        float64       `json:"net_total"`
	Cumulative      []float64     `json:"cumulative"`
	Rows            []CashFlowRow `json:"rows"`
	PeriodCount     int           `json:"period_count"`
}

// SummarizeCashFlows derives investment and revenue totals and the running
// cumulative balance from a flat series of signed flows.
//
// TotalInvestment is the sum of magnitudes of negative entries and
// TotalRevenue the sum of positive entries, both over the entire series.
// Rows holds at most DisplayPeriods entries; the totals intentionally keep
// covering periods the table does not show.
func SummarizeCashFlows(flows []float64) CashFlowSummary {
	s := CashFlowSummary{
		Cumulative:  make([]float64, len(flows)),
		PeriodCount: len(flows),
	}

	running := 0.0
	for i, f := range flows {
		if f < 0 {
			s.TotalInvestment += -f
		} else {
			s.TotalRevenue += f
		}
		running += f
		s.Cumulative[i] = running
	}
	s.NetTotal = running

	n := len(flows)
	if n > DisplayPeriods {
		n = DisplayPeriods
	}
	s.Rows = make([]CashFlowRow, n)
	for i := 0; i < n; i++ {
		s.Rows[i] = CashFlowRow{
			Period:     i,
			Flow:       flows[i],
			Cumulative: s.Cumulative[i],
		}
	}

	return s
}
