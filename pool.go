package costbasis

// Pool is the Section 104 holding: the number of shares currently held and
// their pooled allowable cost in the home currency. The zero-ish empty pool
// starts every run; nothing persists between runs.
type Pool struct {
	Units Quantity
	Cost  Money
}

// Row is one line of the gains report: the event annotated with the pool
// state after it and, for disposals, the realized gain or loss.
type Row struct {
	Event
	Pool Pool  // pool state after the event
	Gain Money // realized gain or loss in the home currency; disposals only
}

// GainsReport is the fully annotated timeline plus the final pool state.
type GainsReport struct {
	Rows  []Row
	Final Pool
}

// TotalRealized sums the realized gains and losses of all disposals.
func (r *GainsReport) TotalRealized() Money {
	total := M(0, HomeCurrency)
	for _, row := range r.Rows {
		if row.Kind == Dispose {
			total = total.Add(row.Gain)
		}
	}
	return total
}

// ComputeGains folds the ordered event sequence through a single pool
// accumulator and emits one row per event.
//
// On an acquisition the allowable expenditure on the new shares joins the
// pool of cost and the share count grows. On a disposal, following the
// Section 104 rules:
//
//  1. the allowable cost is the pool of cost times the fraction of pooled
//     shares being sold,
//  2. the gain is the disposal proceeds minus that allowable cost,
//  3. the holding is adjusted by removing the sold shares and their
//     allowable cost.
//
// A disposal of more shares than the pool holds aborts the whole run with an
// *OversellError; no rows are returned. Arithmetic is exact decimal, with
// rounding left entirely to the output formatting.
func ComputeGains(events []Event) (*GainsReport, error) {
	pool := Pool{Units: Q(0), Cost: M(0, HomeCurrency)}
	rows := make([]Row, 0, len(events))
	for i, ev := range events {
		priceHome := ev.PriceHome()
		row := Row{Event: ev}
		switch ev.Kind {
		case Acquire:
			pool.Cost = pool.Cost.Add(priceHome.Mul(ev.Units))
			pool.Units = pool.Units.Add(ev.Units)
		case Dispose:
			// Checked before dividing: the held count is the divisor below.
			if ev.Units.GreaterThan(pool.Units) {
				return nil, &OversellError{Index: i, Date: ev.Date, Units: ev.Units, Held: pool.Units}
			}
			allowableCost := pool.Cost.Mul(ev.Units).Div(pool.Units)
			proceeds := priceHome.Mul(ev.Units)
			row.Gain = proceeds.Sub(allowableCost)
			pool.Units = pool.Units.Sub(ev.Units)
			pool.Cost = pool.Cost.Sub(allowableCost)
		}
		row.Pool = pool
		rows = append(rows, row)
	}
	return &GainsReport{Rows: rows, Final: pool}, nil
}
