package costbasis

import "github.com/gguidi/costbasis/date"

// The pool tracks one security acquired in US dollars and taxed in pounds
// sterling. Tracking several currency pairs is out of scope.
const (
	HomeCurrency    = "GBP"
	ForeignCurrency = "USD"
)

// EventKind distinguishes the two transitions of the pool.
type EventKind int

const (
	// Acquire adds vested shares and their allowable cost to the pool.
	Acquire EventKind = iota
	// Dispose removes shares and realizes a gain or loss.
	Dispose
)

func (k EventKind) String() string {
	switch k {
	case Acquire:
		return "Acquire"
	case Dispose:
		return "Dispose"
	default:
		return "unknown"
	}
}

// Event is one acquisition or disposal, normalized from whatever record
// shape it arrived in. Events are ordered by date only.
type Event struct {
	Kind EventKind
	Date date.Date

	// Units is the share count the pool transition acts on: shares delivered
	// for an acquisition, shares sold for a disposal. Always positive.
	Units Quantity

	// PriceForeign is the per-share market price at the event, in the
	// foreign currency.
	PriceForeign Money

	// FxRate is the conversion rate valid on Date, expressed as foreign
	// currency units per one home currency unit.
	FxRate Quantity

	// Granted and Withheld describe the vesting (gross award and the part
	// withheld for tax). Reporting only, zero for disposals.
	Granted  Quantity
	Withheld Quantity
}

// PriceHome is the per-share price converted to the home currency at the
// event's historical rate.
func (e Event) PriceHome() Money {
	return e.PriceForeign.Convert(e.FxRate, HomeCurrency)
}
