package costbasis

import "github.com/gguidi/costbasis/date"

// GBP is a helper for tests to create home-currency money from const
func GBP(v float64) Money { return M(v, HomeCurrency) }

// USD is a helper for tests to create foreign-currency money from const
func USD(v float64) Money { return M(v, ForeignCurrency) }

// day is a helper for tests to create a date from an ISO string
func day(s string) date.Date { return date.MustParse(s) }

// acquire builds an Acquire event; granted and withheld default to the
// issued count and zero, which is all most tests need.
func acquire(on string, units, priceForeign, rate float64) Event {
	return Event{
		Kind:         Acquire,
		Date:         day(on),
		Units:        Q(units),
		PriceForeign: USD(priceForeign),
		FxRate:       Q(rate),
		Granted:      Q(units),
	}
}

func dispose(on string, units, priceForeign, rate float64) Event {
	return Event{
		Kind:         Dispose,
		Date:         day(on),
		Units:        Q(units),
		PriceForeign: USD(priceForeign),
		FxRate:       Q(rate),
	}
}
