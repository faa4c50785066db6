package costbasis

import (
	"fmt"
	"strings"

	"github.com/gguidi/costbasis/date"
	"github.com/shopspring/decimal"
)

// Release is an acquisition record as produced by the release-confirmation
// extraction stage. The schema is fixed and already clean; the engine only
// trusts this shape and never parses the underlying documents.
type Release struct {
	Date         date.Date
	Granted      Quantity // gross award
	Withheld     Quantity // shares withheld for tax at vesting
	Issued       Quantity // shares actually delivered, net of withholding
	PriceForeign Money    // market price per share at release
}

// RecordSet is a raw tabular export: a header and its rows, uninterpreted.
// Disposal exports arrive in whatever schema the broker produced; resolving
// their columns is the normalizer's job and happens nowhere else.
type RecordSet struct {
	Columns []string
	Rows    [][]string
}

// Ranked aliases for each canonical disposal field. An exact
// (case-insensitive) match on an earlier alias beats any later one;
// containment matching is the fallback.
var (
	dateAliases   = []string{"date", "sale date", "transaction date"}
	sharesAliases = []string{"shares", "quantity", "units", "issued", "shares sold", "qty"}
	priceAliases  = []string{"price per share ($)", "priceusd", "price", "sale price", "sale price ($)"}
)

// resolveColumn finds the column denoting a canonical field: first by exact
// case-insensitive match in alias priority order, then by substring
// containment in column order.
func resolveColumn(columns, aliases []string) (int, bool) {
	for _, alias := range aliases {
		for i, c := range columns {
			if strings.EqualFold(strings.TrimSpace(c), alias) {
				return i, true
			}
		}
	}
	for i, c := range columns {
		cl := strings.ToLower(c)
		for _, alias := range aliases {
			if strings.Contains(cl, alias) {
				return i, true
			}
		}
	}
	return 0, false
}

// NormalizeAcquisitions maps releases to Acquire events, stamping each with
// the exchange rate valid on its date. A date not covered by the table
// aborts normalization with the *MissingRateError, it is never skipped.
func NormalizeAcquisitions(releases []Release, rates *FxRateTable) ([]Event, error) {
	events := make([]Event, 0, len(releases))
	for _, rel := range releases {
		if !rel.Issued.IsPositive() {
			return nil, fmt.Errorf("release on %s: issued share count must be positive, got %s", rel.Date, rel.Issued)
		}
		if !rel.PriceForeign.IsPositive() {
			return nil, fmt.Errorf("release on %s: price per share must be positive, got %s", rel.Date, rel.PriceForeign.StringFixed(4))
		}
		rate, err := rates.Lookup(rel.Date)
		if err != nil {
			return nil, err
		}
		events = append(events, Event{
			Kind:         Acquire,
			Date:         rel.Date,
			Units:        rel.Issued,
			PriceForeign: rel.PriceForeign,
			FxRate:       rate,
			Granted:      rel.Granted,
			Withheld:     rel.Withheld,
		})
	}
	return events, nil
}

// NormalizeDisposals resolves which columns of a free-form export denote the
// date, the share count and the per-share price, then maps every row to a
// Dispose event stamped with its exchange rate.
//
// An unresolvable field yields a *SchemaError carrying the full column list;
// no default column is ever guessed.
func NormalizeDisposals(records RecordSet, rates *FxRateTable) ([]Event, error) {
	dateCol, ok := resolveColumn(records.Columns, dateAliases)
	if !ok {
		return nil, &SchemaError{Field: "date", Columns: records.Columns}
	}
	sharesCol, ok := resolveColumn(records.Columns, sharesAliases)
	if !ok {
		return nil, &SchemaError{Field: "shares", Columns: records.Columns}
	}
	priceCol, ok := resolveColumn(records.Columns, priceAliases)
	if !ok {
		return nil, &SchemaError{Field: "price", Columns: records.Columns}
	}

	events := make([]Event, 0, len(records.Rows))
	for _, row := range records.Rows {
		d, err := date.Parse(row[dateCol])
		if err != nil {
			return nil, err
		}
		units, err := ParseQuantity(strings.TrimSpace(row[sharesCol]))
		if err != nil {
			return nil, fmt.Errorf("disposal on %s: invalid share count %q: %w", d, row[sharesCol], err)
		}
		if !units.IsPositive() {
			return nil, fmt.Errorf("disposal on %s: share count must be positive, got %s", d, units)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[priceCol]))
		if err != nil {
			return nil, fmt.Errorf("disposal on %s: invalid price %q: %w", d, row[priceCol], err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("disposal on %s: price per share must be positive, got %s", d, price)
		}
		rate, err := rates.Lookup(d)
		if err != nil {
			return nil, err
		}
		events = append(events, Event{
			Kind:         Dispose,
			Date:         d,
			Units:        units,
			PriceForeign: M(price, ForeignCurrency),
			FxRate:       rate,
		})
	}
	return events, nil
}
