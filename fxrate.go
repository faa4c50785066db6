package costbasis

import (
	"sort"

	"github.com/gguidi/costbasis/date"
)

// FxRange maps an inclusive date range to a conversion rate, expressed as
// foreign currency units per one home currency unit.
type FxRange struct {
	From date.Date
	To   date.Date
	Rate Quantity
}

// Covers reports whether d falls within the range, both ends inclusive.
func (r FxRange) Covers(d date.Date) bool {
	return !r.From.After(d) && !r.To.Before(d)
}

// FxRateTable answers point lookups over a set of dated rate ranges.
//
// Ranges are not validated at construction: the schedule source is expected
// to supply at most one range per date. When ranges do overlap, the first
// range supplied at construction wins. That is an explicit policy, not an
// accident of ordering; whether overlap should instead be rejected outright
// is recorded as an open question in DESIGN.md.
type FxRateTable struct {
	entries []fxEntry
	// maxTo[i] is the running maximum of entries[:i+1].To, so a lookup can
	// stop scanning backwards as soon as no earlier range can reach it.
	maxTo []date.Date
}

type fxEntry struct {
	FxRange
	seq int // construction order; the lowest covering seq wins
}

// NewFxRateTable builds a table from ranges in any order. Lookups cost
// O(log n) via binary search over the starts, so the per-event lookups of a
// large timeline stay cheap.
func NewFxRateTable(ranges []FxRange) *FxRateTable {
	entries := make([]fxEntry, len(ranges))
	for i, r := range ranges {
		entries[i] = fxEntry{FxRange: r, seq: i}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].From.Before(entries[j].From)
	})
	maxTo := make([]date.Date, len(entries))
	for i, e := range entries {
		maxTo[i] = e.To
		if i > 0 && maxTo[i-1].After(e.To) {
			maxTo[i] = maxTo[i-1]
		}
	}
	return &FxRateTable{entries: entries, maxTo: maxTo}
}

// Lookup returns the conversion rate valid on d, or a *MissingRateError when
// no range covers d.
func (t *FxRateTable) Lookup(d date.Date) (Quantity, error) {
	// hi is the first entry starting strictly after d; only entries before
	// it can cover d.
	hi := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].From.After(d) })
	best := -1
	for i := hi - 1; i >= 0; i-- {
		if t.maxTo[i].Before(d) {
			break
		}
		if t.entries[i].Covers(d) && (best < 0 || t.entries[i].seq < t.entries[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return Quantity{}, &MissingRateError{Date: d}
	}
	return t.entries[best].Rate, nil
}
