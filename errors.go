package costbasis

import (
	"fmt"
	"strings"

	"github.com/gguidi/costbasis/date"
)

// The engine never retries, never substitutes a default and never drops an
// event: every error below aborts the whole run.

// SchemaError reports a canonical disposal field that could not be resolved
// against the columns of an input record set.
type SchemaError struct {
	Field   string   // canonical field: "date", "shares" or "price"
	Columns []string // every column actually present in the input
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("cannot resolve %q in disposal records, available columns: %s",
		e.Field, strings.Join(e.Columns, ", "))
}

// MissingRateError reports an event date not covered by any exchange-rate
// range. Without a rate the event cannot be priced in the home currency, so
// there is no interpolation and no default.
type MissingRateError struct {
	Date date.Date
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no exchange rate covers %s", e.Date)
}

// OversellError reports a disposal that would drive the pooled share count
// negative: either an acquisition is missing from the input or a count was
// mistyped.
type OversellError struct {
	Index int // position of the offending event in the timeline
	Date  date.Date
	Units Quantity // units the disposal tried to remove
	Held  Quantity // units pooled just before the disposal
}

func (e *OversellError) Error() string {
	return fmt.Sprintf("disposal of %s units on %s (event %d) exceeds the %s units held",
		e.Units, e.Date, e.Index, e.Held)
}
