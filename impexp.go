package costbasis

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gguidi/costbasis/date"
	"github.com/shopspring/decimal"
)

// this file contains the decoding of the three interchange files: the
// releases CSV written by the confirmation-extraction stage, the free-form
// sales CSV exported from a broker, and the exchange-rate schedule CSV
// assembled from the monthly HMRC files.

// Column labels of the canonical interchange files.
const (
	dateLabel        = "Date"
	releaseDateLabel = "Release Date"
	grantedLabel     = "Granted"
	withheldLabel    = "Withheld"
	soldLabel        = "Sold"
	issuedLabel      = "Issued"
	priceLabel       = "Price per share ($)"
	startDateLabel   = "Start Date"
	endDateLabel     = "End Date"
	rateLabel        = "Currency units per £1"
)

// headerIndex maps trimmed column names to their position.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, c := range header {
		index[strings.TrimSpace(c)] = i
	}
	return index
}

// DecodeReleases reads the releases CSV. The date column may be named
// "Date" or "Release Date", and the withheld column "Withheld" or "Sold"
// (older exports used the latter); dates are year-first with slashes
// tolerated.
func DecodeReleases(r io.Reader) ([]Release, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read releases CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("releases CSV is empty")
	}
	index := headerIndex(rows[0])

	dateCol, ok := index[dateLabel]
	if !ok {
		if dateCol, ok = index[releaseDateLabel]; !ok {
			return nil, fmt.Errorf("releases CSV must include a %q or %q column", dateLabel, releaseDateLabel)
		}
	}
	withheldCol, ok := index[withheldLabel]
	if !ok {
		if withheldCol, ok = index[soldLabel]; !ok {
			return nil, fmt.Errorf("releases CSV must include a %q or %q column", withheldLabel, soldLabel)
		}
	}
	grantedCol, ok := index[grantedLabel]
	if !ok {
		return nil, fmt.Errorf("releases CSV missing required column: %q", grantedLabel)
	}
	issuedCol, ok := index[issuedLabel]
	if !ok {
		return nil, fmt.Errorf("releases CSV missing required column: %q", issuedLabel)
	}
	priceCol, ok := index[priceLabel]
	if !ok {
		return nil, fmt.Errorf("releases CSV missing required column: %q", priceLabel)
	}

	releases := make([]Release, 0, len(rows)-1)
	for _, row := range rows[1:] {
		d, err := date.Parse(row[dateCol])
		if err != nil {
			return nil, err
		}
		granted, err := parseQuantityField(grantedLabel, row[grantedCol])
		if err != nil {
			return nil, err
		}
		withheld, err := parseQuantityField(withheldLabel, row[withheldCol])
		if err != nil {
			return nil, err
		}
		issued, err := parseQuantityField(issuedLabel, row[issuedCol])
		if err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[priceCol]))
		if err != nil {
			return nil, fmt.Errorf("invalid %q value %q: %w", priceLabel, row[priceCol], err)
		}
		releases = append(releases, Release{
			Date:         d,
			Granted:      granted,
			Withheld:     withheld,
			Issued:       issued,
			PriceForeign: M(price, ForeignCurrency),
		})
	}
	return releases, nil
}

func parseQuantityField(label, value string) (Quantity, error) {
	q, err := ParseQuantity(strings.TrimSpace(value))
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid %q value %q: %w", label, value, err)
	}
	return q, nil
}

// DecodeDisposals reads a free-form sales CSV into an uninterpreted
// RecordSet. Column meaning is resolved later by [NormalizeDisposals], the
// only place allowed to interpret a disposal export.
func DecodeDisposals(r io.Reader) (RecordSet, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return RecordSet{}, fmt.Errorf("cannot read sales CSV: %w", err)
	}
	if len(rows) == 0 {
		return RecordSet{}, fmt.Errorf("sales CSV is empty")
	}
	columns := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		columns[i] = strings.TrimSpace(c)
	}
	return RecordSet{Columns: columns, Rows: rows[1:]}, nil
}

// DecodeFxSchedule reads the exchange-rate schedule CSV: inclusive Start
// Date / End Date columns in day-first format plus the rate column. The rate
// column is matched by containment because the pound sign in its label
// survives several encodings poorly.
func DecodeFxSchedule(r io.Reader) ([]FxRange, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read exchange rates CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("exchange rates CSV is empty")
	}
	index := headerIndex(rows[0])
	startCol, ok := index[startDateLabel]
	if !ok {
		return nil, fmt.Errorf("exchange rates CSV missing required column: %q", startDateLabel)
	}
	endCol, ok := index[endDateLabel]
	if !ok {
		return nil, fmt.Errorf("exchange rates CSV missing required column: %q", endDateLabel)
	}
	rateCol := -1
	for i, c := range rows[0] {
		if strings.Contains(strings.ToLower(c), "currency units per") {
			rateCol = i
			break
		}
	}
	if rateCol < 0 {
		return nil, fmt.Errorf("exchange rates CSV missing required column: %q", rateLabel)
	}

	ranges := make([]FxRange, 0, len(rows)-1)
	for _, row := range rows[1:] {
		from, err := date.ParseDMY(row[startCol])
		if err != nil {
			return nil, err
		}
		to, err := date.ParseDMY(row[endCol])
		if err != nil {
			return nil, err
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(row[rateCol]))
		if err != nil {
			return nil, fmt.Errorf("invalid exchange rate %q: %w", row[rateCol], err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("exchange rate must be positive, got %s for %s..%s", rate, from, to)
		}
		ranges = append(ranges, FxRange{From: from, To: to, Rate: Q(rate)})
	}
	return ranges, nil
}

// ExtractUSDRange pulls the USD row out of one raw monthly HMRC
// exchange-rate file and returns it as a dated range. The files are
// ISO-8859-1 encoded, but the marker and the fields needed here are plain
// ASCII, so the scan is byte-oriented.
func ExtractUSDRange(r io.Reader) (FxRange, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.Contains(line, "USA,Dollar,USD") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 6 {
			return FxRange{}, fmt.Errorf("malformed USD row: %q", line)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
		if err != nil {
			return FxRange{}, fmt.Errorf("invalid USD rate %q: %w", fields[3], err)
		}
		from, err := date.ParseDMY(fields[4])
		if err != nil {
			return FxRange{}, err
		}
		to, err := date.ParseDMY(fields[5])
		if err != nil {
			return FxRange{}, err
		}
		return FxRange{From: from, To: to, Rate: Q(rate)}, nil
	}
	if err := scanner.Err(); err != nil {
		return FxRange{}, fmt.Errorf("cannot read exchange rate file: %w", err)
	}
	return FxRange{}, fmt.Errorf("no USD entry found")
}

// EncodeFxSchedule writes ranges in the schedule format consumed by
// [DecodeFxSchedule].
func EncodeFxSchedule(w io.Writer, ranges []FxRange) error {
	cw := csv.NewWriter(w)
	header := []string{"Country/Territories", "Currency", "Currency code", rateLabel, startDateLabel, endDateLabel}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write exchange rate schedule: %w", err)
	}
	for _, r := range ranges {
		row := []string{"USA", "Dollar", "USD", r.Rate.String(), r.From.Format(date.DMYFormat), r.To.Format(date.DMYFormat)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write exchange rate schedule: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
