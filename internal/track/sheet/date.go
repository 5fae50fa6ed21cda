package sheet

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// excelEpochOffset is the spreadsheet serial of 1970-01-01 in the 1900 date
// system: (serial - 25569) * 86400 gives Unix seconds.
const excelEpochOffset = 25569

// DisplayLayout is the canonical date rendering for the whole system.
const DisplayLayout = "02.01.2006"

// String date layouts accepted beyond the canonical one, tried in order.
// Slash dates are ambiguous; day-first wins, month-first only catches values
// the day-first layout rejects (day > 12).
var dateLayouts = []string{
	DisplayLayout,
	"2.1.2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01/02/2006",
}

// DateValue is the outcome of normalizing one raw date cell. Valid is false
// for unparseable input; the caller then falls back to a literal
// days-remaining number if the sheet carries one, else zero.
type DateValue struct {
	Valid         bool
	Year          int
	Month         time.Month
	Day           int
	Display       string // DD.MM.YYYY
	DaysRemaining int
}

// ParseDate normalizes a raw cell into a canonical display string and a
// signed days-remaining relative to now. Accepted inputs are spreadsheet
// date serials and the string layouts above. The calendar date is taken
// verbatim from the input (serials are decoded in UTC) so the display string
// never shifts with the host timezone; only the days-remaining computation
// uses now's location.
func ParseDate(raw string, now time.Time) DateValue {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DateValue{}
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		// Anything below the offset predates 1970 and no order book reaches
		// back that far; treat it as a stray number, not a date.
		if serial < excelEpochOffset {
			return DateValue{}
		}
		secs := int64(math.Round((serial - excelEpochOffset) * 86400))
		y, m, d := time.Unix(secs, 0).UTC().Date()
		return newDateValue(y, m, d, now)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			y, m, d := t.Date()
			return newDateValue(y, m, d, now)
		}
	}
	return DateValue{}
}

func newDateValue(y int, m time.Month, d int, now time.Time) DateValue {
	target := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return DateValue{
		Valid:         true,
		Year:          y,
		Month:         m,
		Day:           d,
		Display:       target.Format(DisplayLayout),
		DaysRemaining: daysBetween(now, target),
	}
}

// daysBetween returns the signed whole days from now to target. Both operands
// are snapped to local midnight first and the difference is rounded, not
// ceiled: DST transitions make some days 23 or 25 hours long and a ceiling
// would drift off by one.
func daysBetween(now, target time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	b := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(b.Sub(a).Hours() / 24))
}
