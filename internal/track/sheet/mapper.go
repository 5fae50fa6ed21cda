package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
	"github.com/alterians/Lojistik-Asistan/internal/track/risk"
)

// MapResult carries the mapped order lines plus data-quality counters the
// caller may log or surface. Dropped rows are footer/summary artifacts or
// parsing failures, not real order lines.
type MapResult struct {
	Lines       []entity.OrderLine
	Dropped     int
	BadDates    int // date cells that did not parse and fell back
	HeaderRow   int
	MissingCols []Field
}

// MapRows turns a raw grid into order lines. Header resolution, date
// normalization and classification are applied per row; rows below the
// header with a blank or "undefined" order number, or whose supplier name
// resolves to the unknown-supplier sentinel, are dropped. Both conditions
// disqualify independently.
func MapRows(grid [][]string, threshold int, now time.Time) MapResult {
	cols := ResolveColumns(grid)
	res := MapResult{HeaderRow: cols.HeaderRow}
	for f, idx := range cols.Columns {
		if idx == ColumnNotFound {
			res.MissingCols = append(res.MissingCols, f)
		}
	}
	if len(grid) == 0 {
		return res
	}

	for i := cols.HeaderRow + 1; i < len(grid); i++ {
		row := grid[i]
		get := func(f Field) string {
			idx := cols.Col(f)
			if idx == ColumnNotFound || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		if isBlankRow(row) {
			continue
		}

		orderNo := get(FieldOrderNo)
		if orderNo == "" || orderNo == "undefined" {
			res.Dropped++
			continue
		}

		code := get(FieldSupplierCode)
		name := resolveSupplierName(get(FieldSupplierName), code)
		if name == entity.UnknownSupplier {
			res.Dropped++
			continue
		}

		line := entity.OrderLine{
			OrderNo:      orderNo,
			ItemNo:       get(FieldItemNo),
			SupplierCode: code,
			SupplierName: name,
			MaterialCode: get(FieldMaterialCode),
			MaterialDesc: get(FieldMaterialDesc),
			OrderedQty:   parseQty(get(FieldOrderedQty)),
			OpenQty:      parseQty(get(FieldOpenQty)),
			Unit:         get(FieldUnit),
			Requester:    get(FieldRequester),
			Creator:      get(FieldCreator),
		}

		rawDate := get(FieldDeliveryDate)
		rawDays := get(FieldDaysRemaining)
		dv := ParseDate(rawDate, now)
		switch {
		case dv.Valid:
			// A parsed date always wins over a literal days column.
			line.DeliveryDate = dv.Display
			line.DaysRemaining = dv.DaysRemaining
			line.RiskBucket = risk.Classify(dv.DaysRemaining, threshold)
		case rawDays != "":
			if rawDate != "" {
				res.BadDates++
			}
			line.DeliveryDate = rawDate
			line.DaysRemaining = parseDays(rawDays)
			line.RiskBucket = risk.Classify(line.DaysRemaining, threshold)
		default:
			if rawDate != "" {
				res.BadDates++
			}
			// No usable date information at all: the line is not due today,
			// it is simply unknown. Zero days with an ok bucket.
			line.DeliveryDate = rawDate
			line.DaysRemaining = 0
			line.RiskBucket = entity.RiskOK
		}

		if fv := ParseDate(get(FieldFirstDate), now); fv.Valid {
			line.FirstDate = fv.Display
		} else {
			line.FirstDate = get(FieldFirstDate)
		}

		res.Lines = append(res.Lines, line)
	}
	return res
}

// Refresh recomputes a line's derived fields after a date mutation: the
// effective date is reparsed, days-remaining recomputed and the bucket
// reclassified. Lines whose effective date no longer parses keep their stored
// days-remaining and are reclassified from it.
func Refresh(line *entity.OrderLine, threshold int, now time.Time) {
	if dv := ParseDate(line.EffectiveDate(), now); dv.Valid {
		line.DaysRemaining = dv.DaysRemaining
	}
	line.RiskBucket = risk.Classify(line.DaysRemaining, threshold)
}

// resolveSupplierName applies the fallback chain for missing vendor names:
// the explicit name column, then a name-like supplier code (longer than five
// characters and non-numeric), then a synthesized label around the code, and
// finally the unknown-supplier sentinel.
func resolveSupplierName(name, code string) string {
	if name != "" {
		return name
	}
	if len(code) > 5 && !isNumeric(code) {
		return code
	}
	if code != "" {
		return fmt.Sprintf("Tedarikçi (%s)", code)
	}
	return entity.UnknownSupplier
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseQty reads a quantity cell tolerating Turkish number formatting
// ("1.234,5") alongside plain decimals.
func parseQty(s string) float64 {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseDays reads a literal days-remaining cell, rounding fractional values.
func parseDays(s string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(math.Round(v))
}
