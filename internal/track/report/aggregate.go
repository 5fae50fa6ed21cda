// Package report builds the derived projections of an order line set: the
// per-vendor dashboard summaries and the comparison report between two
// snapshots. Both are rebuilt from scratch on every call; nothing here is
// incrementally maintained.
package report

import (
	"sort"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

// VendorSummary is the per-supplier rollup shown on the dashboard.
type VendorSummary struct {
	SupplierCode  string             `json:"supplier_code"`
	SupplierName  string             `json:"supplier_name"`
	ItemCount     int                `json:"item_count"`
	CriticalCount int                `json:"critical_count"`
	WarningCount  int                `json:"warning_count"`
	Lines         []entity.OrderLine `json:"lines"`
}

// AggregateByVendor groups the full line set by supplier display name and
// counts items per risk bucket. Grouping on the name rather than the code is
// deliberate: in the source data several supplier codes can share one cleaned
// display name and the dashboard presents them as a single vendor. The
// comparison report groups by code instead (see Compare).
//
// The result is a pure projection, recomputable at any time from the current
// line set. Suppliers are ordered by critical count, then item count, both
// descending, then name, so repeated calls render identically.
func AggregateByVendor(lines []entity.OrderLine) []VendorSummary {
	index := make(map[string]int)
	var summaries []VendorSummary

	for _, line := range lines {
		i, ok := index[line.SupplierName]
		if !ok {
			i = len(summaries)
			index[line.SupplierName] = i
			summaries = append(summaries, VendorSummary{
				SupplierCode: line.SupplierCode,
				SupplierName: line.SupplierName,
			})
		}
		s := &summaries[i]
		s.ItemCount++
		switch line.RiskBucket {
		case entity.RiskCritical:
			s.CriticalCount++
		case entity.RiskWarning:
			s.WarningCount++
		}
		s.Lines = append(s.Lines, line)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].CriticalCount != summaries[j].CriticalCount {
			return summaries[i].CriticalCount > summaries[j].CriticalCount
		}
		if summaries[i].ItemCount != summaries[j].ItemCount {
			return summaries[i].ItemCount > summaries[j].ItemCount
		}
		return summaries[i].SupplierName < summaries[j].SupplierName
	})
	return summaries
}

// SortByUrgency orders lines ascending by days-remaining, most urgent first,
// with the identity key as tie-break. This is the order handed to the email
// drafting collaborator.
func SortByUrgency(lines []entity.OrderLine) []entity.OrderLine {
	sorted := make([]entity.OrderLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DaysRemaining != sorted[j].DaysRemaining {
			return sorted[i].DaysRemaining < sorted[j].DaysRemaining
		}
		return sorted[i].Key() < sorted[j].Key()
	})
	return sorted
}
