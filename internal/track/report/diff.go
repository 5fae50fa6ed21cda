package report

import (
	"sort"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

// Change kinds for a single identity key between two snapshots.
const (
	ChangeAdded   = "added"
	ChangeRemoved = "removed"
	ChangeUpdated = "updated"
)

// DiffItem is one changed line between two snapshots. For updated items the
// old and new effective dates are carried alongside the line.
type DiffItem struct {
	Kind    string           `json:"kind"`
	Line    entity.OrderLine `json:"line"`
	OldDate string           `json:"old_date,omitempty"`
	NewDate string           `json:"new_date,omitempty"`
}

// VendorComparison is the per-supplier rollup of diff items.
type VendorComparison struct {
	SupplierCode string     `json:"supplier_code"`
	SupplierName string     `json:"supplier_name"`
	Added        int        `json:"added"`
	Removed      int        `json:"removed"`
	Updated      int        `json:"updated"`
	Items        []DiffItem `json:"items"`
}

// ComparisonReport is the full diff between two snapshots: grand totals plus
// every supplier with at least one change.
type ComparisonReport struct {
	TotalAdded   int                `json:"total_added"`
	TotalRemoved int                `json:"total_removed"`
	TotalUpdated int                `json:"total_updated"`
	Vendors      []VendorComparison `json:"vendors"`
}

// Compare diffs two full snapshots of the same order book. Lines are matched
// by identity key (order number plus item-number-or-material fallback): keys
// only in the new set are added, keys only in the old set are removed, and
// matched keys whose effective date changed are updated. Unchanged lines are
// classified but never emitted.
//
// Items are grouped per supplier CODE, not display name: the diff needs an
// identity that stays stable across snapshots even when display names drift,
// so this intentionally differs from the dashboard aggregation. Suppliers are
// ordered descending by added+updated count with the code as tie-break, which
// pushes removed-only suppliers toward the end as a side effect.
//
// Comparing a snapshot against itself yields zero changes.
func Compare(oldLines, newLines []entity.OrderLine) ComparisonReport {
	oldByKey := make(map[string]entity.OrderLine, len(oldLines))
	for _, l := range oldLines {
		oldByKey[l.Key()] = l
	}
	newByKey := make(map[string]entity.OrderLine, len(newLines))
	for _, l := range newLines {
		newByKey[l.Key()] = l
	}

	groups := make(map[string]*VendorComparison)
	var order []string
	add := func(code, name string, item DiffItem) *VendorComparison {
		g, ok := groups[code]
		if !ok {
			g = &VendorComparison{SupplierCode: code, SupplierName: name}
			groups[code] = g
			order = append(order, code)
		}
		g.Items = append(g.Items, item)
		return g
	}

	report := ComparisonReport{}

	seen := make(map[string]bool, len(newLines))
	for _, line := range newLines {
		key := line.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		old, existed := oldByKey[key]
		if !existed {
			g := add(line.SupplierCode, line.SupplierName, DiffItem{Kind: ChangeAdded, Line: line})
			g.Added++
			report.TotalAdded++
			continue
		}
		oldDate, newDate := old.EffectiveDate(), line.EffectiveDate()
		if oldDate != newDate {
			g := add(line.SupplierCode, line.SupplierName, DiffItem{
				Kind:    ChangeUpdated,
				Line:    line,
				OldDate: oldDate,
				NewDate: newDate,
			})
			g.Updated++
			report.TotalUpdated++
		}
		// Identical effective dates: unchanged, not part of the report.
	}

	seen = make(map[string]bool, len(oldLines))
	for _, line := range oldLines {
		key := line.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		if _, exists := newByKey[key]; !exists {
			g := add(line.SupplierCode, line.SupplierName, DiffItem{Kind: ChangeRemoved, Line: line})
			g.Removed++
			report.TotalRemoved++
		}
	}

	report.Vendors = make([]VendorComparison, 0, len(order))
	for _, code := range order {
		report.Vendors = append(report.Vendors, *groups[code])
	}
	sort.SliceStable(report.Vendors, func(i, j int) bool {
		wi := report.Vendors[i].Added + report.Vendors[i].Updated
		wj := report.Vendors[j].Added + report.Vendors[j].Updated
		if wi != wj {
			return wi > wj
		}
		return report.Vendors[i].SupplierCode < report.Vendors[j].SupplierCode
	})
	return report
}
