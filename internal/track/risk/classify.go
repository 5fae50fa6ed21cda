// Package risk buckets order lines by delivery risk. Classification is a
// pure function of days-remaining and the warning threshold; whenever either
// input changes the bucket is recomputed in full rather than patched
// incrementally.
package risk

import "github.com/alterians/Lojistik-Asistan/internal/track/entity"

// Classify maps a line's remaining days and the warning threshold to exactly
// one bucket: critical when overdue, warning when due within the threshold,
// ok otherwise.
func Classify(daysRemaining, threshold int) string {
	switch {
	case daysRemaining < 0:
		return entity.RiskCritical
	case daysRemaining <= threshold:
		return entity.RiskWarning
	default:
		return entity.RiskOK
	}
}

// ReclassifyAll recomputes every line's bucket in place for the given
// threshold. It is a total pass over the collection; no line keeps a stale
// bucket after a threshold change.
func ReclassifyAll(lines []entity.OrderLine, threshold int) {
	for i := range lines {
		lines[i].RiskBucket = Classify(lines[i].DaysRemaining, threshold)
	}
}
