package risk

import (
	"testing"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

func TestClassifyScenarios(t *testing.T) {
	cases := []struct {
		days, threshold int
		want            string
	}{
		{-3, 7, entity.RiskCritical},
		{5, 7, entity.RiskWarning},
		{9, 7, entity.RiskOK},
		{-1, 0, entity.RiskCritical},
		{0, 0, entity.RiskWarning},
		{1, 0, entity.RiskOK},
		{7, 7, entity.RiskWarning}, // threshold is inclusive
	}
	for _, tc := range cases {
		if got := Classify(tc.days, tc.threshold); got != tc.want {
			t.Errorf("Classify(%d, %d) = %q, want %q", tc.days, tc.threshold, got, tc.want)
		}
	}
}

// Classification is total: every (days, threshold) pair lands in exactly one
// bucket, negative days are always critical and 0..threshold always warning.
func TestClassifyTotality(t *testing.T) {
	for days := -30; days <= 30; days++ {
		for threshold := 0; threshold <= 15; threshold++ {
			got := Classify(days, threshold)
			switch got {
			case entity.RiskCritical, entity.RiskWarning, entity.RiskOK:
			default:
				t.Fatalf("Classify(%d, %d) = %q, not a bucket", days, threshold, got)
			}
			if (days < 0) != (got == entity.RiskCritical) {
				t.Errorf("Classify(%d, %d) = %q: critical iff days < 0 violated", days, threshold, got)
			}
			if (days >= 0 && days <= threshold) != (got == entity.RiskWarning) {
				t.Errorf("Classify(%d, %d) = %q: warning iff 0 <= days <= threshold violated", days, threshold, got)
			}
		}
	}
}

// Raising the threshold from 7 to 15 must flip a 10-day line from ok to
// warning and touch nothing else.
func TestReclassifyAllOnThresholdChange(t *testing.T) {
	lines := []entity.OrderLine{
		{OrderNo: "450001", ItemNo: "10", DaysRemaining: 10, RiskBucket: entity.RiskOK, SupplierName: "Yılmaz Metal A.Ş."},
		{OrderNo: "450002", ItemNo: "20", DaysRemaining: -2, RiskBucket: entity.RiskCritical},
	}

	ReclassifyAll(lines, 15)

	if lines[0].RiskBucket != entity.RiskWarning {
		t.Errorf("bucket = %q, want warning after threshold raise", lines[0].RiskBucket)
	}
	if lines[0].DaysRemaining != 10 || lines[0].SupplierName != "Yılmaz Metal A.Ş." {
		t.Error("reclassification must not alter other fields")
	}
	if lines[1].RiskBucket != entity.RiskCritical {
		t.Errorf("overdue line bucket = %q, want critical", lines[1].RiskBucket)
	}
}
