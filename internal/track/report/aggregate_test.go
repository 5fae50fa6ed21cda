package report

import (
	"testing"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

func TestAggregateByVendorGroupsByDisplayName(t *testing.T) {
	// Two different supplier codes sharing one cleaned display name collapse
	// into a single dashboard vendor.
	lines := []entity.OrderLine{
		{OrderNo: "450001", ItemNo: "10", SupplierCode: "1000123", SupplierName: "Yılmaz Metal A.Ş.", DaysRemaining: -2, RiskBucket: entity.RiskCritical},
		{OrderNo: "450002", ItemNo: "10", SupplierCode: "1000999", SupplierName: "Yılmaz Metal A.Ş.", DaysRemaining: 3, RiskBucket: entity.RiskWarning},
		{OrderNo: "450003", ItemNo: "10", SupplierCode: "1000456", SupplierName: "Demir Çelik Ltd.", DaysRemaining: 30, RiskBucket: entity.RiskOK},
	}

	summaries := AggregateByVendor(lines)
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}

	s := summaries[0]
	if s.SupplierName != "Yılmaz Metal A.Ş." {
		t.Fatalf("summaries[0] = %q, want the critical vendor first", s.SupplierName)
	}
	if s.ItemCount != 2 || s.CriticalCount != 1 || s.WarningCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2 items, 1 critical, 1 warning",
			s.ItemCount, s.CriticalCount, s.WarningCount)
	}
	if len(s.Lines) != 2 {
		t.Errorf("len(member lines) = %d, want 2", len(s.Lines))
	}

	if summaries[1].SupplierName != "Demir Çelik Ltd." || summaries[1].ItemCount != 1 {
		t.Errorf("summaries[1] = %+v", summaries[1])
	}
}

func TestAggregateByVendorIsPureProjection(t *testing.T) {
	lines := []entity.OrderLine{
		{OrderNo: "450001", ItemNo: "10", SupplierName: "A", RiskBucket: entity.RiskOK},
		{OrderNo: "450002", ItemNo: "10", SupplierName: "B", RiskBucket: entity.RiskOK},
	}
	first := AggregateByVendor(lines)
	second := AggregateByVendor(lines)
	if len(first) != len(second) {
		t.Fatal("repeated aggregation should produce identical results")
	}
	for i := range first {
		if first[i].SupplierName != second[i].SupplierName || first[i].ItemCount != second[i].ItemCount {
			t.Errorf("aggregation pass %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestAggregateByVendorEmpty(t *testing.T) {
	if got := AggregateByVendor(nil); len(got) != 0 {
		t.Errorf("AggregateByVendor(nil) = %v, want empty", got)
	}
}

func TestSortByUrgency(t *testing.T) {
	lines := []entity.OrderLine{
		{OrderNo: "450003", ItemNo: "10", DaysRemaining: 12},
		{OrderNo: "450001", ItemNo: "10", DaysRemaining: -5},
		{OrderNo: "450002", ItemNo: "10", DaysRemaining: 2},
	}
	sorted := SortByUrgency(lines)
	if sorted[0].OrderNo != "450001" || sorted[1].OrderNo != "450002" || sorted[2].OrderNo != "450003" {
		t.Errorf("urgency order = %s, %s, %s", sorted[0].OrderNo, sorted[1].OrderNo, sorted[2].OrderNo)
	}
	if lines[0].OrderNo != "450003" {
		t.Error("SortByUrgency must not mutate its input")
	}
}
