package sheet

import (
	"testing"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

func mapperGrid(rows ...[]string) [][]string {
	grid := [][]string{
		{
			"Satınalma Belgesi", "Kalem", "Satıcı Kodu", "Satıcı Adı",
			"Malzeme", "Teslimat Tarihi", "Kalan Gün", "Açık Miktar",
		},
	}
	return append(grid, rows...)
}

func TestMapRowsBasic(t *testing.T) {
	grid := mapperGrid(
		[]string{"450001", "10", "1000123", "Yılmaz Metal A.Ş.", "MAT-001", "45787", "", "2.500,5"},
	)
	res := MapRows(grid, 7, testNow)
	if len(res.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(res.Lines))
	}
	l := res.Lines[0]
	if l.OrderNo != "450001" || l.ItemNo != "10" {
		t.Errorf("identity = %s/%s, want 450001/10", l.OrderNo, l.ItemNo)
	}
	if l.DeliveryDate != "10.05.2025" {
		t.Errorf("DeliveryDate = %q, want 10.05.2025", l.DeliveryDate)
	}
	if l.DaysRemaining != 9 {
		t.Errorf("DaysRemaining = %d, want 9", l.DaysRemaining)
	}
	if l.RiskBucket != entity.RiskOK {
		t.Errorf("RiskBucket = %q, want ok (9 > threshold 7)", l.RiskBucket)
	}
	if l.OpenQty != 2500.5 {
		t.Errorf("OpenQty = %v, want 2500.5 (Turkish number format)", l.OpenQty)
	}
}

func TestMapRowsDateBeatsLiteralDays(t *testing.T) {
	grid := mapperGrid(
		[]string{"450001", "10", "1000123", "Yılmaz Metal A.Ş.", "MAT-001", "10.05.2025", "99", ""},
	)
	res := MapRows(grid, 7, testNow)
	if len(res.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(res.Lines))
	}
	if got := res.Lines[0].DaysRemaining; got != 9 {
		t.Errorf("DaysRemaining = %d, want 9 (parsed date wins over literal 99)", got)
	}
}

func TestMapRowsLiteralDaysFallback(t *testing.T) {
	grid := mapperGrid(
		[]string{"450001", "10", "1000123", "Yılmaz Metal A.Ş.", "MAT-001", "bilinmiyor", "5", ""},
	)
	res := MapRows(grid, 7, testNow)
	if len(res.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(res.Lines))
	}
	l := res.Lines[0]
	if l.DaysRemaining != 5 {
		t.Errorf("DaysRemaining = %d, want literal fallback 5", l.DaysRemaining)
	}
	if l.RiskBucket != entity.RiskWarning {
		t.Errorf("RiskBucket = %q, want warning", l.RiskBucket)
	}
	if l.DeliveryDate != "bilinmiyor" {
		t.Errorf("DeliveryDate = %q, want raw cell kept", l.DeliveryDate)
	}
	if res.BadDates != 1 {
		t.Errorf("BadDates = %d, want 1", res.BadDates)
	}
}

func TestMapRowsNoDateInformation(t *testing.T) {
	grid := mapperGrid(
		[]string{"450001", "10", "1000123", "Yılmaz Metal A.Ş.", "MAT-001", "", "", ""},
	)
	res := MapRows(grid, 7, testNow)
	if len(res.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(res.Lines))
	}
	l := res.Lines[0]
	if l.DaysRemaining != 0 || l.RiskBucket != entity.RiskOK {
		t.Errorf("no-date line = (%d, %s), want (0, ok)", l.DaysRemaining, l.RiskBucket)
	}
}

func TestMapRowsDropsBlankAndUndefinedOrderNo(t *testing.T) {
	grid := mapperGrid(
		[]string{"", "10", "1000123", "Yılmaz Metal A.Ş.", "MAT-001", "45787", "", ""},
		[]string{"undefined", "10", "1000123", "Yılmaz Metal A.Ş.", "MAT-002", "45787", "", ""},
		[]string{"450002", "10", "1000123", "Yılmaz Metal A.Ş.", "MAT-003", "45787", "", ""},
	)
	res := MapRows(grid, 7, testNow)
	if len(res.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(res.Lines))
	}
	if res.Lines[0].OrderNo != "450002" {
		t.Errorf("kept OrderNo = %q, want 450002", res.Lines[0].OrderNo)
	}
	if res.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", res.Dropped)
	}
}

func TestMapRowsSupplierNameFallbacks(t *testing.T) {
	grid := mapperGrid(
		[]string{"450001", "10", "ACME-TR", "", "MAT-001", "45787", "", ""},
		[]string{"450002", "10", "12345", "", "MAT-002", "45787", "", ""},
		[]string{"450003", "10", "", "", "MAT-003", "45787", "", ""},
	)
	res := MapRows(grid, 7, testNow)
	if len(res.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2 (unresolvable supplier dropped)", len(res.Lines))
	}
	if got := res.Lines[0].SupplierName; got != "ACME-TR" {
		t.Errorf("name-like code: SupplierName = %q, want ACME-TR", got)
	}
	if got := res.Lines[1].SupplierName; got != "Tedarikçi (12345)" {
		t.Errorf("synthesized label: SupplierName = %q, want Tedarikçi (12345)", got)
	}
	if res.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", res.Dropped)
	}
}

func TestMapRowsSkipsFullyBlankRows(t *testing.T) {
	grid := mapperGrid(
		[]string{"", "", "", "", "", "", "", ""},
		[]string{"450001", "10", "1000123", "Yılmaz Metal A.Ş.", "MAT-001", "45787", "", ""},
	)
	res := MapRows(grid, 7, testNow)
	if len(res.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(res.Lines))
	}
	if res.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0 (blank rows are not counted as drops)", res.Dropped)
	}
}

func TestMapRowsMissingColumnsAreOptional(t *testing.T) {
	grid := [][]string{
		{"Satınalma Belgesi", "Satıcı Adı", "Teslimat Tarihi"},
		{"450001", "Yılmaz Metal A.Ş.", "45787"},
	}
	res := MapRows(grid, 7, testNow)
	if len(res.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(res.Lines))
	}
	l := res.Lines[0]
	if l.ItemNo != "" || l.MaterialCode != "" || l.OpenQty != 0 {
		t.Errorf("missing columns should default to zero values, got %+v", l)
	}
	if len(res.MissingCols) == 0 {
		t.Error("MissingCols should report unresolved fields")
	}
}

func TestRefreshRecomputesFromRevisedDate(t *testing.T) {
	line := entity.OrderLine{
		OrderNo:       "450001",
		ItemNo:        "10",
		DeliveryDate:  "10.05.2025",
		DaysRemaining: 9,
		RiskBucket:    entity.RiskOK,
	}
	line.RevisedDate = "03.05.2025"
	Refresh(&line, 7, testNow)
	if line.DaysRemaining != 2 {
		t.Errorf("DaysRemaining = %d, want 2 (revised date takes effect)", line.DaysRemaining)
	}
	if line.RiskBucket != entity.RiskWarning {
		t.Errorf("RiskBucket = %q, want warning", line.RiskBucket)
	}
}
