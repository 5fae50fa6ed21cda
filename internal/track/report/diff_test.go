package report

import (
	"testing"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

func line(orderNo, itemNo, material, code, name, delivery, revised string) entity.OrderLine {
	return entity.OrderLine{
		OrderNo:      orderNo,
		ItemNo:       itemNo,
		MaterialCode: material,
		SupplierCode: code,
		SupplierName: name,
		DeliveryDate: delivery,
		RevisedDate:  revised,
	}
}

func TestCompareIdempotent(t *testing.T) {
	lines := []entity.OrderLine{
		line("450001", "10", "MAT-001", "1000123", "Yılmaz Metal A.Ş.", "10.05.2025", ""),
		line("450001", "20", "MAT-002", "1000123", "Yılmaz Metal A.Ş.", "12.05.2025", "20.05.2025"),
		line("450002", "10", "MAT-003", "1000456", "Demir Çelik Ltd.", "01.06.2025", ""),
	}
	rep := Compare(lines, lines)
	if rep.TotalAdded != 0 || rep.TotalRemoved != 0 || rep.TotalUpdated != 0 {
		t.Errorf("diff of a snapshot with itself = %+v, want all zero", rep)
	}
	if len(rep.Vendors) != 0 {
		t.Errorf("len(Vendors) = %d, want 0 (zero-change suppliers dropped)", len(rep.Vendors))
	}
}

func TestCompareUpdatedCarriesDates(t *testing.T) {
	old := []entity.OrderLine{
		line("450001", "10", "MAT-001", "1000123", "Yılmaz Metal A.Ş.", "10.05.2025", ""),
	}
	updated := []entity.OrderLine{
		line("450001", "10", "MAT-001", "1000123", "Yılmaz Metal A.Ş.", "10.05.2025", "15.05.2025"),
	}

	rep := Compare(old, updated)
	if rep.TotalAdded != 0 || rep.TotalRemoved != 0 || rep.TotalUpdated != 1 {
		t.Fatalf("totals = %d/%d/%d, want 0/0/1", rep.TotalAdded, rep.TotalRemoved, rep.TotalUpdated)
	}
	if len(rep.Vendors) != 1 {
		t.Fatalf("len(Vendors) = %d, want 1", len(rep.Vendors))
	}
	item := rep.Vendors[0].Items[0]
	if item.Kind != ChangeUpdated {
		t.Fatalf("Kind = %q, want updated", item.Kind)
	}
	if item.OldDate != "10.05.2025" || item.NewDate != "15.05.2025" {
		t.Errorf("dates = %q -> %q, want 10.05.2025 -> 15.05.2025", item.OldDate, item.NewDate)
	}
}

func TestCompareRemoved(t *testing.T) {
	old := []entity.OrderLine{
		line("450002", "10", "MAT-003", "1000456", "Demir Çelik Ltd.", "01.06.2025", ""),
	}
	rep := Compare(old, nil)
	if rep.TotalRemoved != 1 || rep.TotalAdded != 0 || rep.TotalUpdated != 0 {
		t.Fatalf("totals = %d/%d/%d, want 0/1/0 removed", rep.TotalAdded, rep.TotalRemoved, rep.TotalUpdated)
	}
	v := rep.Vendors[0]
	if v.SupplierCode != "1000456" || v.Removed != 1 {
		t.Errorf("vendor = %+v, want 1000456 with one removed item", v)
	}
}

func TestCompareSymmetry(t *testing.T) {
	a := []entity.OrderLine{
		line("450001", "10", "MAT-001", "1000123", "Yılmaz Metal A.Ş.", "10.05.2025", ""),
		line("450002", "10", "MAT-003", "1000456", "Demir Çelik Ltd.", "01.06.2025", ""),
	}
	b := []entity.OrderLine{
		line("450001", "10", "MAT-001", "1000123", "Yılmaz Metal A.Ş.", "10.05.2025", ""),
		line("450009", "10", "MAT-009", "1000789", "Kaya Plastik San.", "05.06.2025", ""),
	}

	ab := Compare(a, b)
	ba := Compare(b, a)

	addedAB := diffKeys(ab, ChangeAdded)
	removedBA := diffKeys(ba, ChangeRemoved)
	if !sameKeySet(addedAB, removedBA) {
		t.Errorf("added(a,b) = %v, removed(b,a) = %v, want equal key sets", addedAB, removedBA)
	}

	removedAB := diffKeys(ab, ChangeRemoved)
	addedBA := diffKeys(ba, ChangeAdded)
	if !sameKeySet(removedAB, addedBA) {
		t.Errorf("removed(a,b) = %v, added(b,a) = %v, want equal key sets", removedAB, addedBA)
	}
}

func TestCompareMaterialFallbackKey(t *testing.T) {
	// No item number: the material code disambiguates the line identity.
	old := []entity.OrderLine{
		line("450001", "", "MAT-001", "1000123", "Yılmaz Metal A.Ş.", "10.05.2025", ""),
	}
	same := []entity.OrderLine{
		line("450001", "", "MAT-001", "1000123", "Yılmaz Metal A.Ş.", "10.05.2025", ""),
	}
	other := []entity.OrderLine{
		line("450001", "", "MAT-002", "1000123", "Yılmaz Metal A.Ş.", "10.05.2025", ""),
	}

	if rep := Compare(old, same); rep.TotalAdded+rep.TotalRemoved+rep.TotalUpdated != 0 {
		t.Errorf("same material key should be unchanged, got %+v", rep)
	}
	rep := Compare(old, other)
	if rep.TotalAdded != 1 || rep.TotalRemoved != 1 {
		t.Errorf("different material keys = %d added / %d removed, want 1/1", rep.TotalAdded, rep.TotalRemoved)
	}
}

func TestCompareVendorOrdering(t *testing.T) {
	old := []entity.OrderLine{
		line("450010", "10", "MAT-010", "3000", "Gitti Ltd.", "01.06.2025", ""), // will be removed only
		line("450020", "10", "MAT-020", "2000", "Tek Güncelleme A.Ş.", "01.06.2025", ""),
	}
	newer := []entity.OrderLine{
		line("450020", "10", "MAT-020", "2000", "Tek Güncelleme A.Ş.", "05.06.2025", ""),
		line("450030", "10", "MAT-030", "1000", "Çok Değişen San.", "01.07.2025", ""),
		line("450030", "20", "MAT-031", "1000", "Çok Değişen San.", "01.07.2025", ""),
	}

	rep := Compare(old, newer)
	if len(rep.Vendors) != 3 {
		t.Fatalf("len(Vendors) = %d, want 3", len(rep.Vendors))
	}
	// Two added > one updated > removed-only, which falls to the end.
	if rep.Vendors[0].SupplierCode != "1000" {
		t.Errorf("Vendors[0] = %s, want 1000", rep.Vendors[0].SupplierCode)
	}
	if rep.Vendors[1].SupplierCode != "2000" {
		t.Errorf("Vendors[1] = %s, want 2000", rep.Vendors[1].SupplierCode)
	}
	if rep.Vendors[2].SupplierCode != "3000" {
		t.Errorf("Vendors[2] = %s, want removed-only 3000 last", rep.Vendors[2].SupplierCode)
	}
}

func diffKeys(rep ComparisonReport, kind string) map[string]bool {
	keys := make(map[string]bool)
	for _, v := range rep.Vendors {
		for _, item := range v.Items {
			if item.Kind == kind {
				keys[item.Line.Key()] = true
			}
		}
	}
	return keys
}

func sameKeySet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
