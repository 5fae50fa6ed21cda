package sheet

import "testing"

func TestMapContacts(t *testing.T) {
	grid := [][]string{
		{"TEDARİKÇİ İLETİŞİM LİSTESİ"},
		{"Satıcı Kodu", "Tedarikçi Adı", "Temsilci", "Telefon", "E-Posta", "Bölge"},
		{"1000123", "Yılmaz Metal A.Ş.", "Ahmet Yılmaz", "+90 555 111 2233", "ahmet@yilmazmetal.com.tr", "Bursa"},
		{"", "kodu olmayan satır", "", "", "", ""},
		{"1000456", "Demir Çelik Ltd.", "", "", "", "İzmir"},
	}

	contacts := MapContacts(grid)
	if len(contacts) != 2 {
		t.Fatalf("len(contacts) = %d, want 2", len(contacts))
	}
	c := contacts[0]
	if c.SupplierCode != "1000123" || c.RepName != "Ahmet Yılmaz" || c.Region != "Bursa" {
		t.Errorf("unexpected first contact: %+v", c)
	}
	if c.RepEmail != "ahmet@yilmazmetal.com.tr" {
		t.Errorf("RepEmail = %q", c.RepEmail)
	}
	if contacts[1].SupplierCode != "1000456" {
		t.Errorf("second contact code = %q, want 1000456", contacts[1].SupplierCode)
	}
}

func TestMapContactsMissingSheet(t *testing.T) {
	if got := MapContacts(nil); got != nil {
		t.Errorf("MapContacts(nil) = %v, want nil", got)
	}
	if got := MapContacts([][]string{}); got != nil {
		t.Errorf("MapContacts(empty) = %v, want nil", got)
	}
}
