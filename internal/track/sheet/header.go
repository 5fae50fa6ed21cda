package sheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field identifies a semantic column of the order book sheet.
type Field string

const (
	FieldOrderNo       Field = "order_no"
	FieldItemNo        Field = "item_no"
	FieldSupplierCode  Field = "supplier_code"
	FieldSupplierName  Field = "supplier_name"
	FieldMaterialCode  Field = "material_code"
	FieldMaterialDesc  Field = "material_desc"
	FieldOrderedQty    Field = "ordered_qty"
	FieldOpenQty       Field = "open_qty"
	FieldUnit          Field = "unit"
	FieldDeliveryDate  Field = "delivery_date"
	FieldFirstDate     Field = "first_date"
	FieldDaysRemaining Field = "days_remaining"
	FieldRequester     Field = "requester"
	FieldCreator       Field = "creator"
)

// ColumnNotFound marks a semantic field with no matching column in the sheet.
// Callers substitute defaults instead of failing.
const ColumnNotFound = -1

// maxHeaderScan bounds the search for the header row; exports carry at most a
// few title and merged-cell rows before the real header.
const maxHeaderScan = 20

// minAnchorMatches is how many anchor field names a row must mention before it
// is accepted as the header.
const minAnchorMatches = 2

// ColumnMap is the result of header resolution: the header row index and one
// column index per semantic field (ColumnNotFound when absent).
type ColumnMap struct {
	HeaderRow int
	Columns   map[Field]int
}

// Col returns the resolved column index for f, or ColumnNotFound.
func (m ColumnMap) Col(f Field) int {
	if idx, ok := m.Columns[f]; ok {
		return idx
	}
	return ColumnNotFound
}

// Column aliases as they appear in SAP-style Turkish exports plus their
// English counterparts, in normalized form (see Normalize).
var fieldAliases = map[Field][]string{
	FieldOrderNo: {
		"satinalmabelgesi", "satinalmabelgeno", "siparisno", "siparisnumarasi",
		"belgeno", "sasno", "purchasingdocument", "ponumber", "purchaseorder",
	},
	FieldItemNo: {
		"kalem", "kalemno", "pozno", "pozisyon", "item", "itemno",
	},
	FieldSupplierCode: {
		"saticikodu", "saticino", "tedarikcikodu", "tedarikcino",
		"vendorcode", "vendor", "suppliercode",
	},
	FieldSupplierName: {
		"saticiadi", "saticiunvani", "tedarikciadi", "tedarikciunvani",
		"vendorname", "suppliername", "satici", "tedarikci",
	},
	FieldMaterialCode: {
		"malzeme", "malzemekodu", "malzemeno", "stokkodu",
		"material", "materialcode", "materialnumber",
	},
	FieldMaterialDesc: {
		"malzemetanimi", "malzemeaciklamasi", "kisametin", "tanim",
		"materialdescription", "shorttext", "description",
	},
	FieldOrderedQty: {
		"siparismiktari", "miktar", "orderquantity", "quantity",
	},
	FieldOpenQty: {
		"acikmiktar", "kalanmiktar", "teslimedilecekmiktar",
		"openquantity", "remainingquantity", "stilltobedelivered",
	},
	FieldUnit: {
		"olcubirimi", "birim", "unit", "uom", "orderunit",
	},
	FieldDeliveryDate: {
		"teslimattarihi", "teslimtarihi", "termintarihi", "teslimat",
		"deliverydate", "itemdeliverydate",
	},
	FieldFirstDate: {
		"ilkteslimattarihi", "ilktermintarihi", "statteslimtarihi",
		"firstdeliverydate", "statdeliverydate",
	},
	FieldDaysRemaining: {
		"kalangun", "kalangunsayisi", "gunkaldi",
		"daysremaining", "remainingdays",
	},
	FieldRequester: {
		"talepeden", "talepedenkisi", "ihtiyacduyan",
		"requester", "requisitioner",
	},
	FieldCreator: {
		"olusturan", "kaydeden", "createdby", "creator",
	},
}

// Anchor fields used to recognize the header row itself. A row mentioning at
// least minAnchorMatches of these as a substring is taken as the header.
var anchorFields = []Field{
	FieldOrderNo,
	FieldSupplierName,
	FieldMaterialCode,
	FieldMaterialDesc,
	FieldDeliveryDate,
}

// Explicit folds for the Turkish alphabet. The dotless ı and dotted İ do not
// case-fold onto ASCII i via Unicode normalization, so they are mapped up
// front together with the other special letters.
var turkishFold = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ş", "s", "Ş", "s",
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ö", "o", "Ö", "o",
)

// Strips combining marks left by NFD decomposition (umlauts, accents from
// other locales that leak into the exports).
var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s, folds Turkish special characters and remaining
// diacritics onto ASCII and drops everything that is not a letter or digit.
// Header detection and column resolution both match on this form.
func Normalize(s string) string {
	s = turkishFold.Replace(s)
	if folded, _, err := transform.String(diacriticFold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindHeaderRow locates the header row in a raw grid. It scans the first
// maxHeaderScan rows and picks the first one where at least minAnchorMatches
// anchor fields appear as a normalized substring of the flattened row. When no
// row qualifies it falls back to row 0, so the result is always a valid index
// for a non-empty grid. Deterministic: the same grid always resolves to the
// same row.
func FindHeaderRow(grid [][]string) int {
	return findHeaderRowWith(grid, fieldAliases, anchorFields)
}

// ResolveColumns locates the header row and maps every semantic field to its
// column index. A field maps to the first cell whose normalized text exactly
// equals one of the field's aliases; fields with no match get ColumnNotFound
// and are treated as optional by the row mapper.
func ResolveColumns(grid [][]string) ColumnMap {
	m := ColumnMap{
		HeaderRow: FindHeaderRow(grid),
		Columns:   make(map[Field]int, len(fieldAliases)),
	}
	for f := range fieldAliases {
		m.Columns[f] = ColumnNotFound
	}
	if len(grid) == 0 {
		return m
	}
	for f, idx := range resolveColumnsWith(grid[m.HeaderRow], fieldAliases) {
		m.Columns[f] = idx
	}
	return m
}
