package sheet

import (
	"strings"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
)

// Contact sheet fields. The contacts sheet reuses the same header heuristics
// as the order book but carries its own alias table.
const (
	contactCode       Field = "contact_code"
	contactName       Field = "contact_name"
	contactRep        Field = "contact_rep"
	contactPhone      Field = "contact_phone"
	contactEmail      Field = "contact_email"
	contactScope      Field = "contact_scope"
	contactRegion     Field = "contact_region"
	contactSpecialist Field = "contact_specialist"
)

var contactAliases = map[Field][]string{
	contactCode:       {"saticikodu", "tedarikcikodu", "kod", "vendorcode", "suppliercode"},
	contactName:       {"saticiadi", "tedarikciadi", "tedarikci", "unvan", "vendorname", "suppliername"},
	contactRep:        {"temsilci", "temsilciadi", "yetkili", "yetkilikisi", "representative", "contactperson"},
	contactPhone:      {"telefon", "telefonno", "gsm", "phone", "phonenumber"},
	contactEmail:      {"eposta", "email", "mail", "epostaadresi"},
	contactScope:      {"kapsam", "faaliyetkapsami", "scope"},
	contactRegion:     {"bolge", "sehir", "region", "city"},
	contactSpecialist: {"uzman", "sorumluuzman", "specialist"},
}

var contactAnchors = []Field{contactCode, contactName, contactRep, contactPhone, contactEmail}

// MapContacts turns the optional supplier contact sheet into contact records.
// An empty or missing grid produces zero contacts, never an error. Rows
// without a supplier code are skipped.
func MapContacts(grid [][]string) []entity.SupplierContact {
	if len(grid) == 0 {
		return nil
	}

	headerRow := findHeaderRowWith(grid, contactAliases, contactAnchors)
	cols := resolveColumnsWith(grid[headerRow], contactAliases)

	col := func(row []string, f Field) string {
		idx, ok := cols[f]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var contacts []entity.SupplierContact
	for i := headerRow + 1; i < len(grid); i++ {
		row := grid[i]
		code := col(row, contactCode)
		if code == "" {
			continue
		}
		contacts = append(contacts, entity.SupplierContact{
			SupplierCode: code,
			SupplierName: col(row, contactName),
			RepName:      col(row, contactRep),
			RepPhone:     col(row, contactPhone),
			RepEmail:     col(row, contactEmail),
			Scope:        col(row, contactScope),
			Region:       col(row, contactRegion),
			Specialist:   col(row, contactSpecialist),
		})
	}
	return contacts
}

// findHeaderRowWith is FindHeaderRow generalized over an alias table.
func findHeaderRowWith(grid [][]string, aliases map[Field][]string, anchors []Field) int {
	limit := len(grid)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}
	for i := 0; i < limit; i++ {
		var flat strings.Builder
		for _, cell := range grid[i] {
			flat.WriteString(Normalize(cell))
			flat.WriteByte('|')
		}
		row := flat.String()

		matches := 0
		for _, f := range anchors {
			for _, alias := range aliases[f] {
				if strings.Contains(row, alias) {
					matches++
					break
				}
			}
		}
		if matches >= minAnchorMatches {
			return i
		}
	}
	return 0
}

func resolveColumnsWith(header []string, aliases map[Field][]string) map[Field]int {
	normalized := make([]string, len(header))
	for i, cell := range header {
		normalized[i] = Normalize(cell)
	}

	cols := make(map[Field]int, len(aliases))
	for f, list := range aliases {
	find:
		for i, cell := range normalized {
			if cell == "" {
				continue
			}
			for _, alias := range list {
				if cell == alias {
					cols[f] = i
					break find
				}
			}
		}
	}
	return cols
}
