package sheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook is a thin wrapper over an opened spreadsheet that hands out raw
// cell grids. Everything beyond opening the file is pure: the core consumes
// rows of untyped cells and nothing else.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook opens an xlsx workbook from memory. This is the only place the
// ingestion path can fail with an error; an unreadable file surfaces here and
// never reaches the mapping layer.
func OpenWorkbook(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

// Grid returns the raw cell grid of the sheet at index. Raw cell values are
// requested so date cells arrive as their underlying serial numbers instead
// of display-formatted strings. A missing sheet or an empty sheet yields an
// empty grid, not an error: the caller decides whether empty is a problem.
func (w *Workbook) Grid(index int) [][]string {
	sheets := w.f.GetSheetList()
	if index < 0 || index >= len(sheets) {
		return nil
	}
	rows, err := w.f.GetRows(sheets[index], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil
	}
	return rows
}

// SheetCount reports how many sheets the workbook carries. The order book is
// always the first sheet; an optional second sheet holds supplier contacts.
func (w *Workbook) SheetCount() int {
	return len(w.f.GetSheetList())
}
