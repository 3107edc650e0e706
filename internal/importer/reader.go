// Package importer loads glossary spreadsheets into the moderation queue as
// pending terms.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Layout says where each field lives in the sheet. Columns are letters
// ("A", "B", ...); an empty column means the field is absent.
type Layout struct {
	Sheet         string
	StartRow      int // 1-based, rows above it are headers
	English       string
	Arabic        string
	DescriptionEn string
	DescriptionAr string
	Category      string
}

// DefaultLayout reads Sheet1 from row 2 with columns A..E in the order
// English, Arabic, English description, Arabic description, category.
func DefaultLayout() Layout {
	return Layout{
		Sheet:         "Sheet1",
		StartRow:      2,
		English:       "A",
		Arabic:        "B",
		DescriptionEn: "C",
		DescriptionAr: "D",
		Category:      "E",
	}
}

// Row is one spreadsheet line with cells already trimmed.
type Row struct {
	Line          int
	English       string
	Arabic        string
	DescriptionEn string
	DescriptionAr string
	Category      string
}

// ReadFile opens an .xlsx file and extracts its rows.
func ReadFile(path string, layout Layout) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return readRows(f, layout)
}

// Read extracts rows from an .xlsx stream.
func Read(r io.Reader, layout Layout) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readRows(f, layout)
}

func readRows(f *excelize.File, layout Layout) ([]Row, error) {
	sheet := layout.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	start := max(layout.StartRow, 1)
	var rows []Row
	for i, cols := range cells {
		line := i + 1
		if line < start {
			continue
		}
		row := Row{
			Line:          line,
			English:       cell(cols, layout.English),
			Arabic:        cell(cols, layout.Arabic),
			DescriptionEn: cell(cols, layout.DescriptionEn),
			DescriptionAr: cell(cols, layout.DescriptionAr),
			Category:      cell(cols, layout.Category),
		}
		if row.blank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r Row) blank() bool {
	return r.English == "" && r.Arabic == "" && r.DescriptionEn == "" && r.DescriptionAr == "" && r.Category == ""
}

func cell(cols []string, column string) string {
	if column == "" {
		return ""
	}
	idx, err := excelize.ColumnNameToNumber(column)
	if err != nil || idx > len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[idx-1])
}
