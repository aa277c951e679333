package cityfile

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/directory-cli/internal/model"
)

// ReadXLSX loads city rows from the first sheet of an XLSX workbook.
// The first row must be a header matching the CSV column contract.
func ReadXLSX(path string) ([]model.CityRow, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "cityfile: open %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("cityfile: %s has no sheets", path)
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("cityfile: %s first sheet is empty", path)
	}

	header := rowToStrings(sheet.Rows[0])
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []model.CityRow
	for i, r := range sheet.Rows[1:] {
		cells := rowToStrings(r)
		if allEmpty(cells) {
			continue
		}
		row, err := parseRow(cols, cells, i+2)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
