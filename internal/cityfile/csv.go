package cityfile

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/directory-cli/internal/model"
)

// ReadCSV loads city rows from a CSV file with a header row.
func ReadCSV(path string) ([]model.CityRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "cityfile: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrapf(err, "cityfile: read header of %s", path)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []model.CityRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "cityfile: read row %d of %s", line, path)
		}

		row, err := parseRow(cols, record, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}
