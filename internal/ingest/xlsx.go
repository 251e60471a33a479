package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ecowatt/solardevis/internal/models"
)

// ParseXLSX reads an Excel audit export. Only the first sheet is read, with
// the same positional columns as the CSV format; the header row is
// discarded. Unlike CSV, an unreadable workbook is a hard error because the
// whole file is unusable, not just one cell.
func ParseXLSX(r io.Reader) ([]models.LineItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	items := make([]models.LineItem, 0, len(rows)-1)
	for _, row := range rows[1:] {
		blank := true
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = cleanField(v)
			if fields[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		items = append(items, itemFromRow(fields))
	}
	return items, nil
}
