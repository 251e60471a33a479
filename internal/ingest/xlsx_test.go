package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Client", "Lieu", "Adresse", "Date", "Agent", "Appareil", "Crete", "Conso", "Puissance", "Duree", "Qte", "Obs", "NomAgent"},
		{"Dupont", "Maison", "12 rue", "2024-05-12", "AG1", "Frigo", "OUI", "0,12", 150, 24, 1, "", ""},
		{"Dupont", "Maison", "12 rue", "2024-05-12", "AG1", "Clim", "NON", 1.5, 2000, 6, 2, "", ""},
	})

	items, err := ParseXLSX(buf)
	if err != nil {
		t.Fatalf("parse xlsx: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items got %d", len(items))
	}
	if items[0].Client != "Dupont" || items[0].HourlyKWh != 0.12 || items[0].Quantity != 1 {
		t.Fatalf("first row parsed wrong: %+v", items[0])
	}
	if items[0].AgentName != "AG1" {
		t.Fatalf("agent fallback should apply to xlsx too, got %q", items[0].AgentName)
	}
	if items[1].IncludedInPeak {
		t.Fatalf("NON row must be excluded")
	}
}

func TestParseXLSXHeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Client", "Lieu", "Adresse"},
	})
	items, err := ParseXLSX(buf)
	if err != nil {
		t.Fatalf("parse xlsx: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("header-only workbook must yield no items, got %d", len(items))
	}
}

func TestParseXLSXGarbage(t *testing.T) {
	if _, err := ParseXLSX(bytes.NewReader([]byte("not a zip"))); err == nil {
		t.Fatalf("expected error for unreadable workbook")
	}
}
