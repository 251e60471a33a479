package ingest

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ecowatt/solardevis/internal/models"
)

// Positional columns of the audit export. The file is produced by a French
// field tool: semicolon delimiter, decimal commas, "OUI" as the truthy token.
const (
	colClient = iota
	colSite
	colAddress
	colDate
	colAgent
	colDevice
	colIncluded
	colHourlyKWh
	colPeakW
	colDurationH
	colQuantity
	colObservations
	colAgentName
)

// ParseCSV turns raw export text into line items. The first line is a
// header and is discarded; an input with fewer than two lines yields an
// empty slice (nothing to import), never an error. Malformed cells degrade
// to zero values so one bad row cannot abort a whole import.
func ParseCSV(text string) []models.LineItem {
	text = strings.TrimPrefix(text, "\uFEFF")

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) < 2 {
		return nil
	}

	// Semicolon is the export convention; fall back to comma for files
	// re-saved by another spreadsheet tool.
	delim := ";"
	if !strings.Contains(lines[0], ";") {
		delim = ","
	}

	items := make([]models.LineItem, 0, len(lines)-1)
	for _, line := range lines[1:] {
		raw := strings.Split(line, delim)
		fields := make([]string, len(raw))
		for i, v := range raw {
			fields[i] = cleanField(v)
		}
		items = append(items, itemFromRow(fields))
	}
	return items
}

// itemFromRow maps one positional row onto a LineItem. Shared by the CSV
// and XLSX readers.
func itemFromRow(fields []string) models.LineItem {
	at := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	// Absent flag defaults to included; only an explicit non-OUI opts out.
	included := true
	if v := at(colIncluded); v != "" {
		included = strings.EqualFold(v, "OUI")
	}

	agentName := at(colAgentName)
	if agentName == "" {
		agentName = at(colAgent)
	}

	return models.LineItem{
		ID:             uuid.NewString(),
		Client:         at(colClient),
		Site:           at(colSite),
		Address:        at(colAddress),
		VisitDate:      at(colDate),
		Agent:          at(colAgent),
		AgentName:      agentName,
		Device:         at(colDevice),
		Observations:   at(colObservations),
		IncludedInPeak: included,
		HourlyKWh:      clampFloat(parseFrFloat(at(colHourlyKWh))),
		PeakW:          clampFloat(parseFrFloat(at(colPeakW))),
		DurationH:      clampFloat(parseFrFloat(at(colDurationH))),
		Quantity:       clampInt(parseIntOrZero(at(colQuantity))),
		UnitPrice:      0,
	}
}

func cleanField(v string) string {
	v = strings.TrimPrefix(v, `"`)
	v = strings.TrimSuffix(v, `"`)
	return strings.TrimSpace(v)
}

// parseFrFloat normalizes the French decimal comma and strips stray unit
// characters ("1 500,5 W" -> 1500.5). Parse failure yields 0.
func parseFrFloat(v string) float64 {
	if v == "" {
		return 0
	}
	v = strings.ReplaceAll(v, ",", ".")
	v = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, v)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntOrZero(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampInt(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
