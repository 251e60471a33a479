package ingest

import (
	"strings"
	"testing"
)

const header = "Client;Lieu;Adresse;Date;Agent;Appareil;Crete;ConsoHoraire;PuissanceMax;Duree;Qte;Observations;NomAgent"

func TestParseCSVRoundTrip(t *testing.T) {
	csv := "\uFEFF" + header + "\n" +
		`"Dupont";"Maison";"12 rue des Lilas";2024-05-12;AG1;Frigo;OUI;0,12;150;24;1;RAS;Jean Agent` + "\n" +
		`Martin;Atelier;"3 impasse Sud";2024-05-13;AG2;"Clim";NON;1,5;2000;6;2;;` + "\n"

	items := ParseCSV(csv)
	if len(items) != 2 {
		t.Fatalf("expected 2 items got %d", len(items))
	}

	first := items[0]
	if first.Client != "Dupont" || first.Site != "Maison" || first.Address != "12 rue des Lilas" {
		t.Fatalf("identity fields wrong: %+v", first)
	}
	if first.VisitDate != "2024-05-12" || first.Agent != "AG1" || first.Device != "Frigo" {
		t.Fatalf("descriptor fields wrong: %+v", first)
	}
	if !first.IncludedInPeak {
		t.Fatalf("OUI should mean included")
	}
	if first.HourlyKWh != 0.12 || first.PeakW != 150 || first.DurationH != 24 || first.Quantity != 1 {
		t.Fatalf("numeric fields wrong: %+v", first)
	}
	if first.Observations != "RAS" || first.AgentName != "Jean Agent" {
		t.Fatalf("trailing fields wrong: %+v", first)
	}
	if first.UnitPrice != 0 {
		t.Fatalf("unit price defaults to 0, got %v", first.UnitPrice)
	}
	if first.ID == "" || items[1].ID == "" || first.ID == items[1].ID {
		t.Fatalf("ids must be unique and non-empty")
	}

	second := items[1]
	if second.IncludedInPeak {
		t.Fatalf("NON should mean excluded")
	}
	if second.HourlyKWh != 1.5 || second.Quantity != 2 {
		t.Fatalf("second row numerics wrong: %+v", second)
	}
	if second.AgentName != "AG2" {
		t.Fatalf("empty agent name column should fall back to agent, got %q", second.AgentName)
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	if items := ParseCSV(header + "\n"); len(items) != 0 {
		t.Fatalf("header-only input must yield no items, got %d", len(items))
	}
	if items := ParseCSV(""); len(items) != 0 {
		t.Fatalf("empty input must yield no items, got %d", len(items))
	}
	if items := ParseCSV(header + "\n\n   \n"); len(items) != 0 {
		t.Fatalf("blank data lines must yield no items, got %d", len(items))
	}
}

func TestParseCSVMalformedCellsDegradeToZero(t *testing.T) {
	csv := header + "\n" +
		"X;;Y;;;Lampe;OUI;abc;-300;-2,5;-4;;\n"

	items := ParseCSV(csv)
	if len(items) != 1 {
		t.Fatalf("malformed cells must not drop the row")
	}
	it := items[0]
	if it.HourlyKWh != 0 {
		t.Fatalf("unparseable energy should be 0, got %v", it.HourlyKWh)
	}
	if it.PeakW != 0 {
		t.Fatalf("negative power should clamp to 0, got %v", it.PeakW)
	}
	if it.DurationH != 0 {
		t.Fatalf("negative duration should clamp to 0, got %v", it.DurationH)
	}
	if it.Quantity != 0 {
		t.Fatalf("negative quantity should clamp to 0, got %v", it.Quantity)
	}
}

func TestParseCSVInclusionFlagDefaultsToTrue(t *testing.T) {
	csv := header + "\n" +
		"A;;B;;;TV;;0,1;100;2;1;;\n" +
		"A;;B;;;TV;oui;0,1;100;2;1;;\n" +
		"A;;B;;;TV;peut-etre;0,1;100;2;1;;\n"

	items := ParseCSV(csv)
	if len(items) != 3 {
		t.Fatalf("expected 3 items got %d", len(items))
	}
	if !items[0].IncludedInPeak {
		t.Fatalf("absent flag defaults to included")
	}
	if !items[1].IncludedInPeak {
		t.Fatalf("flag matching is case-insensitive")
	}
	if items[2].IncludedInPeak {
		t.Fatalf("any other token means excluded")
	}
}

func TestParseCSVCommaDelimiterFallback(t *testing.T) {
	csv := strings.ReplaceAll(header, ";", ",") + "\n" +
		"Durand,Site,Adr,2024-01-01,AG,Four,OUI,0.5,1000,2,1,,\n"

	items := ParseCSV(csv)
	if len(items) != 1 {
		t.Fatalf("expected 1 item got %d", len(items))
	}
	if items[0].Client != "Durand" || items[0].HourlyKWh != 0.5 {
		t.Fatalf("comma-delimited row parsed wrong: %+v", items[0])
	}
}

func TestParseFrFloatStripsUnits(t *testing.T) {
	cases := map[string]float64{
		"1 500,5 W": 1500.5,
		"0,12":      0.12,
		"12":        12,
		"":          0,
		"n/a":       0,
	}
	for in, want := range cases {
		if got := parseFrFloat(in); got != want {
			t.Fatalf("parseFrFloat(%q) = %v, want %v", in, got, want)
		}
	}
}
