package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ecowatt/solardevis/internal/models"
)

// BuildQuotePDF renders the printable quote document: client block,
// consumption detail, recommended sizing and the financial breakdown. The
// figures come straight from the computed summary; nothing is recalculated
// here.
func BuildQuotePDF(p models.ClientProfile, sizing models.SizingResult, sum models.FinancialSummary, cfg models.QuoteConfig) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Devis Photovoltaïque"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Client: %s", p.Name)))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Adresse: %s", p.Address)))
	pdf.Ln(5)
	if p.SiteName != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Lieu de chantier: %s", p.SiteName)))
		pdf.Ln(5)
	}
	if p.VisitDate != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Date de visite: %s", p.VisitDate)))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// Consumption table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 6, tr("Appareil"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, tr("Puissance (W)"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, tr("Durée (h/j)"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, tr("Qté"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, tr("Total (kWh/j)"), "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, it := range p.Items {
		pdf.CellFormat(60, 6, tr(it.Device), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.0f", it.PeakW), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", it.DurationH), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", it.DailyKWh()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 6, tr("Total consommation journalière"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f kWh", p.TotalDailyKWh), "1", 0, "R", false, 0, "")
	pdf.Ln(10)

	// Recommended system
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Dimensionnement conseillé: %.2f kWc", sizing.NeededKWp)))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Nombre de panneaux: %d x %d W (rendement %.0f%%)", sizing.PanelCount, cfg.PanelPowerW, cfg.EfficiencyPercent)))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Puissance de crête relevée: %.0f W", p.TotalMaxW)))
	pdf.Ln(10)

	// Financial summary
	line := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(130, 6, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	line("Matériel HT (marge incluse)", sum.MaterialSubtotal, false)
	line(fmt.Sprintf("Remise client (%.0f%%)", cfg.DiscountPercent), sum.DiscountAmount, false)
	line("Net HT matériel", sum.NetSubtotal, false)
	line(fmt.Sprintf("TVA matériel (%.1f%%)", cfg.MaterialTaxPercent), sum.MaterialTax, false)
	line("Installation HT", sum.InstallCost, false)
	line(fmt.Sprintf("TVA installation (%.1f%%)", cfg.InstallTaxPercent), sum.InstallTax, false)
	line("TOTAL TTC", sum.GrandTotal, true)
	line(fmt.Sprintf("Acompte à la signature (%.0f%%)", sum.DepositPercent), sum.DepositAmount, true)

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, tr("Devis non contractuel - SolarDevis"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
