package gemini

import (
	"fmt"
	"strings"

	"github.com/ecowatt/solardevis/internal/models"
)

// BuildPrompt formats the expert-analysis request. The prompt is
// deterministic for a given input and embeds the exact figures the quote
// was computed with; the model is told twice to use only those figures so
// it cannot substitute its own assumptions. Only billable items are listed,
// mirroring the pricing filter, so the narrative never cites zero-cost
// placeholder rows.
func BuildPrompt(p models.ClientProfile, sizing models.SizingResult, sum models.FinancialSummary, cfg models.QuoteConfig) string {
	var b strings.Builder

	b.WriteString("En tant qu'expert en énergie solaire, analyse le profil de consommation suivant pour un client résidentiel.\n")
	b.WriteString("Utilise UNIQUEMENT les chiffres fournis ci-dessous, sans substituer d'hypothèses par défaut.\n\n")

	fmt.Fprintf(&b, "Client: %s\n", p.Name)
	fmt.Fprintf(&b, "Adresse: %s\n", p.Address)
	fmt.Fprintf(&b, "Consommation journalière totale estimée: %.2f kWh\n", p.TotalDailyKWh)
	fmt.Fprintf(&b, "Puissance de crête (tout allumé): %.0f W\n\n", p.TotalMaxW)

	fmt.Fprintf(&b, "Dimensionnement retenu: %.2f kWc, soit %d panneaux de %d W (rendement système %.0f%%).\n\n",
		sizing.NeededKWp, sizing.PanelCount, cfg.PanelPowerW, cfg.EfficiencyPercent)

	b.WriteString("Détail financier du devis:\n")
	fmt.Fprintf(&b, "- Matériel HT: %.2f\n", sum.MaterialSubtotal)
	fmt.Fprintf(&b, "- Remise: %.2f\n", sum.DiscountAmount)
	fmt.Fprintf(&b, "- Net HT: %.2f\n", sum.NetSubtotal)
	fmt.Fprintf(&b, "- TVA matériel: %.2f\n", sum.MaterialTax)
	fmt.Fprintf(&b, "- Installation HT: %.2f\n", sum.InstallCost)
	fmt.Fprintf(&b, "- TVA installation: %.2f\n", sum.InstallTax)
	fmt.Fprintf(&b, "- Total TTC: %.2f\n", sum.GrandTotal)
	fmt.Fprintf(&b, "- Acompte à la signature: %.2f (%.0f%%)\n\n", sum.DepositAmount, sum.DepositPercent)

	b.WriteString("Articles facturés:\n")
	for _, it := range p.Items {
		if !it.Billable() {
			continue
		}
		fmt.Fprintf(&b, "- %s: %.3fkWh/h, %.1fh/j, Qte: %d, PU HT: %.2f\n",
			it.Device, it.HourlyKWh, it.DurationH, it.Quantity, it.UnitPrice)
	}

	b.WriteString("\nFournis une analyse professionnelle courte (en français) incluant:\n")
	b.WriteString("1. Une évaluation de la pertinence d'une installation photovoltaïque.\n")
	b.WriteString("2. Le dimensionnement conseillé (en kWc), cohérent avec les chiffres ci-dessus.\n")
	b.WriteString("3. Un conseil spécifique sur la gestion des appareils (ex: optimiser le ballon thermodynamique ou la borne VE).\n")
	b.WriteString("4. Une estimation des économies annuelles potentielles.\n\n")
	b.WriteString("Réponds en format Markdown structuré, en te basant exclusivement sur les chiffres fournis.\n")

	return b.String()
}
