package services

import (
	"math"

	"github.com/ecowatt/solardevis/internal/models"
)

// Deposit tiering: larger contracts conventionally require a smaller
// proportional deposit. Fixed business constants, not configurable.
const (
	depositThreshold  = 1000.0
	depositLargePct   = 30.0
	depositDefaultPct = 50.0
)

// PricingService computes the financial breakdown of a quote. It holds no
// state: ComputeSummary is a pure function of (items, config) and is safe to
// call on every keystroke of the editor.
type PricingService struct{}

func NewPricingService() *PricingService { return &PricingService{} }

// ComputeSummary applies margin, discount, taxes and installation cost to
// the billable items of a quote.
//
// Every monetary intermediate is rounded to cents immediately, not deferred
// to the end. The resulting drift between steps is the documented behavior
// of this pipeline: a round-once implementation diverges by cents on some
// inputs and would break reproducibility of issued quotes.
func (s *PricingService) ComputeSummary(items []models.LineItem, cfg models.QuoteConfig) models.FinancialSummary {
	var subtotal float64
	for _, it := range items {
		if !it.Billable() {
			continue
		}
		marked := round2(it.UnitPrice * (1 + cfg.MarginPercent/100))
		subtotal += round2(marked * float64(it.Quantity))
	}
	subtotal = round2(subtotal)

	discount := round2(subtotal * cfg.DiscountPercent / 100)
	net := round2(subtotal - discount)
	materialTax := round2(net * cfg.MaterialTaxPercent / 100)
	installTax := round2(cfg.InstallCost * cfg.InstallTaxPercent / 100)
	grand := round2(net + materialTax + cfg.InstallCost + installTax)

	depositPct := depositDefaultPct
	if grand > depositThreshold {
		depositPct = depositLargePct
	}

	return models.FinancialSummary{
		MaterialSubtotal: subtotal,
		DiscountAmount:   discount,
		NetSubtotal:      net,
		MaterialTax:      materialTax,
		InstallCost:      cfg.InstallCost,
		InstallTax:       installTax,
		GrandTotal:       grand,
		DepositPercent:   depositPct,
		DepositAmount:    round2(grand * depositPct / 100),
	}
}

// round2 rounds to cents, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
