package models

// QuoteConfig carries the commercial and sizing parameters of one quote.
// Percentages are plain numbers (20 = 20%). Out-of-range values are not
// sanitized: a negative discount deliberately acts as a markup, matching
// what the field tool computes on the same inputs.
type QuoteConfig struct {
	MarginPercent      float64 `json:"marginPercent" yaml:"marginPercent"`
	DiscountPercent    float64 `json:"discountPercent" yaml:"discountPercent"`
	MaterialTaxPercent float64 `json:"materialTaxPercent" yaml:"materialTaxPercent"`
	InstallTaxPercent  float64 `json:"installTaxPercent" yaml:"installTaxPercent"`
	InstallCost        float64 `json:"installCost" yaml:"installCost"`
	PanelPowerW        int     `json:"panelPowerW" yaml:"panelPowerW"`
	EfficiencyPercent  float64 `json:"efficiencyPercent" yaml:"efficiencyPercent"`
}

// DefaultQuoteConfig returns the parameters a new quote starts from.
func DefaultQuoteConfig() QuoteConfig {
	return QuoteConfig{
		MarginPercent:      20,
		DiscountPercent:    0,
		MaterialTaxPercent: 20,
		InstallTaxPercent:  10,
		InstallCost:        1500,
		PanelPowerW:        425,
		EfficiencyPercent:  80,
	}
}

// SizingResult is the recommended system capacity for a daily draw.
type SizingResult struct {
	NeededKWp  float64 `json:"neededKWp"`
	PanelCount int     `json:"panelCount"`
}

// FinancialSummary is the full pricing breakdown of a quote. All amounts
// are HT unless stated otherwise; GrandTotal is TTC.
type FinancialSummary struct {
	MaterialSubtotal float64 `json:"materialSubtotal"`
	DiscountAmount   float64 `json:"discountAmount"`
	NetSubtotal      float64 `json:"netSubtotal"`
	MaterialTax      float64 `json:"materialTax"`
	InstallCost      float64 `json:"installCost"`
	InstallTax       float64 `json:"installTax"`
	GrandTotal       float64 `json:"grandTotal"`
	DepositPercent   float64 `json:"depositPercent"`
	DepositAmount    float64 `json:"depositAmount"`
}
