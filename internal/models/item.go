package models

// LineItem is one appliance row from an energy audit. JSON tags follow the
// field tool's French export vocabulary so saved files from either side stay
// interchangeable.
type LineItem struct {
	ID           string `json:"id"`
	Client       string `json:"client"`
	Site         string `json:"lieu"`
	Address      string `json:"adresse"`
	VisitDate    string `json:"date"`
	Agent        string `json:"agent"`
	AgentName    string `json:"agentName"`
	Device       string `json:"appareil"`
	Observations string `json:"observations"`

	IncludedInPeak bool    `json:"inclusPuisCrete"`
	HourlyKWh      float64 `json:"puissanceHoraireKWh"`
	PeakW          float64 `json:"puissanceMaxW"`
	DurationH      float64 `json:"dureeHj"`
	Quantity       int     `json:"quantite"`
	UnitPrice      float64 `json:"unitPrice"`
}

// DailyKWh is the energy the line consumes over one day.
func (it LineItem) DailyKWh() float64 {
	return it.HourlyKWh * it.DurationH * float64(it.Quantity)
}

// Billable reports whether the line contributes to the quote's material
// subtotal. Zero-priced lines stay visible in the audit but cost nothing.
func (it LineItem) Billable() bool {
	return it.Quantity > 0 && it.UnitPrice > 0
}
