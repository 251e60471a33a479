package models

// ClientProfile aggregates the audit rows of one client at one address.
// Totals are always recomputed from Items; they are carried here so a saved
// snapshot keeps the figures it was approved with.
type ClientProfile struct {
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	SiteName     string     `json:"siteName"`
	VisitDate    string     `json:"visitDate"`
	AgentName    string     `json:"agentName"`
	Observations string     `json:"observations"`
	Items        []LineItem `json:"items"`

	TotalDailyKWh float64 `json:"totalDailyKWh"`
	TotalMaxW     float64 `json:"totalMaxW"`
}

// Key identifies a profile for de-duplication and persistence lookups.
// The separator keeps names that contain the old "-" join character from
// colliding.
func (p ClientProfile) Key() string {
	return p.Name + "|" + p.Address
}
