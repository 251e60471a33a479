package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"

	"github.com/ecowatt/solardevis/internal/models"
)

// Every quote carries these lines even when the audit never mentioned them.
// They are seeded at zero price, excluded from sizing, so they show up in
// the document without moving any total until the salesperson prices them.
var mandatoryDevices = []string{"Onduleur", "Panneau Solaire", "Batterie"}

// EnsureMandatoryItems returns the profile's items with missing mandatory
// lines appended. Label matching is case-insensitive. The input slice is
// not modified.
func EnsureMandatoryItems(p models.ClientProfile) []models.LineItem {
	items := make([]models.LineItem, len(p.Items))
	copy(items, p.Items)

	for _, label := range mandatoryDevices {
		found := false
		for _, it := range items {
			if strings.EqualFold(it.Device, label) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		items = append(items, models.LineItem{
			ID:             uuid.NewString(),
			Client:         p.Name,
			Site:           p.SiteName,
			Address:        p.Address,
			VisitDate:      p.VisitDate,
			Agent:          "Système",
			AgentName:      "Système",
			Device:         label,
			IncludedInPeak: false,
			Quantity:       1,
			UnitPrice:      0,
		})
	}
	return items
}

// Snapshot freezes a profile and its config for persistence. The copy is
// deep and independent: later edits to the live profile never reach a
// snapshot taken earlier. Totals are recomputed so the stored figures match
// the stored items even if the caller's cached totals went stale.
func Snapshot(p models.ClientProfile, cfg models.QuoteConfig, at time.Time) models.QuoteSnapshot {
	frozen := deepcopy.Copy(p).(models.ClientProfile)
	frozen.TotalDailyKWh, frozen.TotalMaxW = ComputeTotals(frozen.Items)
	return models.QuoteSnapshot{
		Profile: frozen,
		Config:  cfg,
		SavedAt: at,
	}
}
