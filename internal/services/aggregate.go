package services

import "github.com/ecowatt/solardevis/internal/models"

// ComputeTotals derives the sizing totals of an item set. An item
// contributes only when its inclusion flag is set and its quantity is
// positive; duration plays no role in the peak figure.
func ComputeTotals(items []models.LineItem) (dailyKWh, maxW float64) {
	for _, it := range items {
		if !it.IncludedInPeak || it.Quantity <= 0 {
			continue
		}
		dailyKWh += it.HourlyKWh * it.DurationH * float64(it.Quantity)
		maxW += it.PeakW * float64(it.Quantity)
	}
	return dailyKWh, maxW
}

// GroupByClient folds a flat import into one profile per client+address.
// Matching is exact and case-sensitive. First-seen order is preserved for
// both groups and the items inside each group, so the dashboard lists
// clients in file order.
func GroupByClient(entries []models.LineItem) []models.ClientProfile {
	byKey := map[string]int{}
	var profiles []models.ClientProfile

	for _, e := range entries {
		key := e.Client + "|" + e.Address
		idx, ok := byKey[key]
		if !ok {
			idx = len(profiles)
			byKey[key] = idx
			profiles = append(profiles, models.ClientProfile{
				Name:         e.Client,
				Address:      e.Address,
				SiteName:     e.Site,
				VisitDate:    e.VisitDate,
				AgentName:    firstNonEmpty(e.AgentName, e.Agent),
				Observations: e.Observations,
			})
		}
		profiles[idx].Items = append(profiles[idx].Items, e)
	}

	for i := range profiles {
		profiles[i].TotalDailyKWh, profiles[i].TotalMaxW = ComputeTotals(profiles[i].Items)
	}
	return profiles
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
