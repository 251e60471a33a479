package services

import (
	"math"

	"github.com/ecowatt/solardevis/internal/models"
)

// peakSunHours is the regional insolation assumption: equivalent hours per
// day of standard-intensity sunlight.
const peakSunHours = 5.2

// SizeSystem converts a daily energy requirement into a recommended array
// capacity and panel count. The efficiency factor is floored at 0.1 and the
// panel wattage at 1 so a misconfigured form degrades to an oversized
// recommendation instead of a division blow-up. Partial panels are not
// purchasable: the count always rounds up.
func SizeSystem(dailyKWh float64, panelPowerW int, efficiencyPercent float64) models.SizingResult {
	basicKWp := dailyKWh / peakSunHours
	factor := math.Max(0.1, efficiencyPercent/100)
	neededKWp := basicKWp / factor

	watt := panelPowerW
	if watt < 1 {
		watt = 1
	}
	panelCount := int(math.Ceil(neededKWp * 1000 / float64(watt)))

	return models.SizingResult{
		NeededKWp:  round2(neededKWp),
		PanelCount: panelCount,
	}
}
