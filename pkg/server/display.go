package server

import (
	"net/http"

	"github.com/raterudder/gridcalc/pkg/common"
	"github.com/raterudder/gridcalc/pkg/types"
)

// wantsDisplay returns true if the client asked for values rounded the way
// they are shown to people.
func wantsDisplay(r *http.Request) bool {
	return r.URL.Query().Get("format") == "display"
}

func displaySolar(res types.SolarResults) types.SolarResults {
	return types.SolarResults{
		RevenueBefore:       common.Round(res.RevenueBefore, common.DisplayPlaces),
		PenaltyBefore:       common.Round(res.PenaltyBefore, common.DisplayPlaces),
		ProfitBefore:        common.Round(res.ProfitBefore, common.DisplayPlaces),
		RevenueAfter:        common.Round(res.RevenueAfter, common.DisplayPlaces),
		PenaltyAfter:        common.Round(res.PenaltyAfter, common.DisplayPlaces),
		ProfitAfter:         common.Round(res.ProfitAfter, common.DisplayPlaces),
		ImprovementAbsolute: common.Round(res.ImprovementAbsolute, common.DisplayPlaces),
		// percent is shown with a single decimal
		ImprovementPercent: common.Round(res.ImprovementPercent, 1),
	}
}

func displayOutageCost(res types.OutageCostResults) types.OutageCostResults {
	return types.OutageCostResults{
		ExpectedEmergencyEnergyDeficit: common.Round(res.ExpectedEmergencyEnergyDeficit, common.DisplayPlaces),
		ExpectedPlannedEnergyDeficit:   common.Round(res.ExpectedPlannedEnergyDeficit, common.DisplayPlaces),
		ExpectedOutageCost:             common.Round(res.ExpectedOutageCost, common.DisplayPlaces),
	}
}
