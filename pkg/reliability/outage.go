package reliability

import (
	"github.com/raterudder/gridcalc/pkg/types"
)

// ComputeOutageCost estimates the energy not delivered because of emergency
// and planned outages and what that shortfall costs. Inputs are not
// validated.
func ComputeOutageCost(in types.OutageCostInputs) types.OutageCostResults {
	var res types.OutageCostResults
	res.ExpectedEmergencyEnergyDeficit = in.FailureRate * in.MeanRepairTimeFraction * in.PeakLoad * in.UtilizationHours
	res.ExpectedPlannedEnergyDeficit = in.PlannedOutageCoefficient * in.PeakLoad * in.UtilizationHours
	res.ExpectedOutageCost = in.UnitCostEmergency*res.ExpectedEmergencyEnergyDeficit +
		in.UnitCostPlanned*res.ExpectedPlannedEnergyDeficit
	return res
}
