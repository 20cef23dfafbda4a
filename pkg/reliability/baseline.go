// Package reliability compares single and double circuit supply systems and
// estimates the cost of energy that is not delivered because of outages.
package reliability

import (
	"github.com/raterudder/gridcalc/pkg/types"
)

// plannedOutageFactor scales the longest planned outage to the yearly
// planned outage coefficient.
const plannedOutageFactor = 1.2

// Baseline computes the reliability results for the built-in constants.
func Baseline() types.ReliabilityResults {
	return ComputeBaseline(types.DefaultReliabilityConstants())
}

// ComputeBaselineChecked validates the constants before computing the
// results.
func ComputeBaselineChecked(c types.ReliabilityConstants) (types.ReliabilityResults, error) {
	if err := c.Validate(); err != nil {
		return types.ReliabilityResults{}, err
	}
	return ComputeBaseline(c), nil
}

// ComputeBaseline computes the failure rate and outage coefficients of the
// single circuit system and the failure rates of the double circuit system.
// The constants must have a positive total failure rate, see
// ComputeBaselineChecked.
func ComputeBaseline(c types.ReliabilityConstants) types.ReliabilityResults {
	line := c.LineFailureRatePerKm * c.LineLengthKm
	busbar := c.ConnectionCount * c.BusbarFailureRate

	var res types.ReliabilityResults
	res.TotalFailureRate = line +
		c.TransformerFailureRate +
		c.Breaker110FailureRate +
		c.Breaker10FailureRate +
		busbar

	// each repair time is weighted by how often that component fails
	weighted := line*c.LineRepairHours +
		c.TransformerFailureRate*c.TransformerRepairHours +
		c.Breaker110FailureRate*c.Breaker110RepairHours +
		c.Breaker10FailureRate*c.Breaker10RepairHours +
		busbar*c.BusbarRepairHours
	res.MeanRestorationTime = weighted / res.TotalFailureRate

	res.EmergencyOutageCoefficient = res.TotalFailureRate * res.MeanRestorationTime / types.HoursPerYear
	res.PlannedOutageCoefficient = plannedOutageFactor * (c.PlannedMaintenanceHours / types.HoursPerYear)

	// both circuits have to be out at the same time
	res.DoubleCircuitFailureRate = 2 * res.TotalFailureRate * (res.EmergencyOutageCoefficient + res.PlannedOutageCoefficient)
	// the sectional breaker on the 10 kV bus remains a single point of failure
	res.DoubleCircuitWithBusTieFailureRate = res.DoubleCircuitFailureRate + c.Breaker10FailureRate
	return res
}
