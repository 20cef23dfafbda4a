// Package solar calculates the expected profit of a solar plant selling into
// a green auction, where energy delivered outside the forecast tolerance band
// is penalized.
package solar

import (
	"fmt"
	"math"

	"github.com/raterudder/gridcalc/pkg/numeric"
	"github.com/raterudder/gridcalc/pkg/types"
)

const (
	// BandLower and BandUpper bound the power (MW) that counts as matching
	// the forecast. They are fixed for the 5 MW reference plant and do not
	// follow AveragePower.
	BandLower = 4.75
	BandUpper = 5.25

	// IntegrationSteps is the step count used for the band integral.
	IntegrationSteps = 1000

	// ReferenceHours is the window the energy is computed over.
	ReferenceHours = 24.0
)

// ComputeProfit calculates revenue, penalty and profit before and after the
// forecast improvement.
func ComputeProfit(in types.SolarInputs) (types.SolarResults, error) {
	before, err := Scenario(in.AveragePower, in.SigmaBefore, in.Tariff)
	if err != nil {
		return types.SolarResults{}, fmt.Errorf("sigma before: %w", err)
	}
	after, err := Scenario(in.AveragePower, in.SigmaAfter, in.Tariff)
	if err != nil {
		return types.SolarResults{}, fmt.Errorf("sigma after: %w", err)
	}

	res := types.SolarResults{
		RevenueBefore: before.Revenue,
		PenaltyBefore: before.Penalty,
		ProfitBefore:  before.Profit,
		RevenueAfter:  after.Revenue,
		PenaltyAfter:  after.Penalty,
		ProfitAfter:   after.Profit,
	}
	res.ImprovementAbsolute, res.ImprovementPercent = Improvement(res.ProfitBefore, res.ProfitAfter)
	return res, nil
}

// Scenario calculates the breakdown for a single forecast error.
func Scenario(averagePower, sigma, tariff float64) (types.SolarScenario, error) {
	// NaN fails this check as well
	if !(sigma > 0) {
		return types.SolarScenario{}, fmt.Errorf("sigma must be positive, got %v: %w", sigma, types.ErrInvalidArgument)
	}

	deltaW, err := numeric.Integrate(numeric.GaussianDensity(averagePower, sigma), BandLower, BandUpper, IntegrationSteps)
	if err != nil {
		return types.SolarScenario{}, fmt.Errorf("failed to integrate power band: %w", err)
	}

	s := types.SolarScenario{
		Sigma:  sigma,
		DeltaW: deltaW,
	}
	s.EnergySold = averagePower * ReferenceHours * deltaW
	s.Revenue = s.EnergySold * tariff
	s.EnergyPenalized = averagePower * ReferenceHours * (1.0 - deltaW)
	// the same tariff is charged back for energy outside the band
	s.Penalty = s.EnergyPenalized * tariff
	s.Profit = s.Revenue - s.Penalty
	return s, nil
}

// Improvement returns how much the profit changed and that change as a
// percent of the original profit's magnitude. The percent is 0 when the
// original profit is 0.
func Improvement(profitBefore, profitAfter float64) (float64, float64) {
	delta := profitAfter - profitBefore
	if profitBefore == 0 {
		return delta, 0
	}
	return delta, delta / math.Abs(profitBefore) * 100
}
