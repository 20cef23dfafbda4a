package calculator

import (
	"context"

	"github.com/raterudder/gridcalc/pkg/types"
)

// Calculator runs the solar and reliability calculations.
type Calculator interface {
	// SolarProfit returns the profit before and after the forecast
	// improvement.
	SolarProfit(ctx context.Context, in types.SolarInputs) (types.SolarResults, error)

	// ReliabilityConstants returns the constants ReliabilityBaseline uses.
	ReliabilityConstants(ctx context.Context) (types.ReliabilityConstants, error)

	// ReliabilityBaseline compares the single and double circuit systems.
	ReliabilityBaseline(ctx context.Context) (types.ReliabilityResults, error)

	// OutageCost returns the expected cost of undelivered energy.
	OutageCost(ctx context.Context, in types.OutageCostInputs) (types.OutageCostResults, error)
}
