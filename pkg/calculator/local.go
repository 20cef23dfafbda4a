package calculator

import (
	"context"

	"github.com/raterudder/gridcalc/pkg/reliability"
	"github.com/raterudder/gridcalc/pkg/solar"
	"github.com/raterudder/gridcalc/pkg/types"
)

// Local runs the calculations in process.
type Local struct {
	constants types.ReliabilityConstants
}

var _ Calculator = (*Local)(nil)

// NewLocal returns a Local calculator using the given reliability constants.
func NewLocal(constants types.ReliabilityConstants) (*Local, error) {
	if err := constants.Validate(); err != nil {
		return nil, err
	}
	return &Local{constants: constants}, nil
}

// SolarProfit implements the Calculator interface
func (l *Local) SolarProfit(ctx context.Context, in types.SolarInputs) (types.SolarResults, error) {
	return solar.ComputeProfit(in)
}

// ReliabilityConstants implements the Calculator interface
func (l *Local) ReliabilityConstants(ctx context.Context) (types.ReliabilityConstants, error) {
	return l.constants, nil
}

// ReliabilityBaseline implements the Calculator interface
func (l *Local) ReliabilityBaseline(ctx context.Context) (types.ReliabilityResults, error) {
	return reliability.ComputeBaselineChecked(l.constants)
}

// OutageCost implements the Calculator interface
func (l *Local) OutageCost(ctx context.Context, in types.OutageCostInputs) (types.OutageCostResults, error) {
	return reliability.ComputeOutageCost(in), nil
}
