package calculatormock

import (
	"context"

	"github.com/raterudder/gridcalc/pkg/calculator"
	"github.com/raterudder/gridcalc/pkg/types"
	"github.com/stretchr/testify/mock"
)

type MockCalculator struct {
	mock.Mock
}

var _ calculator.Calculator = (*MockCalculator)(nil)

func (m *MockCalculator) SolarProfit(ctx context.Context, in types.SolarInputs) (types.SolarResults, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(types.SolarResults), args.Error(1)
}

func (m *MockCalculator) ReliabilityConstants(ctx context.Context) (types.ReliabilityConstants, error) {
	args := m.Called(ctx)
	return args.Get(0).(types.ReliabilityConstants), args.Error(1)
}

func (m *MockCalculator) ReliabilityBaseline(ctx context.Context) (types.ReliabilityResults, error) {
	args := m.Called(ctx)
	return args.Get(0).(types.ReliabilityResults), args.Error(1)
}

func (m *MockCalculator) OutageCost(ctx context.Context, in types.OutageCostInputs) (types.OutageCostResults, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(types.OutageCostResults), args.Error(1)
}
