package reliability

import (
	"testing"

	"github.com/raterudder/gridcalc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBaselineReference(t *testing.T) {
	res := Baseline()

	// 0.007*10 + 0.015 + 0.01 + 0.02 + 6*0.03
	assert.InEpsilon(t, 0.295, res.TotalFailureRate, 1e-9)
	// (0.07*10 + 0.015*100 + 0.01*30 + 0.02*15 + 0.18*2) / 0.295
	assert.InEpsilon(t, 3.16/0.295, res.MeanRestorationTime, 1e-9)
	assert.InDelta(t, 10.7, res.MeanRestorationTime, 0.05)
	assert.InEpsilon(t, 3.16/8760, res.EmergencyOutageCoefficient, 1e-9)
	assert.InEpsilon(t, 1.2*43/8760, res.PlannedOutageCoefficient, 1e-9)
	assert.InEpsilon(t, 2*0.295*(3.16/8760+1.2*43/8760), res.DoubleCircuitFailureRate, 1e-9)
	assert.InEpsilon(t, 2*0.295*(3.16/8760+1.2*43/8760)+0.02, res.DoubleCircuitWithBusTieFailureRate, 1e-9)

	assert.InEpsilon(t, 0.0036882, res.DoubleCircuitFailureRate, 1e-4)
	assert.InEpsilon(t, 0.0236882, res.DoubleCircuitWithBusTieFailureRate, 1e-4)
}

func TestComputeBaselineDoubleCircuitIsMoreReliable(t *testing.T) {
	res := Baseline()
	assert.Less(t, res.DoubleCircuitFailureRate, res.DoubleCircuitWithBusTieFailureRate)
	assert.Less(t, res.DoubleCircuitWithBusTieFailureRate*10, res.TotalFailureRate)
}

func TestComputeBaselineDeterministic(t *testing.T) {
	assert.Equal(t, Baseline(), Baseline())

	c := types.DefaultReliabilityConstants()
	assert.Equal(t, ComputeBaseline(c), ComputeBaseline(c))
	assert.Equal(t, types.DefaultReliabilityConstants(), c, "constants must not be modified")
}

func TestComputeBaselineCustomConstants(t *testing.T) {
	// a single component makes the weighted average its own repair time
	c := types.ReliabilityConstants{
		TransformerFailureRate:  0.02,
		TransformerRepairHours:  50,
		PlannedMaintenanceHours: 10,
	}
	res := ComputeBaseline(c)
	assert.InEpsilon(t, 0.02, res.TotalFailureRate, 1e-12)
	assert.InEpsilon(t, 50.0, res.MeanRestorationTime, 1e-12)
	assert.InEpsilon(t, 0.02*50/8760, res.EmergencyOutageCoefficient, 1e-12)
	assert.InEpsilon(t, 12.0/8760, res.PlannedOutageCoefficient, 1e-12)
	assert.Equal(t, res.DoubleCircuitFailureRate, res.DoubleCircuitWithBusTieFailureRate)
}

func TestComputeBaselineChecked(t *testing.T) {
	res, err := ComputeBaselineChecked(types.DefaultReliabilityConstants())
	require.NoError(t, err)
	assert.Equal(t, Baseline(), res)

	_, err = ComputeBaselineChecked(types.ReliabilityConstants{PlannedMaintenanceHours: 43})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}
