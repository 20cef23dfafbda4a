package types

import "fmt"

// HoursPerYear is used to turn outage hours into a fraction of a year.
const HoursPerYear = 8760.0

// ReliabilityConstants describe the components of a single-circuit supply
// system. Failure rates are per year and repair times are in hours.
type ReliabilityConstants struct {
	// Overhead line, rate is per km
	LineFailureRatePerKm float64 `json:"lineFailureRatePerKm"`
	LineRepairHours      float64 `json:"lineRepairHours"`
	LineLengthKm         float64 `json:"lineLengthKm"`

	TransformerFailureRate float64 `json:"transformerFailureRate"`
	TransformerRepairHours float64 `json:"transformerRepairHours"`

	Breaker110FailureRate float64 `json:"breaker110FailureRate"`
	Breaker110RepairHours float64 `json:"breaker110RepairHours"`

	Breaker10FailureRate float64 `json:"breaker10FailureRate"`
	Breaker10RepairHours float64 `json:"breaker10RepairHours"`

	// Busbar, rate is per connection
	BusbarFailureRate float64 `json:"busbarFailureRate"`
	BusbarRepairHours float64 `json:"busbarRepairHours"`
	ConnectionCount   float64 `json:"connectionCount"`

	// PlannedMaintenanceHours is the longest planned outage per year.
	PlannedMaintenanceHours float64 `json:"plannedMaintenanceHours"`
}

// DefaultReliabilityConstants returns the reference 110/10 kV single-circuit
// system.
func DefaultReliabilityConstants() ReliabilityConstants {
	return ReliabilityConstants{
		LineFailureRatePerKm:    0.007,
		LineRepairHours:         10,
		LineLengthKm:            10,
		TransformerFailureRate:  0.015,
		TransformerRepairHours:  100,
		Breaker110FailureRate:   0.01,
		Breaker110RepairHours:   30,
		Breaker10FailureRate:    0.02,
		Breaker10RepairHours:    15,
		BusbarFailureRate:       0.03,
		BusbarRepairHours:       2,
		ConnectionCount:         6,
		PlannedMaintenanceHours: 43,
	}
}

// Validate checks that the constants describe a system that can fail at all.
// A zero total failure rate would make the mean restoration time undefined.
func (c ReliabilityConstants) Validate() error {
	total := c.LineFailureRatePerKm*c.LineLengthKm +
		c.TransformerFailureRate +
		c.Breaker110FailureRate +
		c.Breaker10FailureRate +
		c.ConnectionCount*c.BusbarFailureRate
	if !(total > 0) {
		return fmt.Errorf("total failure rate must be positive, got %v: %w", total, ErrInvalidArgument)
	}
	return nil
}

// ReliabilityResults compares the single-circuit baseline with a double
// circuit system.
type ReliabilityResults struct {
	TotalFailureRate                   float64 `json:"totalFailureRate"`                   // per year
	MeanRestorationTime                float64 `json:"meanRestorationTime"`                // hours
	EmergencyOutageCoefficient         float64 `json:"emergencyOutageCoefficient"`         // fraction of a year
	PlannedOutageCoefficient           float64 `json:"plannedOutageCoefficient"`           // fraction of a year
	DoubleCircuitFailureRate           float64 `json:"doubleCircuitFailureRate"`           // per year
	DoubleCircuitWithBusTieFailureRate float64 `json:"doubleCircuitWithBusTieFailureRate"` // per year
}

// OutageCostInputs are the inputs for the expected under-delivered energy
// cost.
type OutageCostInputs struct {
	UnitCostEmergency        float64 `json:"unitCostEmergency"`        // per kWh
	UnitCostPlanned          float64 `json:"unitCostPlanned"`          // per kWh
	FailureRate              float64 `json:"failureRate"`              // per year
	MeanRepairTimeFraction   float64 `json:"meanRepairTimeFraction"`   // fraction of a year
	PlannedOutageCoefficient float64 `json:"plannedOutageCoefficient"` // fraction of a year
	PeakLoad                 float64 `json:"peakLoad"`                 // kW
	UtilizationHours         float64 `json:"utilizationHours"`         // hours
}

// DefaultOutageCostInputs returns the reference transformer substation
// scenario.
func DefaultOutageCostInputs() OutageCostInputs {
	return OutageCostInputs{
		UnitCostEmergency:        23.6,
		UnitCostPlanned:          17.6,
		FailureRate:              0.01,
		MeanRepairTimeFraction:   0.045,
		PlannedOutageCoefficient: 0.004,
		PeakLoad:                 5120,
		UtilizationHours:         6451,
	}
}

// OutageCostResults is the response type for the outage cost calculation.
type OutageCostResults struct {
	ExpectedEmergencyEnergyDeficit float64 `json:"expectedEmergencyEnergyDeficit"` // kWh
	ExpectedPlannedEnergyDeficit   float64 `json:"expectedPlannedEnergyDeficit"`   // kWh
	ExpectedOutageCost             float64 `json:"expectedOutageCost"`
}
