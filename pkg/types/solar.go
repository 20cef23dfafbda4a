package types

// SolarInputs are the inputs to the solar profit calculation.
type SolarInputs struct {
	// AveragePower is the plant's average power in MW.
	AveragePower float64 `json:"averagePower"`
	// SigmaBefore is the forecast error standard deviation (MW) before the
	// prediction system was improved.
	SigmaBefore float64 `json:"sigmaBefore"`
	// SigmaAfter is the forecast error standard deviation (MW) after the
	// improvement.
	SigmaAfter float64 `json:"sigmaAfter"`
	// Tariff is the green auction price per kWh.
	Tariff float64 `json:"tariff"`
}

// DefaultSolarInputs returns the reference 5 MW plant.
func DefaultSolarInputs() SolarInputs {
	return SolarInputs{
		AveragePower: 5.0,
		SigmaBefore:  1.0,
		SigmaAfter:   0.25,
		Tariff:       7.0,
	}
}

// SolarScenario is the breakdown for a single forecast error value.
type SolarScenario struct {
	Sigma           float64 `json:"sigma"`
	DeltaW          float64 `json:"deltaW"`          // share of energy inside the tolerance band
	EnergySold      float64 `json:"energySold"`      // AveragePower * 24 * DeltaW
	Revenue         float64 `json:"revenue"`         // EnergySold * Tariff
	EnergyPenalized float64 `json:"energyPenalized"` // AveragePower * 24 * (1 - DeltaW)
	Penalty         float64 `json:"penalty"`         // EnergyPenalized * Tariff
	Profit          float64 `json:"profit"`          // Revenue - Penalty
}

// SolarResults is the response type for the solar profit calculation.
type SolarResults struct {
	RevenueBefore float64 `json:"revenueBefore"`
	PenaltyBefore float64 `json:"penaltyBefore"`
	ProfitBefore  float64 `json:"profitBefore"`
	RevenueAfter  float64 `json:"revenueAfter"`
	PenaltyAfter  float64 `json:"penaltyAfter"`
	ProfitAfter   float64 `json:"profitAfter"`

	// ImprovementAbsolute is ProfitAfter - ProfitBefore.
	ImprovementAbsolute float64 `json:"improvementAbsolute"`
	// ImprovementPercent is the improvement relative to |ProfitBefore|, or 0
	// when ProfitBefore is 0.
	ImprovementPercent float64 `json:"improvementPercent"`
}
