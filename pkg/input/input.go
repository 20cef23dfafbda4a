// Package input turns user supplied text into calculation inputs. Text that
// does not parse as a number falls back to the reference value for that
// field so a calculation can always be shown.
package input

import (
	"strconv"
	"strings"

	"github.com/raterudder/gridcalc/pkg/types"
)

// Getter returns the raw text for a named field, or "" when it is missing.
// url.Values.Get satisfies it.
type Getter func(name string) string

// Field names shared by query strings and CLI flags.
const (
	FieldAveragePower = "averagePower"
	FieldSigmaBefore  = "sigmaBefore"
	FieldSigmaAfter   = "sigmaAfter"
	FieldTariff       = "tariff"

	FieldUnitCostEmergency        = "unitCostEmergency"
	FieldUnitCostPlanned          = "unitCostPlanned"
	FieldFailureRate              = "failureRate"
	FieldMeanRepairTimeFraction   = "meanRepairTimeFraction"
	FieldPlannedOutageCoefficient = "plannedOutageCoefficient"
	FieldPeakLoad                 = "peakLoad"
	FieldUtilizationHours         = "utilizationHours"
)

// Float parses s as a number and returns def if it can't.
func Float(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// Solar reads the solar inputs from get.
func Solar(get Getter) types.SolarInputs {
	def := types.DefaultSolarInputs()
	return types.SolarInputs{
		AveragePower: Float(get(FieldAveragePower), def.AveragePower),
		SigmaBefore:  Float(get(FieldSigmaBefore), def.SigmaBefore),
		SigmaAfter:   Float(get(FieldSigmaAfter), def.SigmaAfter),
		Tariff:       Float(get(FieldTariff), def.Tariff),
	}
}

// OutageCost reads the outage cost inputs from get.
func OutageCost(get Getter) types.OutageCostInputs {
	def := types.DefaultOutageCostInputs()
	return types.OutageCostInputs{
		UnitCostEmergency:        Float(get(FieldUnitCostEmergency), def.UnitCostEmergency),
		UnitCostPlanned:          Float(get(FieldUnitCostPlanned), def.UnitCostPlanned),
		FailureRate:              Float(get(FieldFailureRate), def.FailureRate),
		MeanRepairTimeFraction:   Float(get(FieldMeanRepairTimeFraction), def.MeanRepairTimeFraction),
		PlannedOutageCoefficient: Float(get(FieldPlannedOutageCoefficient), def.PlannedOutageCoefficient),
		PeakLoad:                 Float(get(FieldPeakLoad), def.PeakLoad),
		UtilizationHours:         Float(get(FieldUtilizationHours), def.UtilizationHours),
	}
}
