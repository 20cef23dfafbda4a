package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/gridcalc/pkg/calculator"
	"github.com/raterudder/gridcalc/pkg/common"
	"github.com/raterudder/gridcalc/pkg/input"
	"github.com/raterudder/gridcalc/pkg/log"
)

// inputFlags maps input field names to their flag names.
var inputFlags = map[string]string{
	input.FieldAveragePower:             "average-power",
	input.FieldSigmaBefore:              "sigma-before",
	input.FieldSigmaAfter:               "sigma-after",
	input.FieldTariff:                   "tariff",
	input.FieldUnitCostEmergency:        "unit-cost-emergency",
	input.FieldUnitCostPlanned:          "unit-cost-planned",
	input.FieldFailureRate:              "failure-rate",
	input.FieldMeanRepairTimeFraction:   "mean-repair-time-fraction",
	input.FieldPlannedOutageCoefficient: "planned-outage-coefficient",
	input.FieldPeakLoad:                 "peak-load",
	input.FieldUtilizationHours:         "utilization-hours",
}

func main() {
	c := calculator.Configured()

	calc := lflag.String("calc", "all", "Calculation to run (solar, baseline, outage, all)")
	output := lflag.String("output", "text", "Output format (text, json)")
	values := make(map[string]*string, len(inputFlags))
	for field, name := range inputFlags {
		values[field] = lflag.String(name, "", "Value for "+field+" (invalid or empty values use the reference scenario)")
	}

	lflag.Configure()

	get := func(field string) string {
		if v, ok := values[field]; ok {
			return *v
		}
		return ""
	}

	ctx := context.Background()
	if err := run(ctx, os.Stdout, c, *calc, *output, get); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "calculation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, c calculator.Calculator, calc, output string, get input.Getter) error {
	results := map[string]any{}

	if calc == "solar" || calc == "all" {
		res, err := c.SolarProfit(ctx, input.Solar(get))
		if err != nil {
			return fmt.Errorf("solar profit: %w", err)
		}
		results["solar"] = res
	}
	if calc == "baseline" || calc == "all" {
		res, err := c.ReliabilityBaseline(ctx)
		if err != nil {
			return fmt.Errorf("reliability baseline: %w", err)
		}
		results["baseline"] = res
	}
	if calc == "outage" || calc == "all" {
		res, err := c.OutageCost(ctx, input.OutageCost(get))
		if err != nil {
			return fmt.Errorf("outage cost: %w", err)
		}
		results["outage"] = res
	}
	if len(results) == 0 {
		return fmt.Errorf("unknown calculation: %s", calc)
	}

	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "text":
		return writeText(w, results)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

func writeText(w io.Writer, results map[string]any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range []string{"solar", "baseline", "outage"} {
		res, ok := results[name]
		if !ok {
			continue
		}
		// round trip through JSON so every result type prints the same way
		b, err := json.Marshal(res)
		if err != nil {
			return err
		}
		var fields map[string]float64
		if err := json.Unmarshal(b, &fields); err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\n", strings.ToUpper(name))
		for _, key := range slices.Sorted(maps.Keys(fields)) {
			places := int32(common.DisplayPlaces)
			// failure rates and coefficients are far below 0.01
			if name == "baseline" {
				places = 6
			}
			fmt.Fprintf(tw, "  %s\t%s\n", key, common.FormatFixed(fields[key], places))
		}
	}
	return tw.Flush()
}
