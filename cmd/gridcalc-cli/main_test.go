package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/raterudder/gridcalc/pkg/calculator"
	"github.com/raterudder/gridcalc/pkg/input"
	"github.com/raterudder/gridcalc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) calculator.Calculator {
	t.Helper()
	c, err := calculator.NewLocal(types.DefaultReliabilityConstants())
	require.NoError(t, err)
	return c
}

func noValues(string) string { return "" }

func TestRunText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, newLocal(t), "all", "text", noValues))

	out := buf.String()
	assert.Contains(t, out, "SOLAR")
	assert.Contains(t, out, "BASELINE")
	assert.Contains(t, out, "OUTAGE")
	assert.Contains(t, out, "308.54")
	assert.Contains(t, out, "-507.70")
	assert.Contains(t, out, "0.295000")
	assert.Contains(t, out, "2676019.30")
}

func TestRunJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, newLocal(t), "outage", "json", noValues))

	var got map[string]types.OutageCostResults
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Contains(t, got, "outage")
	assert.InEpsilon(t, 14863.104, got["outage"].ExpectedEmergencyEnergyDeficit, 1e-12)
}

func TestRunInputs(t *testing.T) {
	var buf bytes.Buffer
	get := func(field string) string {
		if field == input.FieldSigmaAfter {
			return "0"
		}
		return ""
	}
	err := run(context.Background(), &buf, newLocal(t), "solar", "json", get)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestRunUnknown(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, run(context.Background(), &buf, newLocal(t), "wind", "text", noValues))
	assert.Error(t, run(context.Background(), &buf, newLocal(t), "solar", "xml", noValues))
}

func TestRunNonFinite(t *testing.T) {
	get := func(field string) string {
		switch field {
		case input.FieldPeakLoad, input.FieldUtilizationHours:
			return "1e300"
		}
		return ""
	}
	for _, output := range []string{"text", "json"} {
		var buf bytes.Buffer
		err := run(context.Background(), &buf, newLocal(t), "outage", output, get)
		assert.Error(t, err, output)
	}
}
