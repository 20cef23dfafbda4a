package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raterudder/gridcalc/pkg/calculator"
	"github.com/raterudder/gridcalc/pkg/reliability"
	"github.com/raterudder/gridcalc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleReliabilityBaseline(t *testing.T) {
	t.Run("Default Constants", func(t *testing.T) {
		srv := newTestServer(t)
		req := httptest.NewRequest("GET", "/api/reliability/baseline", nil)
		w := httptest.NewRecorder()
		srv.setupHandler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var res types.ReliabilityResults
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, reliability.Baseline(), res)
	})

	t.Run("Configured Constants", func(t *testing.T) {
		c := types.DefaultReliabilityConstants()
		c.ConnectionCount = 2
		calc, err := calculator.NewLocal(c)
		require.NoError(t, err)
		srv := &Server{calc: calc}

		req := httptest.NewRequest("GET", "/api/reliability/baseline", nil)
		w := httptest.NewRecorder()
		srv.handleReliabilityBaseline(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var res types.ReliabilityResults
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, reliability.ComputeBaseline(c), res)
		assert.InEpsilon(t, 0.175, res.TotalFailureRate, 1e-9)
	})
}

func TestHandleReliabilityConstants(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest("GET", "/api/reliability/constants", nil)
	w := httptest.NewRecorder()
	srv.setupHandler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var c types.ReliabilityConstants
	require.NoError(t, json.NewDecoder(w.Body).Decode(&c))
	assert.Equal(t, types.DefaultReliabilityConstants(), c)
}

func TestHandleOutageCost(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.setupHandler()
	reference := reliability.ComputeOutageCost(types.DefaultOutageCostInputs())

	t.Run("Query Defaults", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reliability/outage-cost", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var res types.OutageCostResults
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, reference, res)
	})

	t.Run("Query Custom Values", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reliability/outage-cost?unitCostEmergency=10&unitCostPlanned=5&failureRate=2&meanRepairTimeFraction=0.5&plannedOutageCoefficient=0.25&peakLoad=100&utilizationHours=1000", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var res types.OutageCostResults
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, types.OutageCostResults{
			ExpectedEmergencyEnergyDeficit: 100000,
			ExpectedPlannedEnergyDeficit:   25000,
			ExpectedOutageCost:             1125000,
		}, res)
	})

	t.Run("Display Format", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reliability/outage-cost?format=display", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var res types.OutageCostResults
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, 14863.1, res.ExpectedEmergencyEnergyDeficit)
		assert.Equal(t, 132116.48, res.ExpectedPlannedEnergyDeficit)
		assert.Equal(t, 2676019.3, res.ExpectedOutageCost)
	})

	t.Run("POST JSON", func(t *testing.T) {
		body, err := json.Marshal(types.DefaultOutageCostInputs())
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/api/reliability/outage-cost", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var res types.OutageCostResults
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, reference, res)
	})

	t.Run("POST Negative Values Propagate", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/reliability/outage-cost", bytes.NewBufferString(`{"unitCostEmergency":2,"unitCostPlanned":1,"failureRate":-1,"meanRepairTimeFraction":0.5,"plannedOutageCoefficient":0.5,"peakLoad":10,"utilizationHours":10}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var res types.OutageCostResults
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, -50.0, res.ExpectedOutageCost)
	})

	t.Run("POST Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/reliability/outage-cost", bytes.NewBufferString(`[]`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
