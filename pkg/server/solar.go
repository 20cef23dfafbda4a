package server

import (
	"net/http"

	"github.com/raterudder/gridcalc/pkg/input"
	"github.com/raterudder/gridcalc/pkg/types"
)

// handleSolarProfitQuery reads the inputs from the query string. Missing or
// malformed values fall back to the reference plant.
func (s *Server) handleSolarProfitQuery(w http.ResponseWriter, r *http.Request) {
	s.solarProfit(w, r, input.Solar(r.URL.Query().Get))
}

func (s *Server) handleSolarProfit(w http.ResponseWriter, r *http.Request) {
	var in types.SolarInputs
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.solarProfit(w, r, in)
}

func (s *Server) solarProfit(w http.ResponseWriter, r *http.Request, in types.SolarInputs) {
	res, err := s.calc.SolarProfit(r.Context(), in)
	if err != nil {
		writeCalcError(w, r, "failed to calculate solar profit", err)
		return
	}
	if wantsDisplay(r) {
		res = displaySolar(res)
	}
	s.writeResult(w, r, res)
}
