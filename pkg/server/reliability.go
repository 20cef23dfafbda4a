package server

import (
	"net/http"

	"github.com/raterudder/gridcalc/pkg/input"
	"github.com/raterudder/gridcalc/pkg/types"
)

func (s *Server) handleReliabilityConstants(w http.ResponseWriter, r *http.Request) {
	c, err := s.calc.ReliabilityConstants(r.Context())
	if err != nil {
		writeCalcError(w, r, "failed to get reliability constants", err)
		return
	}
	s.writeResult(w, r, c)
}

func (s *Server) handleReliabilityBaseline(w http.ResponseWriter, r *http.Request) {
	res, err := s.calc.ReliabilityBaseline(r.Context())
	if err != nil {
		writeCalcError(w, r, "failed to calculate reliability baseline", err)
		return
	}
	// the coefficients are tiny fractions so they are never rounded for
	// display
	s.writeResult(w, r, res)
}

// handleOutageCostQuery reads the inputs from the query string. Missing or
// malformed values fall back to the reference substation.
func (s *Server) handleOutageCostQuery(w http.ResponseWriter, r *http.Request) {
	s.outageCost(w, r, input.OutageCost(r.URL.Query().Get))
}

func (s *Server) handleOutageCost(w http.ResponseWriter, r *http.Request) {
	var in types.OutageCostInputs
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.outageCost(w, r, in)
}

func (s *Server) outageCost(w http.ResponseWriter, r *http.Request, in types.OutageCostInputs) {
	res, err := s.calc.OutageCost(r.Context(), in)
	if err != nil {
		writeCalcError(w, r, "failed to calculate outage cost", err)
		return
	}
	if wantsDisplay(r) {
		res = displayOutageCost(res)
	}
	s.writeResult(w, r, res)
}
