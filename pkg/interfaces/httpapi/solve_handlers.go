package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vsinha/supplyflow/pkg/application/dto"
	"github.com/vsinha/supplyflow/pkg/application/services/allocation"
	"github.com/vsinha/supplyflow/pkg/application/services/ranking"
	"github.com/vsinha/supplyflow/pkg/application/services/scoring"
	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/telemetry"
)

// solvePayload is the wire form of a solve request. Weights and min_batch
// fall back to the configured defaults when omitted.
type solvePayload struct {
	Category    string           `json:"category_id"`
	Destination string           `json:"destination"`
	Volume      int64            `json:"volume"`
	Weights     *scoring.Weights `json:"weights"`
	MinBatch    *int64           `json:"min_batch"`
	Rank        bool             `json:"rank"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var payload solvePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(r.Context(), w, NewError("malformed_request",
			"request body is not valid JSON: "+err.Error(), http.StatusBadRequest))
		return
	}

	req := dto.SolveRequest{
		Category:    entities.CategoryID(payload.Category),
		Destination: entities.CountryCode(payload.Destination),
		Volume:      entities.Units(payload.Volume),
		Weights: scoring.Weights{
			Cost:   s.cfg.Defaults.CostWeight,
			Time:   s.cfg.Defaults.TimeWeight,
			Region: s.cfg.Defaults.RegionWeight,
		},
		MinBatch: entities.Units(s.cfg.Defaults.MinBatch),
	}
	if payload.Weights != nil {
		req.Weights = *payload.Weights
	}
	if payload.MinBatch != nil {
		req.MinBatch = entities.Units(*payload.MinBatch)
	}
	if err := req.Validate(); err != nil {
		WriteError(r.Context(), w, NewError("malformed_request", err.Error(), http.StatusBadRequest))
		return
	}

	// One snapshot for the whole request, including ranking.
	store := s.currentStore()
	optimizer := allocation.NewOptimizer(store, s.solver, s.logger, allocation.Config{
		TimeLimit:    s.cfg.Solver.TimeLimit(),
		NoiseEpsilon: s.cfg.Solver.NoiseEpsilon,
	})

	result, err := optimizer.Solve(r.Context(), req)
	if err != nil {
		WriteError(r.Context(), w, NewError("solve_failed", err.Error(), http.StatusInternalServerError))
		return
	}

	s.recordSolve(result)

	if !payload.Rank {
		writeJSON(w, http.StatusOK, result)
		return
	}

	ranked, err := ranking.NewRanker(store).Rank(result, true)
	if err != nil {
		WriteError(r.Context(), w, NewError("rank_failed", err.Error(), http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"result":  result,
		"ranking": ranked,
	})
}

// recordSolve writes the telemetry row for a finished solve. Collection
// failures are logged, never surfaced to the caller.
func (s *Server) recordSolve(result *dto.SolveResult) {
	if s.collector == nil {
		return
	}
	err := s.collector.RecordSolve(telemetry.SolveEvent{
		ID:           result.ID,
		Category:     string(result.Category),
		Destination:  string(result.Destination),
		Volume:       int64(result.Volume),
		Status:       result.Status.String(),
		Entries:      len(result.Allocations),
		TotalCost:    result.TotalCost.InexactFloat64(),
		DurationMs:   result.DurationMs,
		CostWeight:   result.Weights.Cost,
		TimeWeight:   result.Weights.Time,
		RegionWeight: result.Weights.Region,
	})
	if err != nil {
		s.logger.Warn("failed to record solve event",
			zap.String("solve_id", result.ID), zap.Error(err))
	}
}
