package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/topology"
)

// activeFilterFromQuery parses the optional disabled_factories and
// disabled_hubs parameters (comma-separated ids). Absent parameters leave
// every node active.
func activeFilterFromQuery(r *http.Request) *topology.ActiveFilter {
	rawFactories := r.URL.Query().Get("disabled_factories")
	rawHubs := r.URL.Query().Get("disabled_hubs")
	if rawFactories == "" && rawHubs == "" {
		return nil
	}

	var factories []entities.FactoryID
	for _, id := range strings.Split(rawFactories, ",") {
		if id = strings.TrimSpace(id); id != "" {
			factories = append(factories, entities.FactoryID(id))
		}
	}
	var hubs []entities.HubID
	for _, id := range strings.Split(rawHubs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			hubs = append(hubs, entities.HubID(id))
		}
	}
	return topology.NewActiveFilter(factories, hubs)
}

// writeGraphError maps ErrUnknownNode to 404; anything else is a 500.
func writeGraphError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, topology.ErrUnknownNode) {
		WriteError(ctx, w, NewError("unknown_node", err.Error(), http.StatusNotFound))
		return
	}
	WriteError(ctx, w, NewError("graph_query_failed", err.Error(), http.StatusInternalServerError))
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	factory := entities.FactoryID(chi.URLParam(r, "factoryID"))
	country := entities.CountryCode(chi.URLParam(r, "countryCode"))

	routes, err := s.currentGraph().Routes(factory, country)
	if err != nil {
		writeGraphError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"factory_id":   factory,
		"country_code": country,
		"routes":       routes,
	})
}

func (s *Server) handleImpact(w http.ResponseWriter, r *http.Request) {
	hub := entities.HubID(chi.URLParam(r, "hubID"))

	dependent, err := s.currentGraph().ImpactAnalysis(hub, activeFilterFromQuery(r))
	if err != nil {
		writeGraphError(r.Context(), w, err)
		return
	}
	if dependent == nil {
		dependent = []entities.CountryCode{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"hub_id":                hub,
		"dependent_countries":   dependent,
		"sole_source_for_count": len(dependent),
	})
}

func (s *Server) handleDiversity(w http.ResponseWriter, r *http.Request) {
	country := entities.CountryCode(chi.URLParam(r, "countryCode"))

	counts, err := s.currentGraph().SupplyDiversity(country, activeFilterFromQuery(r))
	if err != nil {
		writeGraphError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"country_code": country,
		"regions":      counts,
	})
}

func (s *Server) handleGraphRestrictions(w http.ResponseWriter, r *http.Request) {
	country := entities.CountryCode(chi.URLParam(r, "countryCode"))

	edges, err := s.currentGraph().Restrictions(country)
	if err != nil {
		writeGraphError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"country_code": country,
		"restrictions": edges,
	})
}

func (s *Server) handleUtilization(w http.ResponseWriter, r *http.Request) {
	hub := entities.HubID(chi.URLParam(r, "hubID"))

	utilization, err := s.currentGraph().HubUtilization(hub, activeFilterFromQuery(r))
	if err != nil {
		writeGraphError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, utilization)
}
