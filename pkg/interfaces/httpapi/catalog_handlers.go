package httpapi

import (
	"net/http"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
)

// Catalog payloads use the same column vocabulary as the CSV dataset.

type factoryPayload struct {
	ID             entities.FactoryID   `json:"factory_id"`
	Name           string               `json:"factory_name"`
	City           string               `json:"city"`
	Country        entities.CountryCode `json:"country_code"`
	Region         entities.RegionID    `json:"region_id"`
	CostMultiplier float64              `json:"cost_multiplier"`
}

type hubPayload struct {
	ID                entities.HubID       `json:"hub_id"`
	Name              string               `json:"hub_name"`
	City              string               `json:"city"`
	Country           entities.CountryCode `json:"country_code"`
	Region            entities.RegionID    `json:"region_id"`
	MonthlyThroughput entities.Units       `json:"monthly_throughput_capacity"`
}

type countryPayload struct {
	Code   entities.CountryCode `json:"country_code"`
	Name   string               `json:"country_name"`
	Region entities.RegionID    `json:"region_id"`
}

type categoryPayload struct {
	ID           entities.CategoryID `json:"category_id"`
	Name         string              `json:"category_name"`
	Urgency      int                 `json:"urgency"`
	BaseUnitCost float64             `json:"base_manufacturing_cost_usd"`
	UnitWeightKg float64             `json:"representative_weight_kg"`
}

type productPayload struct {
	ID        entities.ProductID  `json:"product_id"`
	Name      string              `json:"product_name"`
	Category  entities.CategoryID `json:"category_id"`
	PriceTier string              `json:"retail_price_tier"`
	Regions   []entities.RegionID `json:"regions"`
}

type restrictionPayload struct {
	Destination entities.CountryCode     `json:"destination_country_code"`
	Restricted  entities.CountryCode     `json:"restricted_country_code"`
	Kind        entities.RestrictionKind `json:"restriction_type"`
	Reason      string                   `json:"reason"`
}

func (s *Server) handleFactories(w http.ResponseWriter, r *http.Request) {
	factories, err := s.currentStore().GetAllFactories()
	if err != nil {
		WriteError(r.Context(), w, NewError("catalog_failed", err.Error(), http.StatusInternalServerError))
		return
	}

	payload := make([]factoryPayload, 0, len(factories))
	for _, f := range factories {
		payload = append(payload, factoryPayload{
			ID:             f.ID,
			Name:           f.Name,
			City:           f.City,
			Country:        f.Country,
			Region:         f.Region,
			CostMultiplier: f.CostMultiplier,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"factories": payload})
}

func (s *Server) handleHubs(w http.ResponseWriter, r *http.Request) {
	hubs, err := s.currentStore().GetAllHubs()
	if err != nil {
		WriteError(r.Context(), w, NewError("catalog_failed", err.Error(), http.StatusInternalServerError))
		return
	}

	payload := make([]hubPayload, 0, len(hubs))
	for _, h := range hubs {
		payload = append(payload, hubPayload{
			ID:                h.ID,
			Name:              h.Name,
			City:              h.City,
			Country:           h.Country,
			Region:            h.Region,
			MonthlyThroughput: h.MonthlyThroughput,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"hubs": payload})
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.currentStore().GetAllCountries()
	if err != nil {
		WriteError(r.Context(), w, NewError("catalog_failed", err.Error(), http.StatusInternalServerError))
		return
	}

	payload := make([]countryPayload, 0, len(countries))
	for _, c := range countries {
		payload = append(payload, countryPayload{
			Code:   c.Code,
			Name:   c.Name,
			Region: c.Region,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"countries": payload})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.currentStore().GetAllCategories()
	if err != nil {
		WriteError(r.Context(), w, NewError("catalog_failed", err.Error(), http.StatusInternalServerError))
		return
	}

	payload := make([]categoryPayload, 0, len(categories))
	for _, c := range categories {
		payload = append(payload, categoryPayload{
			ID:           c.ID,
			Name:         c.Name,
			Urgency:      c.Urgency,
			BaseUnitCost: c.BaseUnitCost,
			UnitWeightKg: c.UnitWeightKg,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": payload})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.currentStore().GetAllProducts()
	if err != nil {
		WriteError(r.Context(), w, NewError("catalog_failed", err.Error(), http.StatusInternalServerError))
		return
	}

	payload := make([]productPayload, 0, len(products))
	for _, p := range products {
		payload = append(payload, productPayload{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			PriceTier: p.PriceTier,
			Regions:   p.Regions,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": payload})
}

// handleRestrictions lists restriction rules, optionally scoped to one
// destination via ?destination=CC.
func (s *Server) handleRestrictions(w http.ResponseWriter, r *http.Request) {
	store := s.currentStore()

	var rules []entities.Restriction
	var err error
	if dest := r.URL.Query().Get("destination"); dest != "" {
		rules, err = store.GetRestrictionsFor(entities.CountryCode(dest))
	} else {
		rules, err = store.GetAllRestrictions()
	}
	if err != nil {
		WriteError(r.Context(), w, NewError("catalog_failed", err.Error(), http.StatusInternalServerError))
		return
	}

	payload := make([]restrictionPayload, 0, len(rules))
	for _, rule := range rules {
		payload = append(payload, restrictionPayload{
			Destination: rule.Destination,
			Restricted:  rule.Restricted,
			Kind:        rule.Kind,
			Reason:      rule.Reason,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"restrictions": payload})
}
