package dto

import "github.com/vsinha/supplyflow/pkg/domain/entities"

// Tier-3 origin statuses
const (
	OriginAvailable        = "Available"
	OriginExceedsLeadTime  = "Exceeds lead time"
	OriginRestrictedPrefix = "Restricted: "
)

// ChosenFlow is a Tier-1 allocation entry enriched with display metadata
type ChosenFlow struct {
	AllocationEntry

	FactoryName    string               `json:"factory_name"`
	FactoryCity    string               `json:"factory_city"`
	FactoryCountry entities.CountryCode `json:"factory_country"`
	HubName        string               `json:"hub_name"`
	HubCity        string               `json:"hub_city"`
	HubCountry     entities.CountryCode `json:"hub_country"`
}

// RankedFlow is a Tier-2 alternative: a feasible flow the optimizer passed
// over, with its display rank (2, 3, 4 ...)
type RankedFlow struct {
	Rank           int                  `json:"rank"`
	Factory        entities.FactoryID   `json:"factory_id"`
	FactoryName    string               `json:"factory_name"`
	FactoryCountry entities.CountryCode `json:"factory_country"`
	Hub            entities.HubID       `json:"hub_id"`
	HubName        string               `json:"hub_name"`
	HubCountry     entities.CountryCode `json:"hub_country"`
	CostPerUnit    float64              `json:"cost_per_unit"`
	TransitDays    int                  `json:"transit_days"`
	Score          float64              `json:"score"`
}

// OriginOption is a Tier-3 entry: one remaining factory with its best route.
// Score is null for factories with no usable route; Status then explains why
// ("Restricted: <reason>" or "Exceeds lead time").
type OriginOption struct {
	Factory        entities.FactoryID   `json:"factory_id"`
	FactoryName    string               `json:"factory_name"`
	FactoryCountry entities.CountryCode `json:"factory_country"`
	Status         string               `json:"status"`
	Score          *float64             `json:"score"`
	BestHub        entities.HubID       `json:"best_hub_id"`
	CostPerUnit    float64              `json:"cost_per_unit"`
	TransitDays    int                  `json:"transit_days"`
}

// RankedResult partitions every candidate origin into three disjoint tiers
// relative to the optimizer's choice.
type RankedResult struct {
	Chosen       []ChosenFlow   `json:"chosen"`
	Alternatives []RankedFlow   `json:"alternatives"`
	OtherOrigins []OriginOption `json:"other_origins"`
}
