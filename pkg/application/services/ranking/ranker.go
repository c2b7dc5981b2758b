// Package ranking organizes a solve outcome into the three presentation
// tiers: the flows the optimizer chose, the next-best feasible alternatives,
// and the remaining manufacturing origins. It reuses the scores already
// computed for the solve so the tiers stay consistent with the allocation.
package ranking

import (
	"fmt"
	"sort"

	"github.com/vsinha/supplyflow/pkg/application/dto"
	"github.com/vsinha/supplyflow/pkg/application/services/scoring"
	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/domain/repositories"
	"github.com/vsinha/supplyflow/pkg/domain/services"
)

// alternativeLimit caps Tier 2 to the next three flows by score.
const alternativeLimit = 3

// Ranker builds tiered views of solve results.
type Ranker struct {
	store     repositories.ReferenceRepository
	validator *services.RestrictionValidator
}

// NewRanker creates a ranker over the given reference data.
func NewRanker(store repositories.ReferenceRepository) *Ranker {
	return &Ranker{
		store:     store,
		validator: services.NewRestrictionValidator(store, store),
	}
}

type routeKey struct {
	factory entities.FactoryID
	hub     entities.HubID
}

// Rank partitions the solve's candidate origins into three disjoint tiers.
//
// Tier 1 holds the optimizer's allocation entries enriched with factory and
// hub display metadata. Tier 2 holds up to three feasible flows not chosen,
// ascending by score, display ranks starting at 2. Tier 3 holds one
// best-scoring flow per remaining origin. When includeBlocked is set, every
// catalog factory absent from all tiers is appended to Tier 3 with the
// reason it cannot serve the destination and its cheapest unfiltered route.
//
// An empty feasible set yields an empty result across all tiers.
func (r *Ranker) Rank(result *dto.SolveResult, includeBlocked bool) (*dto.RankedResult, error) {
	ranked := &dto.RankedResult{
		Chosen:       []dto.ChosenFlow{},
		Alternatives: []dto.RankedFlow{},
		OtherOrigins: []dto.OriginOption{},
	}
	if result == nil || len(result.Feasible) == 0 {
		return ranked, nil
	}

	chosenRoutes := make(map[routeKey]bool, len(result.Allocations))
	usedOrigins := make(map[entities.FactoryID]bool)

	for _, alloc := range result.Allocations {
		chosenRoutes[routeKey{alloc.Factory, alloc.Hub}] = true
		usedOrigins[alloc.Factory] = true

		chosen, err := r.enrichChosen(alloc)
		if err != nil {
			return nil, err
		}
		ranked.Chosen = append(ranked.Chosen, chosen)
	}

	rest := make([]scoring.ScoredFlow, 0, len(result.Feasible))
	for _, sf := range result.Feasible {
		if !chosenRoutes[routeKey{sf.Flow.Factory, sf.Flow.Hub}] {
			rest = append(rest, sf)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Score < rest[j].Score
	})

	for i, sf := range rest {
		if i == alternativeLimit {
			break
		}
		usedOrigins[sf.Flow.Factory] = true

		alt, err := r.enrichAlternative(sf, i+2)
		if err != nil {
			return nil, err
		}
		ranked.Alternatives = append(ranked.Alternatives, alt)
	}

	// One best route per origin not already represented above. rest is in
	// score order, so the first flow seen per origin is its best.
	tierOrigins := make(map[entities.FactoryID]bool)
	for _, sf := range rest {
		if usedOrigins[sf.Flow.Factory] || tierOrigins[sf.Flow.Factory] {
			continue
		}
		tierOrigins[sf.Flow.Factory] = true

		option, err := r.availableOrigin(sf)
		if err != nil {
			return nil, err
		}
		ranked.OtherOrigins = append(ranked.OtherOrigins, option)
	}

	if includeBlocked {
		blocked, err := r.blockedOrigins(result, usedOrigins, tierOrigins)
		if err != nil {
			return nil, err
		}
		ranked.OtherOrigins = append(ranked.OtherOrigins, blocked...)
	}

	return ranked, nil
}

func (r *Ranker) enrichChosen(alloc dto.AllocationEntry) (dto.ChosenFlow, error) {
	factory, err := r.store.GetFactory(alloc.Factory)
	if err != nil {
		return dto.ChosenFlow{}, fmt.Errorf("ranking: enriching allocation: %w", err)
	}
	hub, err := r.store.GetHub(alloc.Hub)
	if err != nil {
		return dto.ChosenFlow{}, fmt.Errorf("ranking: enriching allocation: %w", err)
	}

	return dto.ChosenFlow{
		AllocationEntry: alloc,
		FactoryName:     factory.Name,
		FactoryCity:     factory.City,
		FactoryCountry:  factory.Country,
		HubName:         hub.Name,
		HubCity:         hub.City,
		HubCountry:      hub.Country,
	}, nil
}

func (r *Ranker) enrichAlternative(sf scoring.ScoredFlow, rank int) (dto.RankedFlow, error) {
	factory, err := r.store.GetFactory(sf.Flow.Factory)
	if err != nil {
		return dto.RankedFlow{}, fmt.Errorf("ranking: enriching alternative: %w", err)
	}
	hub, err := r.store.GetHub(sf.Flow.Hub)
	if err != nil {
		return dto.RankedFlow{}, fmt.Errorf("ranking: enriching alternative: %w", err)
	}

	return dto.RankedFlow{
		Rank:           rank,
		Factory:        sf.Flow.Factory,
		FactoryName:    factory.Name,
		FactoryCountry: factory.Country,
		Hub:            sf.Flow.Hub,
		HubName:        hub.Name,
		HubCountry:     hub.Country,
		CostPerUnit:    sf.Flow.LandedCost,
		TransitDays:    sf.Flow.TransitDays,
		Score:          sf.Score,
	}, nil
}

func (r *Ranker) availableOrigin(sf scoring.ScoredFlow) (dto.OriginOption, error) {
	factory, err := r.store.GetFactory(sf.Flow.Factory)
	if err != nil {
		return dto.OriginOption{}, fmt.Errorf("ranking: enriching origin: %w", err)
	}

	score := sf.Score
	return dto.OriginOption{
		Factory:        sf.Flow.Factory,
		FactoryName:    factory.Name,
		FactoryCountry: factory.Country,
		Status:         dto.OriginAvailable,
		Score:          &score,
		BestHub:        sf.Flow.Hub,
		CostPerUnit:    sf.Flow.LandedCost,
		TransitDays:    sf.Flow.TransitDays,
	}, nil
}

// blockedOrigins lists every catalog factory with no feasible route to the
// destination, tagged with why it is out: a MADE_IN restriction against its
// country, or failing that, the lead-time window. The cheapest unfiltered
// route is attached for display even though it is not usable.
func (r *Ranker) blockedOrigins(result *dto.SolveResult, usedOrigins, tierOrigins map[entities.FactoryID]bool) ([]dto.OriginOption, error) {
	factories, err := r.store.GetAllFactories()
	if err != nil {
		return nil, fmt.Errorf("ranking: listing factories: %w", err)
	}

	var missing []*entities.Factory
	for _, f := range factories {
		if usedOrigins[f.ID] || tierOrigins[f.ID] {
			continue
		}
		missing = append(missing, f)
	}
	if len(missing) == 0 {
		return nil, nil
	}
	sort.Slice(missing, func(i, j int) bool {
		return missing[i].ID < missing[j].ID
	})

	allFlows, err := r.store.AllFlows(result.Category, result.Destination)
	if err != nil {
		return nil, fmt.Errorf("ranking: listing unfiltered flows: %w", err)
	}
	bestRoute := make(map[entities.FactoryID]entities.Flow)
	for _, flow := range allFlows {
		if current, ok := bestRoute[flow.Factory]; !ok || flow.LandedCost < current.LandedCost {
			bestRoute[flow.Factory] = flow
		}
	}

	options := make([]dto.OriginOption, 0, len(missing))
	for _, f := range missing {
		status := dto.OriginExceedsLeadTime
		if reason, ok := r.validator.OriginBlockReason(f.Country, result.Destination); ok {
			status = dto.OriginRestrictedPrefix + reason
		}

		option := dto.OriginOption{
			Factory:        f.ID,
			FactoryName:    f.Name,
			FactoryCountry: f.Country,
			Status:         status,
			Score:          nil,
		}
		if best, ok := bestRoute[f.ID]; ok {
			option.BestHub = best.Hub
			option.CostPerUnit = best.LandedCost
			option.TransitDays = best.TransitDays
		}
		options = append(options, option)
	}
	return options, nil
}
