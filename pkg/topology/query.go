package topology

import (
	"github.com/vsinha/supplyflow/pkg/domain/entities"
)

// ActiveFilter disables a set of factories and hubs for the duration of one
// query without touching the graph. A nil filter leaves every node active.
type ActiveFilter struct {
	disabledFactories map[entities.FactoryID]bool
	disabledHubs      map[entities.HubID]bool
}

// NewActiveFilter builds a filter over the given disabled nodes.
func NewActiveFilter(factories []entities.FactoryID, hubs []entities.HubID) *ActiveFilter {
	f := &ActiveFilter{
		disabledFactories: make(map[entities.FactoryID]bool, len(factories)),
		disabledHubs:      make(map[entities.HubID]bool, len(hubs)),
	}
	for _, id := range factories {
		f.disabledFactories[id] = true
	}
	for _, id := range hubs {
		f.disabledHubs[id] = true
	}
	return f
}

func (f *ActiveFilter) factoryActive(g *Graph, id NodeID) bool {
	if f == nil {
		return true
	}
	return !f.disabledFactories[entities.FactoryID(g.nodes[id].Key)]
}

func (f *ActiveFilter) hubActive(g *Graph, id NodeID) bool {
	if f == nil {
		return true
	}
	return !f.disabledHubs[entities.HubID(g.nodes[id].Key)]
}

// Route is one two-hop factory→hub→destination path with the aggregated leg
// costs from the underlying ships-to and delivers-to edges.
type Route struct {
	Factory       entities.FactoryID   `json:"factory_id"`
	Hub           entities.HubID       `json:"hub_id"`
	Destination   entities.CountryCode `json:"country_code"`
	TransportCost float64              `json:"transport_cost"`
	LastMileCost  float64              `json:"last_mile_cost"`
	TransitDays   int                  `json:"transit_days"`
}

// Routes enumerates every factory→hub→destination path between the two
// endpoints. Unknown endpoints return ErrUnknownNode; known endpoints with
// no connecting path return an empty slice.
func (g *Graph) Routes(factory entities.FactoryID, destination entities.CountryCode) ([]Route, error) {
	from, ok := g.factoryNode[factory]
	if !ok {
		return nil, ErrUnknownNode
	}
	dest, ok := g.countryNode[destination]
	if !ok {
		return nil, ErrUnknownNode
	}

	routes := []Route{}
	for _, si := range g.shipsOut[from] {
		ship := g.shipsTo[si]
		for _, di := range g.deliversOut[ship.to] {
			deliver := g.deliversTo[di]
			if deliver.to != dest {
				continue
			}
			days := ship.minTransitDays
			if deliver.minTransitDays > days {
				days = deliver.minTransitDays
			}
			routes = append(routes, Route{
				Factory:       factory,
				Hub:           entities.HubID(g.nodes[ship.to].Key),
				Destination:   destination,
				TransportCost: ship.minTransportCost,
				LastMileCost:  deliver.minLastMileCost,
				TransitDays:   days,
			})
		}
	}
	return routes, nil
}

// ImpactAnalysis returns the destinations that lose all supply if the given
// hub fails: those whose delivers-to in-degree over active hubs is exactly
// one, sourced from this hub. The filter narrows which other hubs count as
// alternatives.
func (g *Graph) ImpactAnalysis(hub entities.HubID, filter *ActiveFilter) ([]entities.CountryCode, error) {
	from, ok := g.hubNode[hub]
	if !ok {
		return nil, ErrUnknownNode
	}

	var dependent []entities.CountryCode
	for _, di := range g.deliversOut[from] {
		dest := g.deliversTo[di].to

		alternatives := 0
		soleSource := InvalidNode
		for _, in := range g.deliversIn[dest] {
			source := g.deliversTo[in].from
			if !filter.hubActive(g, source) {
				continue
			}
			alternatives++
			soleSource = source
		}
		if alternatives == 1 && soleSource == from {
			dependent = append(dependent, entities.CountryCode(g.nodes[dest].Key))
		}
	}
	return dependent, nil
}

// SupplyDiversity counts the distinct active origins per region that can
// reach the destination through an active hub. Higher counts across more
// regions mean more geographic resilience.
func (g *Graph) SupplyDiversity(destination entities.CountryCode, filter *ActiveFilter) (map[entities.RegionID]int, error) {
	dest, ok := g.countryNode[destination]
	if !ok {
		return nil, ErrUnknownNode
	}

	seen := make(map[NodeID]bool)
	counts := make(map[entities.RegionID]int)
	for _, di := range g.deliversIn[dest] {
		hub := g.deliversTo[di].from
		if !filter.hubActive(g, hub) {
			continue
		}
		for _, si := range g.shipsIn[hub] {
			factory := g.shipsTo[si].from
			if seen[factory] || !filter.factoryActive(g, factory) {
				continue
			}
			seen[factory] = true
			region := entities.RegionID(g.nodes[g.nodes[factory].Region].Key)
			counts[region]++
		}
	}
	return counts, nil
}

// RestrictionEdge is one restricts relationship from a destination's point
// of view.
type RestrictionEdge struct {
	Restricted entities.CountryCode     `json:"restricted_country"`
	Kind       entities.RestrictionKind `json:"restriction_type"`
	Reason     string                   `json:"reason"`
}

// Restrictions lists the restricts edges leaving a destination country, in
// reference load order.
func (g *Graph) Restrictions(destination entities.CountryCode) ([]RestrictionEdge, error) {
	from, ok := g.countryNode[destination]
	if !ok {
		return nil, ErrUnknownNode
	}

	edges := []RestrictionEdge{}
	for _, ri := range g.restrictsOut[from] {
		edge := g.restricts[ri]
		edges = append(edges, RestrictionEdge{
			Restricted: entities.CountryCode(g.nodes[edge.to].Key),
			Kind:       edge.kind,
			Reason:     edge.reason,
		})
	}
	return edges, nil
}

// HubUtilization reports the distinct active origins feeding a hub and the
// destinations it serves.
type HubUtilization struct {
	Hub              entities.HubID         `json:"hub_id"`
	FeedingFactories []entities.FactoryID   `json:"feeding_factories"`
	ServedCountries  []entities.CountryCode `json:"served_countries"`
}

// HubUtilization lists the origins feeding the hub and the destinations it
// serves. The filter removes disabled origins from the feeding side;
// destinations are always listed.
func (g *Graph) HubUtilization(hub entities.HubID, filter *ActiveFilter) (HubUtilization, error) {
	id, ok := g.hubNode[hub]
	if !ok {
		return HubUtilization{}, ErrUnknownNode
	}

	u := HubUtilization{
		Hub:              hub,
		FeedingFactories: []entities.FactoryID{},
		ServedCountries:  []entities.CountryCode{},
	}
	for _, si := range g.shipsIn[id] {
		factory := g.shipsTo[si].from
		if !filter.factoryActive(g, factory) {
			continue
		}
		u.FeedingFactories = append(u.FeedingFactories, entities.FactoryID(g.nodes[factory].Key))
	}
	for _, di := range g.deliversOut[id] {
		u.ServedCountries = append(u.ServedCountries, entities.CountryCode(g.nodes[g.deliversTo[di].to].Key))
	}
	return u, nil
}
