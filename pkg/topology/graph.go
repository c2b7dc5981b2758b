// Package topology models the supply network as a typed directed graph and
// answers resilience questions over it: route enumeration, single-hub
// dependency analysis, regional supply diversity, restriction mapping, and
// hub utilization. The graph is built once from a reference snapshot and is
// read-only afterwards, so concurrent queries need no locking. Disruption
// scenarios are expressed with a query-time ActiveFilter over the canonical
// graph, never by removing nodes or edges.
//
// Nodes are held in an arena and addressed by small integer handles; edges
// are typed records carrying handle pairs, with per-node adjacency lists of
// edge indexes.
package topology

import (
	"errors"
	"fmt"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/domain/repositories"
)

// ErrUnknownNode reports a query against an id with no node in the graph.
var ErrUnknownNode = errors.New("topology: unknown node")

// NodeID is an index into the graph's node arena.
type NodeID int32

// InvalidNode marks the absence of a node reference.
const InvalidNode NodeID = -1

// NodeKind discriminates the entity type behind a node.
type NodeKind uint8

const (
	KindRegion NodeKind = iota
	KindCountry
	KindFactory
	KindHub
)

func (k NodeKind) String() string {
	switch k {
	case KindRegion:
		return "region"
	case KindCountry:
		return "country"
	case KindFactory:
		return "factory"
	case KindHub:
		return "hub"
	default:
		return "unknown"
	}
}

// Node is the arena record behind a handle. Key holds the entity id in its
// own namespace; Region is the in-region edge target, InvalidNode for region
// nodes themselves.
type Node struct {
	Kind   NodeKind
	Key    string
	Name   string
	Region NodeID
}

// shipsToEdge aggregates every flow on one (factory, hub) lane: the cheapest
// transport leg and the fastest transit seen across categories.
type shipsToEdge struct {
	from             NodeID
	to               NodeID
	minTransportCost float64
	minTransitDays   int
}

// deliversToEdge aggregates every flow on one (hub, destination) lane.
type deliversToEdge struct {
	from            NodeID
	to              NodeID
	minLastMileCost float64
	minTransitDays  int
}

// restrictsEdge is one restriction record: destination country restricts
// origin or routing through the target country.
type restrictsEdge struct {
	from   NodeID
	to     NodeID
	kind   entities.RestrictionKind
	reason string
}

// Graph is the immutable supply network topology.
type Graph struct {
	nodes []Node

	regionNode  map[entities.RegionID]NodeID
	countryNode map[entities.CountryCode]NodeID
	factoryNode map[entities.FactoryID]NodeID
	hubNode     map[entities.HubID]NodeID

	shipsTo    []shipsToEdge
	deliversTo []deliversToEdge
	restricts  []restrictsEdge

	// Adjacency lists indexed by NodeID; values index the edge slices above.
	shipsOut     [][]int32
	shipsIn      [][]int32
	deliversOut  [][]int32
	deliversIn   [][]int32
	restrictsOut [][]int32
}

// Stats summarizes the built graph.
type Stats struct {
	Nodes      int `json:"nodes"`
	Factories  int `json:"factories"`
	Hubs       int `json:"hubs"`
	Countries  int `json:"countries"`
	Regions    int `json:"regions"`
	ShipsTo    int `json:"ships_to_edges"`
	DeliversTo int `json:"delivers_to_edges"`
	InRegion   int `json:"in_region_edges"`
	Restricts  int `json:"restricts_edges"`
}

// Build constructs the topology from a reference snapshot: one node per
// region, country, factory and hub, one ships-to edge per distinct
// (factory, hub) pair keeping minimum transport cost and transit days across
// categories, one delivers-to edge per distinct (hub, destination) pair
// likewise, one restricts edge per restriction record, and an in-region link
// on every non-region node.
func Build(store repositories.ReferenceRepository) (*Graph, error) {
	g := &Graph{
		regionNode:  make(map[entities.RegionID]NodeID),
		countryNode: make(map[entities.CountryCode]NodeID),
		factoryNode: make(map[entities.FactoryID]NodeID),
		hubNode:     make(map[entities.HubID]NodeID),
	}

	regions, err := store.GetAllRegions()
	if err != nil {
		return nil, fmt.Errorf("topology: loading regions: %w", err)
	}
	for _, r := range regions {
		g.regionNode[r.ID] = g.addNode(Node{Kind: KindRegion, Key: string(r.ID), Name: r.Name, Region: InvalidNode})
	}

	countries, err := store.GetAllCountries()
	if err != nil {
		return nil, fmt.Errorf("topology: loading countries: %w", err)
	}
	for _, c := range countries {
		region, ok := g.regionNode[c.Region]
		if !ok {
			return nil, fmt.Errorf("topology: country %s references unknown region %s", c.Code, c.Region)
		}
		g.countryNode[c.Code] = g.addNode(Node{Kind: KindCountry, Key: string(c.Code), Name: c.Name, Region: region})
	}

	factories, err := store.GetAllFactories()
	if err != nil {
		return nil, fmt.Errorf("topology: loading factories: %w", err)
	}
	for _, f := range factories {
		region, ok := g.regionNode[f.Region]
		if !ok {
			return nil, fmt.Errorf("topology: factory %s references unknown region %s", f.ID, f.Region)
		}
		g.factoryNode[f.ID] = g.addNode(Node{Kind: KindFactory, Key: string(f.ID), Name: f.Name, Region: region})
	}

	hubs, err := store.GetAllHubs()
	if err != nil {
		return nil, fmt.Errorf("topology: loading hubs: %w", err)
	}
	for _, h := range hubs {
		region, ok := g.regionNode[h.Region]
		if !ok {
			return nil, fmt.Errorf("topology: hub %s references unknown region %s", h.ID, h.Region)
		}
		g.hubNode[h.ID] = g.addNode(Node{Kind: KindHub, Key: string(h.ID), Name: h.Name, Region: region})
	}

	g.shipsOut = make([][]int32, len(g.nodes))
	g.shipsIn = make([][]int32, len(g.nodes))
	g.deliversOut = make([][]int32, len(g.nodes))
	g.deliversIn = make([][]int32, len(g.nodes))
	g.restrictsOut = make([][]int32, len(g.nodes))

	if err := g.buildFlowEdges(store); err != nil {
		return nil, err
	}
	if err := g.buildRestrictionEdges(store); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) addNode(n Node) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return id
}

func (g *Graph) buildFlowEdges(store repositories.ReferenceRepository) error {
	flows, err := store.FlowRecords()
	if err != nil {
		return fmt.Errorf("topology: loading flows: %w", err)
	}

	type lane struct{ from, to NodeID }
	shipIdx := make(map[lane]int32)
	deliverIdx := make(map[lane]int32)

	for _, f := range flows {
		factory, ok := g.factoryNode[f.Factory]
		if !ok {
			return fmt.Errorf("topology: flow references unknown factory %s", f.Factory)
		}
		hub, ok := g.hubNode[f.Hub]
		if !ok {
			return fmt.Errorf("topology: flow references unknown hub %s", f.Hub)
		}
		dest, ok := g.countryNode[f.Destination]
		if !ok {
			return fmt.Errorf("topology: flow references unknown country %s", f.Destination)
		}

		ship := lane{factory, hub}
		if i, seen := shipIdx[ship]; seen {
			e := &g.shipsTo[i]
			if f.Cost.Transport < e.minTransportCost {
				e.minTransportCost = f.Cost.Transport
			}
			if f.TransitDays < e.minTransitDays {
				e.minTransitDays = f.TransitDays
			}
		} else {
			i := int32(len(g.shipsTo))
			g.shipsTo = append(g.shipsTo, shipsToEdge{
				from:             factory,
				to:               hub,
				minTransportCost: f.Cost.Transport,
				minTransitDays:   f.TransitDays,
			})
			shipIdx[ship] = i
			g.shipsOut[factory] = append(g.shipsOut[factory], i)
			g.shipsIn[hub] = append(g.shipsIn[hub], i)
		}

		deliver := lane{hub, dest}
		if i, seen := deliverIdx[deliver]; seen {
			e := &g.deliversTo[i]
			if f.Cost.LastMile < e.minLastMileCost {
				e.minLastMileCost = f.Cost.LastMile
			}
			if f.TransitDays < e.minTransitDays {
				e.minTransitDays = f.TransitDays
			}
		} else {
			i := int32(len(g.deliversTo))
			g.deliversTo = append(g.deliversTo, deliversToEdge{
				from:            hub,
				to:              dest,
				minLastMileCost: f.Cost.LastMile,
				minTransitDays:  f.TransitDays,
			})
			deliverIdx[deliver] = i
			g.deliversOut[hub] = append(g.deliversOut[hub], i)
			g.deliversIn[dest] = append(g.deliversIn[dest], i)
		}
	}
	return nil
}

func (g *Graph) buildRestrictionEdges(store repositories.ReferenceRepository) error {
	rules, err := store.GetAllRestrictions()
	if err != nil {
		return fmt.Errorf("topology: loading restrictions: %w", err)
	}
	for _, r := range rules {
		from, ok := g.countryNode[r.Destination]
		if !ok {
			return fmt.Errorf("topology: restriction references unknown country %s", r.Destination)
		}
		to, ok := g.countryNode[r.Restricted]
		if !ok {
			return fmt.Errorf("topology: restriction references unknown country %s", r.Restricted)
		}
		i := int32(len(g.restricts))
		g.restricts = append(g.restricts, restrictsEdge{
			from:   from,
			to:     to,
			kind:   r.Kind,
			reason: r.Reason,
		})
		g.restrictsOut[from] = append(g.restrictsOut[from], i)
	}
	return nil
}

// Node returns the arena record behind a handle.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return Node{}, false
	}
	return g.nodes[id], true
}

// FactoryNode resolves a factory id to its handle.
func (g *Graph) FactoryNode(id entities.FactoryID) (NodeID, bool) {
	n, ok := g.factoryNode[id]
	return n, ok
}

// HubNode resolves a hub id to its handle.
func (g *Graph) HubNode(id entities.HubID) (NodeID, bool) {
	n, ok := g.hubNode[id]
	return n, ok
}

// CountryNode resolves a country code to its handle.
func (g *Graph) CountryNode(code entities.CountryCode) (NodeID, bool) {
	n, ok := g.countryNode[code]
	return n, ok
}

// RegionNode resolves a region id to its handle.
func (g *Graph) RegionNode(id entities.RegionID) (NodeID, bool) {
	n, ok := g.regionNode[id]
	return n, ok
}

// Stats reports node and edge counts for the built graph.
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes:      len(g.nodes),
		Regions:    len(g.regionNode),
		Countries:  len(g.countryNode),
		Factories:  len(g.factoryNode),
		Hubs:       len(g.hubNode),
		ShipsTo:    len(g.shipsTo),
		DeliversTo: len(g.deliversTo),
		Restricts:  len(g.restricts),
	}
	for _, n := range g.nodes {
		if n.Region != InvalidNode {
			s.InRegion++
		}
	}
	return s
}
