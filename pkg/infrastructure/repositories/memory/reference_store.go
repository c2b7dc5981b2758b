package memory

import (
	"fmt"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/domain/repositories"
)

// pairKey indexes flows by (category, destination) without string concatenation
type pairKey struct {
	category    entities.CategoryID
	destination entities.CountryCode
}

// ReferenceStore is the in-memory reference data snapshot. It owns one copy of
// each table; every derived index map points back into those tables and is
// built once at load time. After loading the store is read-only, so concurrent
// readers need no locking.
type ReferenceStore struct {
	regions      []entities.Region
	countries    []entities.Country
	factories    []entities.Factory
	hubs         []entities.Hub
	categories   []entities.Category
	products     []entities.Product
	flows        []entities.Flow
	restrictions []entities.Restriction

	regionIdx   map[entities.RegionID]int
	countryIdx  map[entities.CountryCode]int
	factoryIdx  map[entities.FactoryID]int
	hubIdx      map[entities.HubID]int
	categoryIdx map[entities.CategoryID]int

	flowsByPair        map[pairKey][]int
	capacityByCategory map[entities.CategoryID]map[entities.FactoryID]entities.Units
	hubThroughput      map[entities.HubID]entities.Units
	restrictionsByDest map[entities.CountryCode][]int
}

// NewReferenceStore creates an empty reference store
func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{
		regionIdx:   make(map[entities.RegionID]int),
		countryIdx:  make(map[entities.CountryCode]int),
		factoryIdx:  make(map[entities.FactoryID]int),
		hubIdx:      make(map[entities.HubID]int),
		categoryIdx: make(map[entities.CategoryID]int),

		flowsByPair:        make(map[pairKey][]int),
		capacityByCategory: make(map[entities.CategoryID]map[entities.FactoryID]entities.Units),
		hubThroughput:      make(map[entities.HubID]entities.Units),
		restrictionsByDest: make(map[entities.CountryCode][]int),
	}
}

// Verify interface compliance
var _ repositories.ReferenceRepository = (*ReferenceStore)(nil)

// LoadRegions loads the region table
func (s *ReferenceStore) LoadRegions(regions []entities.Region) error {
	for _, r := range regions {
		if r.ID == "" {
			return fmt.Errorf("load regions: region id cannot be empty")
		}
		if _, dup := s.regionIdx[r.ID]; dup {
			return fmt.Errorf("load regions: duplicate region %s", r.ID)
		}
		s.regionIdx[r.ID] = len(s.regions)
		s.regions = append(s.regions, r)
	}
	return nil
}

// LoadCountries loads the country table. Regions must be loaded first.
func (s *ReferenceStore) LoadCountries(countries []entities.Country) error {
	for _, c := range countries {
		if _, ok := s.regionIdx[c.Region]; !ok {
			return fmt.Errorf("load countries: country %s references unknown region %s", c.Code, c.Region)
		}
		if _, dup := s.countryIdx[c.Code]; dup {
			return fmt.Errorf("load countries: duplicate country %s", c.Code)
		}
		s.countryIdx[c.Code] = len(s.countries)
		s.countries = append(s.countries, c)
	}
	return nil
}

// LoadFactories loads the factory table. Countries must be loaded first.
func (s *ReferenceStore) LoadFactories(factories []entities.Factory) error {
	for _, f := range factories {
		if _, ok := s.countryIdx[f.Country]; !ok {
			return fmt.Errorf("load factories: factory %s references unknown country %s", f.ID, f.Country)
		}
		if _, dup := s.factoryIdx[f.ID]; dup {
			return fmt.Errorf("load factories: duplicate factory %s", f.ID)
		}
		s.factoryIdx[f.ID] = len(s.factories)
		s.factories = append(s.factories, f)
	}
	return nil
}

// LoadHubs loads the hub table. Countries must be loaded first.
func (s *ReferenceStore) LoadHubs(hubs []entities.Hub) error {
	for _, h := range hubs {
		if _, ok := s.countryIdx[h.Country]; !ok {
			return fmt.Errorf("load hubs: hub %s references unknown country %s", h.ID, h.Country)
		}
		if _, dup := s.hubIdx[h.ID]; dup {
			return fmt.Errorf("load hubs: duplicate hub %s", h.ID)
		}
		s.hubIdx[h.ID] = len(s.hubs)
		s.hubs = append(s.hubs, h)
		s.hubThroughput[h.ID] = h.MonthlyThroughput
	}
	return nil
}

// LoadCategories loads the category table
func (s *ReferenceStore) LoadCategories(categories []entities.Category) error {
	for _, c := range categories {
		if _, dup := s.categoryIdx[c.ID]; dup {
			return fmt.Errorf("load categories: duplicate category %s", c.ID)
		}
		s.categoryIdx[c.ID] = len(s.categories)
		s.categories = append(s.categories, c)
	}
	return nil
}

// LoadProducts loads the product catalog. Categories must be loaded first.
func (s *ReferenceStore) LoadProducts(products []entities.Product) error {
	for _, p := range products {
		if _, ok := s.categoryIdx[p.Category]; !ok {
			return fmt.Errorf("load products: product %s references unknown category %s", p.ID, p.Category)
		}
		s.products = append(s.products, p)
	}
	return nil
}

// LoadCapacities loads per-(factory, category) production capacity.
// Factories and categories must be loaded first.
func (s *ReferenceStore) LoadCapacities(records []entities.CapacityRecord) error {
	for _, rec := range records {
		if _, ok := s.factoryIdx[rec.Factory]; !ok {
			return fmt.Errorf("load capacities: record references unknown factory %s", rec.Factory)
		}
		if _, ok := s.categoryIdx[rec.Category]; !ok {
			return fmt.Errorf("load capacities: record references unknown category %s", rec.Category)
		}
		if rec.MonthlyCapacity <= 0 {
			return fmt.Errorf("load capacities: factory %s category %s: capacity must be positive, got %d",
				rec.Factory, rec.Category, rec.MonthlyCapacity)
		}
		byFactory, ok := s.capacityByCategory[rec.Category]
		if !ok {
			byFactory = make(map[entities.FactoryID]entities.Units)
			s.capacityByCategory[rec.Category] = byFactory
		}
		byFactory[rec.Factory] = rec.MonthlyCapacity
	}
	return nil
}

// LoadRestrictions loads the trade rule table. Countries must be loaded first.
func (s *ReferenceStore) LoadRestrictions(rules []entities.Restriction) error {
	for _, r := range rules {
		if _, ok := s.countryIdx[r.Destination]; !ok {
			return fmt.Errorf("load restrictions: rule references unknown destination %s", r.Destination)
		}
		s.restrictionsByDest[r.Destination] = append(s.restrictionsByDest[r.Destination], len(s.restrictions))
		s.restrictions = append(s.restrictions, r)
	}
	return nil
}

// LoadFlows loads the flow table and indexes it by (category, destination).
// All other tables must be loaded first; dangling references are rejected.
func (s *ReferenceStore) LoadFlows(flows []entities.Flow) error {
	for i, f := range flows {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("load flows: row %d: %w", i+1, err)
		}
		if _, ok := s.factoryIdx[f.Factory]; !ok {
			return fmt.Errorf("load flows: row %d references unknown factory %s", i+1, f.Factory)
		}
		if _, ok := s.hubIdx[f.Hub]; !ok {
			return fmt.Errorf("load flows: row %d references unknown hub %s", i+1, f.Hub)
		}
		if _, ok := s.countryIdx[f.Destination]; !ok {
			return fmt.Errorf("load flows: row %d references unknown country %s", i+1, f.Destination)
		}
		if _, ok := s.categoryIdx[f.Category]; !ok {
			return fmt.Errorf("load flows: row %d references unknown category %s", i+1, f.Category)
		}
		key := pairKey{category: f.Category, destination: f.Destination}
		s.flowsByPair[key] = append(s.flowsByPair[key], len(s.flows))
		s.flows = append(s.flows, f)
	}
	return nil
}

// FeasibleFlows returns copies of the flows for the pair that pass both
// feasibility flags, in load order. Each caller gets its own slice.
func (s *ReferenceStore) FeasibleFlows(category entities.CategoryID, destination entities.CountryCode) ([]entities.Flow, error) {
	indexes := s.flowsByPair[pairKey{category: category, destination: destination}]
	flows := make([]entities.Flow, 0, len(indexes))
	for _, i := range indexes {
		if s.flows[i].Feasible() {
			flows = append(flows, s.flows[i])
		}
	}
	return flows, nil
}

// AllFlows returns copies of every flow for the pair, blocked ones included,
// in load order.
func (s *ReferenceStore) AllFlows(category entities.CategoryID, destination entities.CountryCode) ([]entities.Flow, error) {
	indexes := s.flowsByPair[pairKey{category: category, destination: destination}]
	flows := make([]entities.Flow, 0, len(indexes))
	for _, i := range indexes {
		flows = append(flows, s.flows[i])
	}
	return flows, nil
}

// FlowRecords returns a copy of the entire flow table in load order
func (s *ReferenceStore) FlowRecords() ([]entities.Flow, error) {
	flows := make([]entities.Flow, len(s.flows))
	copy(flows, s.flows)
	return flows, nil
}

// FactoryCapacities returns a fresh capacity map for one category
func (s *ReferenceStore) FactoryCapacities(category entities.CategoryID) (map[entities.FactoryID]entities.Units, error) {
	capacities := make(map[entities.FactoryID]entities.Units, len(s.capacityByCategory[category]))
	for factory, units := range s.capacityByCategory[category] {
		capacities[factory] = units
	}
	return capacities, nil
}

// HubThroughputs returns a fresh throughput map over all hubs
func (s *ReferenceStore) HubThroughputs() (map[entities.HubID]entities.Units, error) {
	throughputs := make(map[entities.HubID]entities.Units, len(s.hubThroughput))
	for hub, units := range s.hubThroughput {
		throughputs[hub] = units
	}
	return throughputs, nil
}

// GetFactory returns one factory by id
func (s *ReferenceStore) GetFactory(id entities.FactoryID) (*entities.Factory, error) {
	index, exists := s.factoryIdx[id]
	if !exists {
		return nil, fmt.Errorf("factory %s: %w", id, repositories.ErrNotFound)
	}
	return &s.factories[index], nil
}

// GetHub returns one hub by id
func (s *ReferenceStore) GetHub(id entities.HubID) (*entities.Hub, error) {
	index, exists := s.hubIdx[id]
	if !exists {
		return nil, fmt.Errorf("hub %s: %w", id, repositories.ErrNotFound)
	}
	return &s.hubs[index], nil
}

// GetCountry returns one country by code
func (s *ReferenceStore) GetCountry(code entities.CountryCode) (*entities.Country, error) {
	index, exists := s.countryIdx[code]
	if !exists {
		return nil, fmt.Errorf("country %s: %w", code, repositories.ErrNotFound)
	}
	return &s.countries[index], nil
}

// GetCategory returns one category by id
func (s *ReferenceStore) GetCategory(id entities.CategoryID) (*entities.Category, error) {
	index, exists := s.categoryIdx[id]
	if !exists {
		return nil, fmt.Errorf("category %s: %w", id, repositories.ErrNotFound)
	}
	return &s.categories[index], nil
}

// GetAllFactories returns all factories in load order
func (s *ReferenceStore) GetAllFactories() ([]*entities.Factory, error) {
	factories := make([]*entities.Factory, 0, len(s.factories))
	for i := range s.factories {
		factories = append(factories, &s.factories[i])
	}
	return factories, nil
}

// GetAllHubs returns all hubs in load order
func (s *ReferenceStore) GetAllHubs() ([]*entities.Hub, error) {
	hubs := make([]*entities.Hub, 0, len(s.hubs))
	for i := range s.hubs {
		hubs = append(hubs, &s.hubs[i])
	}
	return hubs, nil
}

// GetAllCountries returns all countries in load order
func (s *ReferenceStore) GetAllCountries() ([]*entities.Country, error) {
	countries := make([]*entities.Country, 0, len(s.countries))
	for i := range s.countries {
		countries = append(countries, &s.countries[i])
	}
	return countries, nil
}

// GetAllCategories returns all categories in load order
func (s *ReferenceStore) GetAllCategories() ([]*entities.Category, error) {
	categories := make([]*entities.Category, 0, len(s.categories))
	for i := range s.categories {
		categories = append(categories, &s.categories[i])
	}
	return categories, nil
}

// GetAllRegions returns all regions in load order
func (s *ReferenceStore) GetAllRegions() ([]*entities.Region, error) {
	regions := make([]*entities.Region, 0, len(s.regions))
	for i := range s.regions {
		regions = append(regions, &s.regions[i])
	}
	return regions, nil
}

// GetAllProducts returns the product catalog in load order
func (s *ReferenceStore) GetAllProducts() ([]*entities.Product, error) {
	products := make([]*entities.Product, 0, len(s.products))
	for i := range s.products {
		products = append(products, &s.products[i])
	}
	return products, nil
}

// GetAllRestrictions returns every trade rule in load order
func (s *ReferenceStore) GetAllRestrictions() ([]entities.Restriction, error) {
	rules := make([]entities.Restriction, len(s.restrictions))
	copy(rules, s.restrictions)
	return rules, nil
}

// GetRestrictionsFor returns the trade rules scoped to one destination
func (s *ReferenceStore) GetRestrictionsFor(destination entities.CountryCode) ([]entities.Restriction, error) {
	indexes := s.restrictionsByDest[destination]
	rules := make([]entities.Restriction, 0, len(indexes))
	for _, i := range indexes {
		rules = append(rules, s.restrictions[i])
	}
	return rules, nil
}

// FactoryRegion returns the region a factory belongs to
func (s *ReferenceStore) FactoryRegion(id entities.FactoryID) (entities.RegionID, bool) {
	index, exists := s.factoryIdx[id]
	if !exists {
		return "", false
	}
	return s.factories[index].Region, true
}

// HubRegion returns the region a hub belongs to
func (s *ReferenceStore) HubRegion(id entities.HubID) (entities.RegionID, bool) {
	index, exists := s.hubIdx[id]
	if !exists {
		return "", false
	}
	return s.hubs[index].Region, true
}

// CountryRegion returns the region a country belongs to
func (s *ReferenceStore) CountryRegion(code entities.CountryCode) (entities.RegionID, bool) {
	index, exists := s.countryIdx[code]
	if !exists {
		return "", false
	}
	return s.countries[index].Region, true
}
