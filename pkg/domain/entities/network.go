package entities

import "fmt"

// RegionID identifies a geographic region grouping
type RegionID string

// CountryCode is an ISO-style two-letter country identifier
type CountryCode string

// FactoryID identifies a manufacturing origin
type FactoryID string

// HubID identifies a distribution hub
type HubID string

// Units represents an integer unit volume for discrete goods
type Units int64

// Region groups countries, factories and hubs for proximity scoring
type Region struct {
	ID   RegionID
	Name string
}

// Country represents a destination market
type Country struct {
	Code   CountryCode
	Name   string
	Region RegionID
}

// Factory represents a manufacturing origin with a per-country cost profile.
// Per-category monthly capacity lives in its own table because categories
// consume different production lines.
type Factory struct {
	ID             FactoryID
	Name           string
	City           string
	Country        CountryCode
	Region         RegionID
	CostMultiplier float64
}

// NewFactory creates a validated Factory
func NewFactory(id FactoryID, name, city string, country CountryCode, region RegionID, costMultiplier float64) (*Factory, error) {
	if id == "" {
		return nil, fmt.Errorf("factory id cannot be empty")
	}
	if country == "" {
		return nil, fmt.Errorf("factory %s: country cannot be empty", id)
	}
	if region == "" {
		return nil, fmt.Errorf("factory %s: region cannot be empty", id)
	}
	if costMultiplier <= 0 {
		return nil, fmt.Errorf("factory %s: cost multiplier must be positive, got %g", id, costMultiplier)
	}

	return &Factory{
		ID:             id,
		Name:           name,
		City:           city,
		Country:        country,
		Region:         region,
		CostMultiplier: costMultiplier,
	}, nil
}

// Hub represents a distribution hub. Throughput is category-independent,
// a function of warehouse space.
type Hub struct {
	ID                HubID
	Name              string
	City              string
	Country           CountryCode
	Region            RegionID
	MonthlyThroughput Units
}

// NewHub creates a validated Hub
func NewHub(id HubID, name, city string, country CountryCode, region RegionID, throughput Units) (*Hub, error) {
	if id == "" {
		return nil, fmt.Errorf("hub id cannot be empty")
	}
	if country == "" {
		return nil, fmt.Errorf("hub %s: country cannot be empty", id)
	}
	if region == "" {
		return nil, fmt.Errorf("hub %s: region cannot be empty", id)
	}
	if throughput <= 0 {
		return nil, fmt.Errorf("hub %s: monthly throughput must be positive, got %d", id, throughput)
	}

	return &Hub{
		ID:                id,
		Name:              name,
		City:              city,
		Country:           country,
		Region:            region,
		MonthlyThroughput: throughput,
	}, nil
}

// CapacityRecord is one (factory, category) production line: unit cost after
// the factory multiplier, and monthly capacity in units.
type CapacityRecord struct {
	Factory         FactoryID
	Category        CategoryID
	UnitCost        float64
	MonthlyCapacity Units
}
