package repositories

import "github.com/vsinha/supplyflow/pkg/domain/entities"

// CapacityRepository provides access to production capacity and hub throughput
type CapacityRepository interface {
	// FactoryCapacities returns monthly capacity per factory for one category.
	// Factories with no line for the category are absent from the map.
	FactoryCapacities(category entities.CategoryID) (map[entities.FactoryID]entities.Units, error)

	// HubThroughputs returns monthly throughput per hub, category-independent.
	HubThroughputs() (map[entities.HubID]entities.Units, error)

	LoadCapacities(records []entities.CapacityRecord) error
}
