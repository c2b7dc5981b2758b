package repositories

import "github.com/vsinha/supplyflow/pkg/domain/entities"

// FlowRepository provides access to the precomputed flow table
type FlowRepository interface {
	// FeasibleFlows returns flows for the pair that meet the lead-time limit
	// and carry no geopolitical restriction, in stable load order.
	FeasibleFlows(category entities.CategoryID, destination entities.CountryCode) ([]entities.Flow, error)

	// AllFlows returns every flow for the pair, including blocked and late
	// ones, in stable load order.
	AllFlows(category entities.CategoryID, destination entities.CountryCode) ([]entities.Flow, error)

	// FlowRecords returns the entire flow table across all categories and
	// destinations, in stable load order.
	FlowRecords() ([]entities.Flow, error)

	LoadFlows(flows []entities.Flow) error
}
