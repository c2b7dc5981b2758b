package repositories

import "github.com/vsinha/supplyflow/pkg/domain/entities"

// RestrictionRepository provides access to geopolitical trade rules
type RestrictionRepository interface {
	GetAllRestrictions() ([]entities.Restriction, error)
	GetRestrictionsFor(destination entities.CountryCode) ([]entities.Restriction, error)
	LoadRestrictions(rules []entities.Restriction) error
}

// ReferenceRepository bundles every read surface of one loaded reference
// snapshot. The in-memory store satisfies all four interfaces over a single
// owned table set with index maps built once at load time.
type ReferenceRepository interface {
	FlowRepository
	NetworkRepository
	CapacityRepository
	RestrictionRepository
}
