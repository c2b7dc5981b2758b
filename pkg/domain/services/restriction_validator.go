package services

import (
	"fmt"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/domain/repositories"
)

// RestrictionValidator reproduces the geopolitical feasibility decision that
// the reference store bakes into each flow's restricted flag. Keeping the
// decision reproducible here lets callers explain a blocked route instead of
// only observing the flag.
type RestrictionValidator struct {
	network repositories.NetworkRepository
	rules   repositories.RestrictionRepository
}

// NewRestrictionValidator creates a new restriction validator
func NewRestrictionValidator(network repositories.NetworkRepository, rules repositories.RestrictionRepository) *RestrictionValidator {
	return &RestrictionValidator{
		network: network,
		rules:   rules,
	}
}

// ValidateRoute checks whether a factory→hub→destination route is allowed
// under the destination's trade rules. It returns the decision plus a human
// reason when blocked. An error means a dangling id, not a blocked route.
func (v *RestrictionValidator) ValidateRoute(factory entities.FactoryID, hub entities.HubID, destination entities.CountryCode) (bool, string, error) {
	f, err := v.network.GetFactory(factory)
	if err != nil {
		return false, "", fmt.Errorf("validate route: %w", err)
	}
	h, err := v.network.GetHub(hub)
	if err != nil {
		return false, "", fmt.Errorf("validate route: %w", err)
	}
	if _, err := v.network.GetCountry(destination); err != nil {
		return false, "", fmt.Errorf("validate route: %w", err)
	}

	rules, err := v.rules.GetRestrictionsFor(destination)
	if err != nil {
		return false, "", fmt.Errorf("validate route: %w", err)
	}
	for _, r := range rules {
		if r.BlocksOrigin(f.Country) {
			return false, r.Reason, nil
		}
		if r.BlocksHub(h.Country) {
			return false, r.Reason, nil
		}
	}

	return true, "", nil
}

// OriginBlockReason returns the MADE_IN reason blocking the given factory
// country for a destination, if one exists.
func (v *RestrictionValidator) OriginBlockReason(factoryCountry, destination entities.CountryCode) (string, bool) {
	rules, err := v.rules.GetRestrictionsFor(destination)
	if err != nil {
		return "", false
	}
	for _, r := range rules {
		if r.BlocksOrigin(factoryCountry) {
			return r.Reason, true
		}
	}

	return "", false
}

// HubBlockReason returns the ROUTED_THROUGH reason blocking the given hub
// country for a destination, if one exists.
func (v *RestrictionValidator) HubBlockReason(hubCountry, destination entities.CountryCode) (string, bool) {
	rules, err := v.rules.GetRestrictionsFor(destination)
	if err != nil {
		return "", false
	}
	for _, r := range rules {
		if r.BlocksHub(hubCountry) {
			return r.Reason, true
		}
	}

	return "", false
}
