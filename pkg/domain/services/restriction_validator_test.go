package services

import (
	"testing"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/memory"
)

func newValidatorFixture(t *testing.T) *RestrictionValidator {
	t.Helper()
	store := memory.NewReferenceStore()

	loads := []error{
		store.LoadRegions([]entities.Region{
			{ID: "NAM", Name: "North America"},
			{ID: "NEA", Name: "Northeast Asia"},
		}),
		store.LoadCountries([]entities.Country{
			{Code: "US", Name: "United States", Region: "NAM"},
			{Code: "MX", Name: "Mexico", Region: "NAM"},
			{Code: "CN", Name: "China", Region: "NEA"},
		}),
		store.LoadFactories([]entities.Factory{
			{ID: "F_CN_01", Name: "Shenzhen Plant", City: "Shenzhen", Country: "CN", Region: "NEA", CostMultiplier: 1.0},
			{ID: "F_MX_01", Name: "Monterrey Plant", City: "Monterrey", Country: "MX", Region: "NAM", CostMultiplier: 1.05},
		}),
		store.LoadHubs([]entities.Hub{
			{ID: "H_CN_01", Name: "Shanghai Hub", City: "Shanghai", Country: "CN", Region: "NEA", MonthlyThroughput: 1000},
			{ID: "H_US_01", Name: "Memphis Hub", City: "Memphis", Country: "US", Region: "NAM", MonthlyThroughput: 2000},
		}),
		store.LoadRestrictions([]entities.Restriction{
			{Destination: "US", Restricted: "CN", Kind: entities.MadeIn, Reason: "trade restrictions"},
			{Destination: "US", Restricted: "CN", Kind: entities.RoutedThrough, Reason: "security compliance"},
		}),
	}
	for _, err := range loads {
		if err != nil {
			t.Fatalf("failed to load fixture: %v", err)
		}
	}

	return NewRestrictionValidator(store, store)
}

func TestValidateRoute(t *testing.T) {
	validator := newValidatorFixture(t)

	testCases := []struct {
		name       string
		factory    entities.FactoryID
		hub        entities.HubID
		dest       entities.CountryCode
		allowed    bool
		wantReason string
	}{
		{"restricted origin", "F_CN_01", "H_US_01", "US", false, "trade restrictions"},
		{"restricted hub", "F_MX_01", "H_CN_01", "US", false, "security compliance"},
		{"clean route", "F_MX_01", "H_US_01", "US", true, ""},
		{"no rules for destination", "F_CN_01", "H_CN_01", "MX", true, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, reason, err := validator.ValidateRoute(tc.factory, tc.hub, tc.dest)
			if err != nil {
				t.Fatalf("ValidateRoute: unexpected error: %v", err)
			}
			if allowed != tc.allowed {
				t.Errorf("ValidateRoute(%s, %s, %s): expected allowed=%v, got %v",
					tc.factory, tc.hub, tc.dest, tc.allowed, allowed)
			}
			if reason != tc.wantReason {
				t.Errorf("ValidateRoute(%s, %s, %s): expected reason %q, got %q",
					tc.factory, tc.hub, tc.dest, tc.wantReason, reason)
			}
		})
	}
}

func TestValidateRouteUnknownIDs(t *testing.T) {
	validator := newValidatorFixture(t)

	if _, _, err := validator.ValidateRoute("F_XX_99", "H_US_01", "US"); err == nil {
		t.Error("Expected error for unknown factory")
	}
	if _, _, err := validator.ValidateRoute("F_MX_01", "H_XX_99", "US"); err == nil {
		t.Error("Expected error for unknown hub")
	}
	if _, _, err := validator.ValidateRoute("F_MX_01", "H_US_01", "ZZ"); err == nil {
		t.Error("Expected error for unknown destination")
	}
}

func TestOriginBlockReason(t *testing.T) {
	validator := newValidatorFixture(t)

	reason, blocked := validator.OriginBlockReason("CN", "US")
	if !blocked || reason != "trade restrictions" {
		t.Errorf("Expected CN origin blocked for US with made-in reason, got (%q, %v)", reason, blocked)
	}

	if reason, blocked := validator.OriginBlockReason("MX", "US"); blocked {
		t.Errorf("Expected MX origin allowed for US, got reason %q", reason)
	}
	if reason, blocked := validator.OriginBlockReason("CN", "MX"); blocked {
		t.Errorf("Expected CN origin allowed for MX, got reason %q", reason)
	}
}

func TestHubBlockReason(t *testing.T) {
	validator := newValidatorFixture(t)

	reason, blocked := validator.HubBlockReason("CN", "US")
	if !blocked || reason != "security compliance" {
		t.Errorf("Expected CN hubs blocked for US with routed-through reason, got (%q, %v)", reason, blocked)
	}

	if reason, blocked := validator.HubBlockReason("US", "US"); blocked {
		t.Errorf("Expected US hubs allowed for US, got reason %q", reason)
	}
}
