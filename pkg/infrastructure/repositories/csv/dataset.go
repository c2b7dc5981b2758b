// Package csv loads and persists supply network reference data as a
// directory of CSV files, one file per table. Loader and Writer share the
// same file names and headers, so a written directory always loads back.
package csv

import "github.com/vsinha/supplyflow/pkg/domain/entities"

// File names inside a dataset directory
const (
	RegionsFile             = "regions.csv"
	CountriesFile           = "countries.csv"
	FactoriesFile           = "factories.csv"
	HubsFile                = "hubs.csv"
	CategoriesFile          = "product_categories.csv"
	ProductsFile            = "products.csv"
	ProductAvailabilityFile = "product_availability.csv"
	CapacitiesFile          = "factory_category_capacity.csv"
	RestrictionsFile        = "geopolitical_restrictions.csv"
	FlowsFile               = "all_flows.csv"
)

// Column headers, shared between Loader validation and Writer output
var (
	regionsHeader   = []string{"region_id", "region_name"}
	countriesHeader = []string{"country_code", "country_name", "region_id"}
	factoriesHeader = []string{
		"factory_id", "factory_name", "city", "country_code", "region_id", "cost_multiplier",
	}
	hubsHeader = []string{
		"hub_id", "hub_name", "city", "country_code", "region_id", "monthly_throughput_capacity",
	}
	categoriesHeader = []string{
		"category_id", "category_name", "urgency", "base_manufacturing_cost_usd", "representative_weight_kg",
	}
	productsHeader     = []string{"product_id", "product_name", "category_id", "retail_price_tier"}
	availabilityHeader = []string{"product_id", "region_id"}
	capacitiesHeader = []string{
		"factory_id", "category_id", "unit_manufacturing_cost_usd", "monthly_capacity_units",
	}
	restrictionsHeader = []string{
		"destination_country_code", "restricted_country_code", "restriction_type", "reason",
	}
	flowsHeader = []string{
		"factory_id", "hub_id", "country_code", "category_id",
		"manufacturing_cost", "transport_cost", "hub_handling_cost", "last_mile_cost",
		"tariff_pct", "tariff_amount", "total_landed_cost",
		"transit_days", "max_lead_time_days",
		"is_lead_time_feasible", "is_geopolitically_restricted",
	}
)

// Dataset holds every reference table one dataset directory contains.
// Product region availability rides on Product.Regions rather than as its
// own table; the Writer splits it back out into product_availability.csv.
type Dataset struct {
	Regions      []entities.Region
	Countries    []entities.Country
	Factories    []entities.Factory
	Hubs         []entities.Hub
	Categories   []entities.Category
	Products     []entities.Product
	Capacities   []entities.CapacityRecord
	Restrictions []entities.Restriction
	Flows        []entities.Flow
}
