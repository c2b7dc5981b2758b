package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/memory"
)

// Loader handles loading supply network reference data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDirectory loads a complete dataset directory into an indexed reference
// store, wiring the tables in dependency order so dangling references are
// caught at load time.
func (l *Loader) LoadDirectory(dir string) (*memory.ReferenceStore, error) {
	ds, err := l.LoadDataset(dir)
	if err != nil {
		return nil, err
	}

	store := memory.NewReferenceStore()
	if err := store.LoadRegions(ds.Regions); err != nil {
		return nil, err
	}
	if err := store.LoadCountries(ds.Countries); err != nil {
		return nil, err
	}
	if err := store.LoadFactories(ds.Factories); err != nil {
		return nil, err
	}
	if err := store.LoadHubs(ds.Hubs); err != nil {
		return nil, err
	}
	if err := store.LoadCategories(ds.Categories); err != nil {
		return nil, err
	}
	if err := store.LoadProducts(ds.Products); err != nil {
		return nil, err
	}
	if err := store.LoadCapacities(ds.Capacities); err != nil {
		return nil, err
	}
	if err := store.LoadRestrictions(ds.Restrictions); err != nil {
		return nil, err
	}
	if err := store.LoadFlows(ds.Flows); err != nil {
		return nil, err
	}

	return store, nil
}

// LoadDataset reads all ten CSV files from a dataset directory. Product
// region availability is merged onto the products it belongs to.
func (l *Loader) LoadDataset(dir string) (*Dataset, error) {
	regions, err := l.LoadRegions(filepath.Join(dir, RegionsFile))
	if err != nil {
		return nil, err
	}
	countries, err := l.LoadCountries(filepath.Join(dir, CountriesFile))
	if err != nil {
		return nil, err
	}
	factories, err := l.LoadFactories(filepath.Join(dir, FactoriesFile))
	if err != nil {
		return nil, err
	}
	hubs, err := l.LoadHubs(filepath.Join(dir, HubsFile))
	if err != nil {
		return nil, err
	}
	categories, err := l.LoadCategories(filepath.Join(dir, CategoriesFile))
	if err != nil {
		return nil, err
	}
	products, err := l.LoadProducts(filepath.Join(dir, ProductsFile))
	if err != nil {
		return nil, err
	}
	availability, err := l.LoadProductAvailability(filepath.Join(dir, ProductAvailabilityFile))
	if err != nil {
		return nil, err
	}
	capacities, err := l.LoadCapacities(filepath.Join(dir, CapacitiesFile))
	if err != nil {
		return nil, err
	}
	restrictions, err := l.LoadRestrictions(filepath.Join(dir, RestrictionsFile))
	if err != nil {
		return nil, err
	}
	flows, err := l.LoadFlows(filepath.Join(dir, FlowsFile))
	if err != nil {
		return nil, err
	}

	for i := range products {
		products[i].Regions = availability[products[i].ID]
	}

	return &Dataset{
		Regions:      regions,
		Countries:    countries,
		Factories:    factories,
		Hubs:         hubs,
		Categories:   categories,
		Products:     products,
		Capacities:   capacities,
		Restrictions: restrictions,
		Flows:        flows,
	}, nil
}

// LoadRegions loads regions from a CSV file
func (l *Loader) LoadRegions(filename string) ([]entities.Region, error) {
	records, err := readAll("regions", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, regionsHeader) {
		return nil, fmt.Errorf("regions CSV header mismatch. Expected: %v, Got: %v", regionsHeader, header)
	}

	var regions []entities.Region
	for i, record := range records[1:] {
		if len(record) != len(regionsHeader) {
			return nil, fmt.Errorf("regions CSV row %d: expected %d columns, got %d", i+2, len(regionsHeader), len(record))
		}

		regions = append(regions, entities.Region{
			ID:   entities.RegionID(record[0]),
			Name: record[1],
		})
	}

	return regions, nil
}

// LoadCountries loads countries from a CSV file
func (l *Loader) LoadCountries(filename string) ([]entities.Country, error) {
	records, err := readAll("countries", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, countriesHeader) {
		return nil, fmt.Errorf("countries CSV header mismatch. Expected: %v, Got: %v", countriesHeader, header)
	}

	var countries []entities.Country
	for i, record := range records[1:] {
		if len(record) != len(countriesHeader) {
			return nil, fmt.Errorf("countries CSV row %d: expected %d columns, got %d", i+2, len(countriesHeader), len(record))
		}

		countries = append(countries, entities.Country{
			Code:   entities.CountryCode(record[0]),
			Name:   record[1],
			Region: entities.RegionID(record[2]),
		})
	}

	return countries, nil
}

// LoadFactories loads factories from a CSV file
func (l *Loader) LoadFactories(filename string) ([]entities.Factory, error) {
	records, err := readAll("factories", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, factoriesHeader) {
		return nil, fmt.Errorf("factories CSV header mismatch. Expected: %v, Got: %v", factoriesHeader, header)
	}

	var factories []entities.Factory
	for i, record := range records[1:] {
		if len(record) != len(factoriesHeader) {
			return nil, fmt.Errorf("factories CSV row %d: expected %d columns, got %d", i+2, len(factoriesHeader), len(record))
		}

		factory, err := parseFactory(record)
		if err != nil {
			return nil, fmt.Errorf("factories CSV row %d: %w", i+2, err)
		}

		factories = append(factories, factory)
	}

	return factories, nil
}

// LoadHubs loads distribution hubs from a CSV file
func (l *Loader) LoadHubs(filename string) ([]entities.Hub, error) {
	records, err := readAll("hubs", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, hubsHeader) {
		return nil, fmt.Errorf("hubs CSV header mismatch. Expected: %v, Got: %v", hubsHeader, header)
	}

	var hubs []entities.Hub
	for i, record := range records[1:] {
		if len(record) != len(hubsHeader) {
			return nil, fmt.Errorf("hubs CSV row %d: expected %d columns, got %d", i+2, len(hubsHeader), len(record))
		}

		hub, err := parseHub(record)
		if err != nil {
			return nil, fmt.Errorf("hubs CSV row %d: %w", i+2, err)
		}

		hubs = append(hubs, hub)
	}

	return hubs, nil
}

// LoadCategories loads product categories from a CSV file
func (l *Loader) LoadCategories(filename string) ([]entities.Category, error) {
	records, err := readAll("categories", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, categoriesHeader) {
		return nil, fmt.Errorf("categories CSV header mismatch. Expected: %v, Got: %v", categoriesHeader, header)
	}

	var categories []entities.Category
	for i, record := range records[1:] {
		if len(record) != len(categoriesHeader) {
			return nil, fmt.Errorf("categories CSV row %d: expected %d columns, got %d", i+2, len(categoriesHeader), len(record))
		}

		category, err := parseCategory(record)
		if err != nil {
			return nil, fmt.Errorf("categories CSV row %d: %w", i+2, err)
		}

		categories = append(categories, category)
	}

	return categories, nil
}

// LoadProducts loads the product catalog from a CSV file. Region
// availability lives in its own file; see LoadProductAvailability.
func (l *Loader) LoadProducts(filename string) ([]entities.Product, error) {
	records, err := readAll("products", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, productsHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", productsHeader, header)
	}

	var products []entities.Product
	for i, record := range records[1:] {
		if len(record) != len(productsHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(productsHeader), len(record))
		}

		products = append(products, entities.Product{
			ID:        entities.ProductID(record[0]),
			Name:      record[1],
			Category:  entities.CategoryID(record[2]),
			PriceTier: record[3],
		})
	}

	return products, nil
}

// LoadProductAvailability loads the product-to-region availability table,
// keyed by product so it can be merged onto the catalog.
func (l *Loader) LoadProductAvailability(filename string) (map[entities.ProductID][]entities.RegionID, error) {
	records, err := readAll("product availability", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, availabilityHeader) {
		return nil, fmt.Errorf("product availability CSV header mismatch. Expected: %v, Got: %v", availabilityHeader, header)
	}

	availability := make(map[entities.ProductID][]entities.RegionID)
	for i, record := range records[1:] {
		if len(record) != len(availabilityHeader) {
			return nil, fmt.Errorf("product availability CSV row %d: expected %d columns, got %d", i+2, len(availabilityHeader), len(record))
		}

		id := entities.ProductID(record[0])
		availability[id] = append(availability[id], entities.RegionID(record[1]))
	}

	return availability, nil
}

// LoadCapacities loads per-factory, per-category production capacity from a
// CSV file
func (l *Loader) LoadCapacities(filename string) ([]entities.CapacityRecord, error) {
	records, err := readAll("capacities", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, capacitiesHeader) {
		return nil, fmt.Errorf("capacities CSV header mismatch. Expected: %v, Got: %v", capacitiesHeader, header)
	}

	var capacities []entities.CapacityRecord
	for i, record := range records[1:] {
		if len(record) != len(capacitiesHeader) {
			return nil, fmt.Errorf("capacities CSV row %d: expected %d columns, got %d", i+2, len(capacitiesHeader), len(record))
		}

		capacity, err := parseCapacity(record)
		if err != nil {
			return nil, fmt.Errorf("capacities CSV row %d: %w", i+2, err)
		}

		capacities = append(capacities, capacity)
	}

	return capacities, nil
}

// LoadRestrictions loads geopolitical trade rules from a CSV file. A
// header-only file is valid: not every network carries restrictions.
func (l *Loader) LoadRestrictions(filename string) ([]entities.Restriction, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open restrictions file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read restrictions CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("restrictions CSV must have a header row")
	}

	header := records[0]
	if !validateHeader(header, restrictionsHeader) {
		return nil, fmt.Errorf("restrictions CSV header mismatch. Expected: %v, Got: %v", restrictionsHeader, header)
	}

	var restrictions []entities.Restriction
	for i, record := range records[1:] {
		if len(record) != len(restrictionsHeader) {
			return nil, fmt.Errorf("restrictions CSV row %d: expected %d columns, got %d", i+2, len(restrictionsHeader), len(record))
		}

		restriction, err := parseRestriction(record)
		if err != nil {
			return nil, fmt.Errorf("restrictions CSV row %d: %w", i+2, err)
		}

		restrictions = append(restrictions, restriction)
	}

	return restrictions, nil
}

// LoadFlows loads the precomputed flow table from a CSV file
func (l *Loader) LoadFlows(filename string) ([]entities.Flow, error) {
	records, err := readAll("flows", filename)
	if err != nil {
		return nil, err
	}

	header := records[0]
	if !validateHeader(header, flowsHeader) {
		return nil, fmt.Errorf("flows CSV header mismatch. Expected: %v, Got: %v", flowsHeader, header)
	}

	var flows []entities.Flow
	for i, record := range records[1:] {
		if len(record) != len(flowsHeader) {
			return nil, fmt.Errorf("flows CSV row %d: expected %d columns, got %d", i+2, len(flowsHeader), len(record))
		}

		flow, err := parseFlow(record)
		if err != nil {
			return nil, fmt.Errorf("flows CSV row %d: %w", i+2, err)
		}

		flows = append(flows, flow)
	}

	return flows, nil
}

// readAll opens a CSV file and reads every record, requiring a header row
// and at least one data row.
func readAll(table, filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", table, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", table, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", table)
	}

	return records, nil
}

// validateHeader checks if the CSV header matches expectations
func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseFactory(record []string) (entities.Factory, error) {
	multiplier, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return entities.Factory{}, fmt.Errorf("invalid cost_multiplier: %s", record[5])
	}

	factory, err := entities.NewFactory(
		entities.FactoryID(record[0]),
		record[1],
		record[2],
		entities.CountryCode(record[3]),
		entities.RegionID(record[4]),
		multiplier,
	)
	if err != nil {
		return entities.Factory{}, err
	}

	return *factory, nil
}

func parseHub(record []string) (entities.Hub, error) {
	throughput, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return entities.Hub{}, fmt.Errorf("invalid monthly_throughput_capacity: %s", record[5])
	}

	hub, err := entities.NewHub(
		entities.HubID(record[0]),
		record[1],
		record[2],
		entities.CountryCode(record[3]),
		entities.RegionID(record[4]),
		entities.Units(throughput),
	)
	if err != nil {
		return entities.Hub{}, err
	}

	return *hub, nil
}

func parseCategory(record []string) (entities.Category, error) {
	urgency, err := strconv.Atoi(record[2])
	if err != nil {
		return entities.Category{}, fmt.Errorf("invalid urgency: %s", record[2])
	}

	baseCost, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return entities.Category{}, fmt.Errorf("invalid base_manufacturing_cost_usd: %s", record[3])
	}

	weight, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return entities.Category{}, fmt.Errorf("invalid representative_weight_kg: %s", record[4])
	}

	category, err := entities.NewCategory(entities.CategoryID(record[0]), record[1], urgency, baseCost, weight)
	if err != nil {
		return entities.Category{}, err
	}

	return *category, nil
}

func parseCapacity(record []string) (entities.CapacityRecord, error) {
	unitCost, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return entities.CapacityRecord{}, fmt.Errorf("invalid unit_manufacturing_cost_usd: %s", record[2])
	}

	capacity, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil {
		return entities.CapacityRecord{}, fmt.Errorf("invalid monthly_capacity_units: %s", record[3])
	}

	return entities.CapacityRecord{
		Factory:         entities.FactoryID(record[0]),
		Category:        entities.CategoryID(record[1]),
		UnitCost:        unitCost,
		MonthlyCapacity: entities.Units(capacity),
	}, nil
}

func parseRestriction(record []string) (entities.Restriction, error) {
	kind, err := entities.ParseRestrictionKind(record[2])
	if err != nil {
		return entities.Restriction{}, err
	}

	return entities.Restriction{
		Destination: entities.CountryCode(record[0]),
		Restricted:  entities.CountryCode(record[1]),
		Kind:        kind,
		Reason:      record[3],
	}, nil
}

func parseFlow(record []string) (entities.Flow, error) {
	manufacturing, err := parseFloatColumn("manufacturing_cost", record[4])
	if err != nil {
		return entities.Flow{}, err
	}
	transport, err := parseFloatColumn("transport_cost", record[5])
	if err != nil {
		return entities.Flow{}, err
	}
	hubHandling, err := parseFloatColumn("hub_handling_cost", record[6])
	if err != nil {
		return entities.Flow{}, err
	}
	lastMile, err := parseFloatColumn("last_mile_cost", record[7])
	if err != nil {
		return entities.Flow{}, err
	}
	tariffPct, err := parseFloatColumn("tariff_pct", record[8])
	if err != nil {
		return entities.Flow{}, err
	}
	tariffAmount, err := parseFloatColumn("tariff_amount", record[9])
	if err != nil {
		return entities.Flow{}, err
	}
	landedCost, err := parseFloatColumn("total_landed_cost", record[10])
	if err != nil {
		return entities.Flow{}, err
	}

	transitDays, err := strconv.Atoi(record[11])
	if err != nil {
		return entities.Flow{}, fmt.Errorf("invalid transit_days: %s", record[11])
	}

	maxLeadTime, err := strconv.Atoi(record[12])
	if err != nil {
		return entities.Flow{}, fmt.Errorf("invalid max_lead_time_days: %s", record[12])
	}

	leadTimeFeasible, err := parseFlag("is_lead_time_feasible", record[13])
	if err != nil {
		return entities.Flow{}, err
	}

	restricted, err := parseFlag("is_geopolitically_restricted", record[14])
	if err != nil {
		return entities.Flow{}, err
	}

	return entities.Flow{
		Factory:     entities.FactoryID(record[0]),
		Hub:         entities.HubID(record[1]),
		Destination: entities.CountryCode(record[2]),
		Category:    entities.CategoryID(record[3]),
		Cost: entities.CostBreakdown{
			Manufacturing: manufacturing,
			Transport:     transport,
			HubHandling:   hubHandling,
			LastMile:      lastMile,
			TariffPct:     tariffPct,
			TariffAmount:  tariffAmount,
		},
		LandedCost:       landedCost,
		TransitDays:      transitDays,
		MaxLeadTimeDays:  maxLeadTime,
		LeadTimeFeasible: leadTimeFeasible,
		Restricted:       restricted,
	}, nil
}

func parseFloatColumn(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, value)
	}
	return v, nil
}

// parseFlag reads the 1/0 boolean encoding the flow table uses
func parseFlag(name, value string) (bool, error) {
	switch value {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s: %s (expected 1 or 0)", name, value)
}
