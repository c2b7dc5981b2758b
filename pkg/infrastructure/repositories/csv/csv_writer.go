package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
)

// Writer persists a dataset as the directory layout Loader reads
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDirectory writes all ten CSV files for the dataset, creating the
// directory if needed.
func (w *Writer) WriteDirectory(dir string, ds *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dataset directory %s: %w", dir, err)
	}

	if err := w.WriteRegions(filepath.Join(dir, RegionsFile), ds.Regions); err != nil {
		return err
	}
	if err := w.WriteCountries(filepath.Join(dir, CountriesFile), ds.Countries); err != nil {
		return err
	}
	if err := w.WriteFactories(filepath.Join(dir, FactoriesFile), ds.Factories); err != nil {
		return err
	}
	if err := w.WriteHubs(filepath.Join(dir, HubsFile), ds.Hubs); err != nil {
		return err
	}
	if err := w.WriteCategories(filepath.Join(dir, CategoriesFile), ds.Categories); err != nil {
		return err
	}
	if err := w.WriteProducts(filepath.Join(dir, ProductsFile), ds.Products); err != nil {
		return err
	}
	if err := w.WriteProductAvailability(filepath.Join(dir, ProductAvailabilityFile), ds.Products); err != nil {
		return err
	}
	if err := w.WriteCapacities(filepath.Join(dir, CapacitiesFile), ds.Capacities); err != nil {
		return err
	}
	if err := w.WriteRestrictions(filepath.Join(dir, RestrictionsFile), ds.Restrictions); err != nil {
		return err
	}
	if err := w.WriteFlows(filepath.Join(dir, FlowsFile), ds.Flows); err != nil {
		return err
	}

	return nil
}

// WriteRegions writes the region table
func (w *Writer) WriteRegions(filename string, regions []entities.Region) error {
	rows := make([][]string, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, []string{string(r.ID), r.Name})
	}
	return writeCSV(filename, regionsHeader, rows)
}

// WriteCountries writes the country table
func (w *Writer) WriteCountries(filename string, countries []entities.Country) error {
	rows := make([][]string, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, []string{string(c.Code), c.Name, string(c.Region)})
	}
	return writeCSV(filename, countriesHeader, rows)
}

// WriteFactories writes the factory table
func (w *Writer) WriteFactories(filename string, factories []entities.Factory) error {
	rows := make([][]string, 0, len(factories))
	for _, f := range factories {
		rows = append(rows, []string{
			string(f.ID), f.Name, f.City, string(f.Country), string(f.Region),
			formatFloat(f.CostMultiplier),
		})
	}
	return writeCSV(filename, factoriesHeader, rows)
}

// WriteHubs writes the hub table
func (w *Writer) WriteHubs(filename string, hubs []entities.Hub) error {
	rows := make([][]string, 0, len(hubs))
	for _, h := range hubs {
		rows = append(rows, []string{
			string(h.ID), h.Name, h.City, string(h.Country), string(h.Region),
			strconv.FormatInt(int64(h.MonthlyThroughput), 10),
		})
	}
	return writeCSV(filename, hubsHeader, rows)
}

// WriteCategories writes the category table
func (w *Writer) WriteCategories(filename string, categories []entities.Category) error {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			string(c.ID), c.Name, strconv.Itoa(c.Urgency),
			formatMoney(c.BaseUnitCost), formatFloat(c.UnitWeightKg),
		})
	}
	return writeCSV(filename, categoriesHeader, rows)
}

// WriteProducts writes the product catalog without its availability column
func (w *Writer) WriteProducts(filename string, products []entities.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{string(p.ID), p.Name, string(p.Category), p.PriceTier})
	}
	return writeCSV(filename, productsHeader, rows)
}

// WriteProductAvailability flattens each product's region list into one row
// per product and region.
func (w *Writer) WriteProductAvailability(filename string, products []entities.Product) error {
	var rows [][]string
	for _, p := range products {
		for _, region := range p.Regions {
			rows = append(rows, []string{string(p.ID), string(region)})
		}
	}
	return writeCSV(filename, availabilityHeader, rows)
}

// WriteCapacities writes the per-factory, per-category capacity table
func (w *Writer) WriteCapacities(filename string, capacities []entities.CapacityRecord) error {
	rows := make([][]string, 0, len(capacities))
	for _, c := range capacities {
		rows = append(rows, []string{
			string(c.Factory), string(c.Category),
			formatMoney(c.UnitCost), strconv.FormatInt(int64(c.MonthlyCapacity), 10),
		})
	}
	return writeCSV(filename, capacitiesHeader, rows)
}

// WriteRestrictions writes the trade rule table
func (w *Writer) WriteRestrictions(filename string, restrictions []entities.Restriction) error {
	rows := make([][]string, 0, len(restrictions))
	for _, r := range restrictions {
		rows = append(rows, []string{
			string(r.Destination), string(r.Restricted), r.Kind.String(), r.Reason,
		})
	}
	return writeCSV(filename, restrictionsHeader, rows)
}

// WriteFlows writes the precomputed flow table
func (w *Writer) WriteFlows(filename string, flows []entities.Flow) error {
	rows := make([][]string, 0, len(flows))
	for _, f := range flows {
		rows = append(rows, []string{
			string(f.Factory), string(f.Hub), string(f.Destination), string(f.Category),
			formatMoney(f.Cost.Manufacturing), formatMoney(f.Cost.Transport),
			formatMoney(f.Cost.HubHandling), formatMoney(f.Cost.LastMile),
			formatFloat(f.Cost.TariffPct), formatMoney(f.Cost.TariffAmount),
			formatMoney(f.LandedCost),
			strconv.Itoa(f.TransitDays), strconv.Itoa(f.MaxLeadTimeDays),
			formatFlag(f.LeadTimeFeasible), formatFlag(f.Restricted),
		})
	}
	return writeCSV(filename, flowsHeader, rows)
}

func writeCSV(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filename, err)
	}

	return nil
}

// formatMoney renders a cost in whole cents
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatFloat renders the shortest representation that round-trips
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
