// Package datagen builds a complete synthetic supply network: factories,
// hubs, countries, a product catalog, and the precomputed flow table the
// allocation engine consumes. Generation is deterministic per seed.
package datagen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/csv"
)

// DefaultSeed reproduces the reference dataset
const DefaultSeed = 42

const (
	earthRadiusKm    = 6371.0
	roadFactor       = 1.3
	kmPerDay         = 400.0
	baseRatePerKmKg  = 0.003
	minTransportCost = 1.50
)

// Generator produces synthetic supply network datasets
type Generator struct {
	rand *rand.Rand
}

// New creates a generator with a seeded random source
func New(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

type transportKey struct {
	factory entities.FactoryID
	hub     entities.HubID
}

type lastMileKey struct {
	hub     entities.HubID
	country entities.CountryCode
}

type limitKey struct {
	country  entities.CountryCode
	category entities.CategoryID
}

type capKey struct {
	factory  entities.FactoryID
	category entities.CategoryID
}

// leg is one shipping segment: per-unit cost and days in transit
type leg struct {
	cost float64
	days int
}

// Generate builds the full dataset and verifies that every country keeps at
// least one feasible flow per category.
func (g *Generator) Generate() (*csv.Dataset, error) {
	capacities := g.generateCapacities()
	transport := g.generateTransportLegs()
	handling := g.generateHandlingCosts()
	lastMile := g.generateLastMileLegs()
	leadTimes := g.generateLeadTimes()
	flows := g.assembleFlows(capacities, transport, handling, lastMile, leadTimes)

	ds := &csv.Dataset{
		Regions:      regionTable(),
		Countries:    countryTable(),
		Factories:    factoryTable(),
		Hubs:         hubTable(),
		Categories:   categoryTable(),
		Products:     productTable(),
		Capacities:   capacities,
		Restrictions: restrictionTable(),
		Flows:        flows,
	}

	if err := validateCoverage(flows); err != nil {
		return nil, err
	}

	return ds, nil
}

// generateCapacities prices each factory-category line at the category base
// cost times the factory multiplier, within 8% noise, and draws monthly
// capacity from the factory country's range.
func (g *Generator) generateCapacities() []entities.CapacityRecord {
	categories := categoryLookup()

	var records []entities.CapacityRecord
	for _, f := range factorySeeds {
		bounds := capacityRanges[f.country]
		for _, catID := range factoryCategories[f.id] {
			cat := categories[catID]
			cost := round2(cat.BaseUnitCost * f.costMultiplier * (1 + g.uniform(-0.08, 0.08)))
			capacity := bounds.lo + g.rand.Intn(bounds.hi-bounds.lo+1)
			records = append(records, entities.CapacityRecord{
				Factory:         f.id,
				Category:        catID,
				UnitCost:        cost,
				MonthlyCapacity: entities.Units(capacity),
			})
		}
	}
	return records
}

// generateTransportLegs prices every factory-hub lane per kilogram. Long
// lanes pick up a little schedule jitter.
func (g *Generator) generateTransportLegs() map[transportKey]leg {
	legs := make(map[transportKey]leg, len(factorySeeds)*len(hubSeeds))
	for _, f := range factorySeeds {
		for _, h := range hubSeeds {
			distance := haversineKm(f.lat, f.lon, h.lat, h.lon) * roadFactor
			cost := math.Max(minTransportCost, round2(distance*baseRatePerKmKg))
			cost = g.addNoise(cost, 0.12)

			days := max(2, int(math.Round(distance/kmPerDay)))
			if days > 10 {
				days += g.rand.Intn(5) - 2
			}

			legs[transportKey{f.id, h.id}] = leg{cost: cost, days: days}
		}
	}
	return legs
}

// generateHandlingCosts draws per-unit hub handling, higher in developed
// countries.
func (g *Generator) generateHandlingCosts() map[entities.HubID]float64 {
	developed := make(map[entities.CountryCode]bool, len(countrySeeds))
	for _, c := range countrySeeds {
		developed[c.code] = c.developed
	}

	costs := make(map[entities.HubID]float64, len(hubSeeds))
	for _, h := range hubSeeds {
		if developed[h.country] {
			costs[h.id] = round2(g.uniform(3.0, 5.0))
		} else {
			costs[h.id] = round2(g.uniform(1.0, 3.0))
		}
	}
	return costs
}

// generateLastMileLegs prices hub-to-country delivery in three tiers:
// domestic ground, regional freight, and cross-region international.
func (g *Generator) generateLastMileLegs() map[lastMileKey]leg {
	legs := make(map[lastMileKey]leg, len(hubSeeds)*len(countrySeeds))
	for _, h := range hubSeeds {
		for _, c := range countrySeeds {
			distance := haversineKm(h.lat, h.lon, c.lat, c.lon)
			effective := distance * roadFactor

			var cost float64
			var days int
			switch {
			case h.country == c.code:
				cost = g.uniform(0.50, 2.00)
				days = 1
			case h.region == c.region:
				cost = g.uniform(2.00, 8.00)
				days = max(2, int(math.Round(effective/kmPerDay)))
			default:
				cost = math.Min(15.0, math.Max(5.0, distance*0.0008))
				cost = g.addNoise(cost, 0.15)
				days = max(3, int(math.Round(effective/kmPerDay)))
			}

			legs[lastMileKey{h.id, c.code}] = leg{cost: round2(cost), days: days}
		}
	}
	return legs
}

// generateLeadTimes sets the maximum acceptable lead time per country and
// category from the category urgency tier, tightened for developed markets.
func (g *Generator) generateLeadTimes() map[limitKey]int {
	urgencyBase := map[int]int{1: 30, 2: 45, 3: 60}

	limits := make(map[limitKey]int, len(countrySeeds)*len(categorySeeds))
	for _, c := range countrySeeds {
		for _, cat := range categorySeeds {
			limit := urgencyBase[cat.Urgency]
			if c.developed {
				limit -= 7
			} else {
				limit += 7
			}
			limit += g.rand.Intn(5) - 2
			if limit < 10 {
				limit = 10
			}
			limits[limitKey{c.code, cat.ID}] = limit
		}
	}
	return limits
}

// assembleFlows combines every factory-category-hub-country route into a
// flow record with its cost breakdown, transit time, and feasibility flags.
func (g *Generator) assembleFlows(
	capacities []entities.CapacityRecord,
	transport map[transportKey]leg,
	handling map[entities.HubID]float64,
	lastMile map[lastMileKey]leg,
	leadTimes map[limitKey]int,
) []entities.Flow {
	categories := categoryLookup()
	mfgCosts := make(map[capKey]float64, len(capacities))
	for _, rec := range capacities {
		mfgCosts[capKey{rec.Factory, rec.Category}] = rec.UnitCost
	}
	restrictions := restrictionTable()

	var flows []entities.Flow
	for _, f := range factorySeeds {
		for _, catID := range factoryCategories[f.id] {
			cat := categories[catID]
			mfg := mfgCosts[capKey{f.id, catID}]

			for _, h := range hubSeeds {
				line := transport[transportKey{f.id, h.id}]
				transportCost := round2(line.cost * cat.UnitWeightKg)
				handlingCost := handling[h.id]

				for _, c := range countrySeeds {
					delivery := lastMile[lastMileKey{h.id, c.code}]
					transitDays := line.days + delivery.days
					tariffPct := tariffFor(f.country, c.code)
					tariffAmount := round2(mfg * tariffPct)
					total := round2(mfg + transportCost + handlingCost + delivery.cost + tariffAmount)
					maxLead := leadTimes[limitKey{c.code, catID}]

					flows = append(flows, entities.Flow{
						Factory:     f.id,
						Hub:         h.id,
						Destination: c.code,
						Category:    catID,
						Cost: entities.CostBreakdown{
							Manufacturing: mfg,
							Transport:     transportCost,
							HubHandling:   handlingCost,
							LastMile:      delivery.cost,
							TariffPct:     tariffPct,
							TariffAmount:  tariffAmount,
						},
						LandedCost:       total,
						TransitDays:      transitDays,
						MaxLeadTimeDays:  maxLead,
						LeadTimeFeasible: transitDays <= maxLead,
						Restricted:       flowRestricted(restrictions, f.country, h.country, c.code),
					})
				}
			}
		}
	}
	return flows
}

// validateCoverage confirms every country-category pair keeps at least one
// feasible flow, so no request is unsatisfiable from the start.
func validateCoverage(flows []entities.Flow) error {
	covered := make(map[limitKey]bool)
	for _, f := range flows {
		if f.Feasible() {
			covered[limitKey{f.Destination, f.Category}] = true
		}
	}

	for _, c := range countrySeeds {
		for _, cat := range categorySeeds {
			if !covered[limitKey{c.code, cat.ID}] {
				return fmt.Errorf("generated network leaves %s/%s without a feasible flow", c.code, cat.ID)
			}
		}
	}
	return nil
}

func flowRestricted(rules []entities.Restriction, factoryCountry, hubCountry, destination entities.CountryCode) bool {
	for _, r := range rules {
		if r.Destination != destination {
			continue
		}
		if r.BlocksOrigin(factoryCountry) || r.BlocksHub(hubCountry) {
			return true
		}
	}
	return false
}

func tariffFor(origin, destination entities.CountryCode) float64 {
	if origin == destination {
		return 0
	}
	if pct, ok := tariffRules[tariffKey{origin, destination}]; ok {
		return pct
	}
	return defaultTariff
}

func regionTable() []entities.Region {
	regions := make([]entities.Region, 0, len(regionSeeds))
	for _, r := range regionSeeds {
		regions = append(regions, entities.Region{ID: r.id, Name: r.name})
	}
	return regions
}

func countryTable() []entities.Country {
	countries := make([]entities.Country, 0, len(countrySeeds))
	for _, c := range countrySeeds {
		countries = append(countries, entities.Country{Code: c.code, Name: c.name, Region: c.region})
	}
	return countries
}

func factoryTable() []entities.Factory {
	factories := make([]entities.Factory, 0, len(factorySeeds))
	for _, f := range factorySeeds {
		factories = append(factories, entities.Factory{
			ID:             f.id,
			Name:           f.name,
			City:           f.city,
			Country:        f.country,
			Region:         f.region,
			CostMultiplier: f.costMultiplier,
		})
	}
	return factories
}

func hubTable() []entities.Hub {
	hubs := make([]entities.Hub, 0, len(hubSeeds))
	for _, h := range hubSeeds {
		hubs = append(hubs, entities.Hub{
			ID:                h.id,
			Name:              h.name,
			City:              h.city,
			Country:           h.country,
			Region:            h.region,
			MonthlyThroughput: h.throughput,
		})
	}
	return hubs
}

func categoryTable() []entities.Category {
	categories := make([]entities.Category, len(categorySeeds))
	copy(categories, categorySeeds)
	return categories
}

func productTable() []entities.Product {
	products := make([]entities.Product, 0, len(productSeeds))
	for _, p := range productSeeds {
		regions := make([]entities.RegionID, len(p.regions))
		copy(regions, p.regions)
		products = append(products, entities.Product{
			ID:        p.id,
			Name:      p.name,
			Category:  p.category,
			PriceTier: p.tier,
			Regions:   regions,
		})
	}
	return products
}

func restrictionTable() []entities.Restriction {
	rules := make([]entities.Restriction, 0, len(restrictionSeeds))
	for _, r := range restrictionSeeds {
		rules = append(rules, entities.Restriction{
			Destination: r.destination,
			Restricted:  r.restricted,
			Kind:        r.kind,
			Reason:      r.reason,
		})
	}
	return rules
}

func categoryLookup() map[entities.CategoryID]entities.Category {
	lookup := make(map[entities.CategoryID]entities.Category, len(categorySeeds))
	for _, c := range categorySeeds {
		lookup[c.ID] = c
	}
	return lookup
}

// haversineKm is the great-circle distance between two points in kilometers
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rand.Float64()*(hi-lo)
}

// addNoise perturbs a value by up to the given fraction either way
func (g *Generator) addNoise(value, pct float64) float64 {
	return round2(value * (1 + g.uniform(-pct, pct)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
