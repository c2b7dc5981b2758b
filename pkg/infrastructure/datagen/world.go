package datagen

import "github.com/vsinha/supplyflow/pkg/domain/entities"

// Seed tables for the synthetic world. Coordinates drive distance-based
// transport costs and transit days; they never leave this package.

type regionSeed struct {
	id   entities.RegionID
	name string
}

type countrySeed struct {
	code      entities.CountryCode
	name      string
	region    entities.RegionID
	lat, lon  float64
	developed bool
}

type factorySeed struct {
	id             entities.FactoryID
	name           string
	city           string
	country        entities.CountryCode
	region         entities.RegionID
	lat, lon       float64
	costMultiplier float64
}

type hubSeed struct {
	id         entities.HubID
	name       string
	city       string
	country    entities.CountryCode
	region     entities.RegionID
	lat, lon   float64
	throughput entities.Units
}

type productSeed struct {
	id       entities.ProductID
	name     string
	category entities.CategoryID
	tier     string
	regions  []entities.RegionID
}

type restrictionSeed struct {
	destination entities.CountryCode
	restricted  entities.CountryCode
	kind        entities.RestrictionKind
	reason      string
}

type tariffKey struct {
	origin, destination entities.CountryCode
}

var regionSeeds = []regionSeed{
	{"NAM", "North America"},
	{"SAM", "South America"},
	{"EUR", "Europe"},
	{"MEA", "Middle East and Africa"},
	{"NEA", "North East Asia"},
	{"SEA", "South East Asia and Oceania"},
}

var countrySeeds = []countrySeed{
	{"US", "United States", "NAM", 37.09, -95.71, true},
	{"CA", "Canada", "NAM", 56.13, -106.35, true},
	{"MX", "Mexico", "NAM", 23.63, -102.55, false},
	{"BR", "Brazil", "SAM", -14.24, -51.93, false},
	{"AR", "Argentina", "SAM", -38.42, -63.62, false},
	{"DE", "Germany", "EUR", 51.17, 10.45, true},
	{"GB", "United Kingdom", "EUR", 55.38, -3.44, true},
	{"FR", "France", "EUR", 46.23, 2.21, true},
	{"AE", "United Arab Emirates", "MEA", 23.42, 53.85, false},
	{"SA", "Saudi Arabia", "MEA", 23.89, 45.08, false},
	{"ZA", "South Africa", "MEA", -30.56, 22.94, false},
	{"CN", "China", "NEA", 35.86, 104.20, false},
	{"JP", "Japan", "NEA", 36.20, 138.25, true},
	{"KR", "South Korea", "NEA", 35.91, 127.77, true},
	{"IN", "India", "SEA", 20.59, 78.96, false},
	{"VN", "Vietnam", "SEA", 14.06, 108.28, false},
	{"AU", "Australia", "SEA", -25.27, 133.78, true},
}

var factorySeeds = []factorySeed{
	{"F_US_01", "Detroit Electronics", "Detroit", "US", "NAM", 42.33, -83.05, 1.00},
	{"F_MX_01", "Monterrey Assembly", "Monterrey", "MX", "NAM", 25.67, -100.31, 0.65},
	{"F_BR_01", "Sao Paulo Manufacturing", "Sao Paulo", "BR", "SAM", -23.55, -46.63, 0.70},
	{"F_DE_01", "Munich Precision Works", "Munich", "DE", "EUR", 48.14, 11.58, 1.05},
	{"F_GB_01", "Birmingham Tech Plant", "Birmingham", "GB", "EUR", 52.49, -1.90, 0.95},
	{"F_AE_01", "Dubai Industrial City", "Dubai", "AE", "MEA", 25.20, 55.27, 0.75},
	{"F_CN_01", "Shenzhen Electronics Hub", "Shenzhen", "CN", "NEA", 22.54, 114.06, 0.40},
	{"F_CN_02", "Guangzhou Tech Factory", "Guangzhou", "CN", "NEA", 23.13, 113.26, 0.42},
	{"F_KR_01", "Suwon Innovation Plant", "Suwon", "KR", "NEA", 37.26, 127.03, 0.72},
	{"F_VN_01", "Hanoi Assembly Plant", "Hanoi", "VN", "SEA", 21.03, 105.85, 0.38},
	{"F_VN_02", "HCMC Electronics", "Ho Chi Minh City", "VN", "SEA", 10.82, 106.63, 0.40},
	{"F_IN_01", "Chennai Manufacturing", "Chennai", "IN", "SEA", 13.08, 80.27, 0.45},
	{"F_IN_02", "Bangalore Tech Works", "Bangalore", "IN", "SEA", 12.97, 77.59, 0.50},
}

var hubSeeds = []hubSeed{
	{"H_US_01", "Houston Distribution Center", "Houston", "US", "NAM", 29.76, -95.37, 60000},
	{"H_CA_01", "Toronto Logistics Hub", "Toronto", "CA", "NAM", 43.65, -79.38, 36000},
	{"H_MX_01", "Mexico City Warehouse", "Mexico City", "MX", "NAM", 19.43, -99.13, 30000},
	{"H_BR_01", "Sao Paulo Distribution", "Sao Paulo", "BR", "SAM", -23.55, -46.63, 30000},
	{"H_DE_01", "Frankfurt Logistics Center", "Frankfurt", "DE", "EUR", 50.11, 8.68, 54000},
	{"H_GB_01", "London Distribution Hub", "London", "GB", "EUR", 51.51, -0.13, 45000},
	{"H_AE_01", "Dubai Logistics Hub", "Dubai", "AE", "MEA", 25.20, 55.27, 39000},
	{"H_ZA_01", "Johannesburg Distribution Center", "Johannesburg", "ZA", "MEA", -26.20, 28.05, 21000},
	{"H_CN_01", "Shanghai Mega Hub", "Shanghai", "CN", "NEA", 31.23, 121.47, 60000},
	{"H_JP_01", "Tokyo Distribution Center", "Tokyo", "JP", "NEA", 35.68, 139.69, 42000},
	{"H_KR_01", "Busan Port Logistics", "Busan", "KR", "NEA", 35.18, 129.08, 36000},
	{"H_IN_01", "Mumbai Logistics Center", "Mumbai", "IN", "SEA", 19.08, 72.88, 39000},
	{"H_VN_01", "HCMC Distribution Hub", "Ho Chi Minh City", "VN", "SEA", 10.82, 106.63, 24000},
	{"H_AU_01", "Sydney Logistics Center", "Sydney", "AU", "SEA", -33.87, 151.21, 27000},
}

// Urgency 1 categories carry the tightest lead-time windows.
var categorySeeds = []entities.Category{
	{ID: "CAT01", Name: "Smartphones", Urgency: 1, BaseUnitCost: 250, UnitWeightKg: 0.22},
	{ID: "CAT02", Name: "Laptops", Urgency: 1, BaseUnitCost: 580, UnitWeightKg: 1.80},
	{ID: "CAT03", Name: "Tablets", Urgency: 1, BaseUnitCost: 270, UnitWeightKg: 0.55},
	{ID: "CAT04", Name: "Smartwatches", Urgency: 2, BaseUnitCost: 125, UnitWeightKg: 0.07},
	{ID: "CAT05", Name: "Wireless Earbuds", Urgency: 2, BaseUnitCost: 55, UnitWeightKg: 0.07},
	{ID: "CAT06", Name: "Monitors", Urgency: 2, BaseUnitCost: 300, UnitWeightKg: 5.50},
	{ID: "CAT07", Name: "Smart Speakers", Urgency: 3, BaseUnitCost: 50, UnitWeightKg: 0.75},
	{ID: "CAT08", Name: "Power Banks", Urgency: 3, BaseUnitCost: 28, UnitWeightKg: 0.30},
	{ID: "CAT09", Name: "Keyboards", Urgency: 2, BaseUnitCost: 55, UnitWeightKg: 0.85},
	{ID: "CAT10", Name: "Webcams", Urgency: 2, BaseUnitCost: 100, UnitWeightKg: 0.40},
}

// everyRegion marks products sold worldwide
var everyRegion = []entities.RegionID{"NAM", "SAM", "EUR", "MEA", "NEA", "SEA"}

var productSeeds = []productSeed{
	{"P001", "Alpha Pro Max", "CAT01", "premium", everyRegion},
	{"P002", "Galaxy Ultra", "CAT01", "premium", everyRegion},
	{"P003", "Nova Standard", "CAT01", "mid", everyRegion},
	{"P004", "Pixel Lite", "CAT01", "mid", []entities.RegionID{"NAM", "EUR"}},
	{"P005", "Redmi Value", "CAT01", "budget", []entities.RegionID{"NEA", "SEA"}},
	{"P006", "Samba Phone", "CAT01", "budget", []entities.RegionID{"SAM"}},
	{"P007", "Desert Connect", "CAT01", "mid", []entities.RegionID{"MEA"}},
	{"P008", "Euro Slim", "CAT01", "mid", []entities.RegionID{"EUR"}},
	{"P009", "Pacific Phone", "CAT01", "mid", []entities.RegionID{"SEA"}},
	{"P010", "Liberty Mobile", "CAT01", "budget", []entities.RegionID{"NAM"}},
	{"P011", "Ultrabook Pro", "CAT02", "premium", everyRegion},
	{"P012", "Gaming Beast", "CAT02", "premium", everyRegion},
	{"P013", "Business Elite", "CAT02", "mid", everyRegion},
	{"P014", "Student Laptop", "CAT02", "budget", []entities.RegionID{"NAM", "EUR", "SEA"}},
	{"P015", "Creator Studio", "CAT02", "premium", []entities.RegionID{"NAM", "EUR", "NEA"}},
	{"P016", "Asia Slim Book", "CAT02", "mid", []entities.RegionID{"NEA", "SEA"}},
	{"P017", "Sahara Notebook", "CAT02", "budget", []entities.RegionID{"MEA"}},
	{"P018", "Pampas Laptop", "CAT02", "budget", []entities.RegionID{"SAM"}},
	{"P019", "Euro WorkStation", "CAT02", "mid", []entities.RegionID{"EUR"}},
	{"P020", "Tab Pro 12", "CAT03", "premium", everyRegion},
	{"P021", "Tab Standard", "CAT03", "mid", everyRegion},
	{"P022", "Tab Lite", "CAT03", "budget", everyRegion},
	{"P023", "Tab Education", "CAT03", "budget", []entities.RegionID{"NAM", "EUR", "SEA"}},
	{"P024", "Tab Kids", "CAT03", "budget", []entities.RegionID{"NAM", "EUR"}},
	{"P025", "Silk Pad", "CAT03", "mid", []entities.RegionID{"NEA", "SEA"}},
	{"P026", "Arena Tablet", "CAT03", "mid", []entities.RegionID{"SAM", "MEA"}},
	{"P027", "Nordic Slate", "CAT03", "premium", []entities.RegionID{"EUR"}},
	{"P028", "Chrono Elite", "CAT04", "premium", everyRegion},
	{"P029", "Fitness Band Pro", "CAT04", "mid", everyRegion},
	{"P030", "Sport Watch X", "CAT04", "mid", everyRegion},
	{"P031", "Health Tracker", "CAT04", "budget", []entities.RegionID{"NAM", "EUR", "SEA"}},
	{"P032", "Zen Watch", "CAT04", "premium", []entities.RegionID{"NEA"}},
	{"P033", "Outback Band", "CAT04", "budget", []entities.RegionID{"SEA"}},
	{"P034", "Gulf Timer", "CAT04", "premium", []entities.RegionID{"MEA"}},
	{"P035", "Rio Pulse", "CAT04", "budget", []entities.RegionID{"SAM"}},
	{"P036", "Maple Fit", "CAT04", "mid", []entities.RegionID{"NAM"}},
	{"P037", "SoundPods Pro", "CAT05", "premium", everyRegion},
	{"P038", "BassBuds", "CAT05", "mid", everyRegion},
	{"P039", "EcoBuds", "CAT05", "budget", everyRegion},
	{"P040", "ActivePods", "CAT05", "mid", []entities.RegionID{"NAM", "EUR"}},
	{"P041", "Harmony Buds", "CAT05", "mid", []entities.RegionID{"NEA", "SEA"}},
	{"P042", "Carnival Pods", "CAT05", "budget", []entities.RegionID{"SAM"}},
	{"P043", "Dune Audio", "CAT05", "mid", []entities.RegionID{"MEA"}},
	{"P044", "Studio Silence", "CAT05", "premium", []entities.RegionID{"NAM", "EUR", "NEA"}},
	{"P045", "Office Display 24", "CAT06", "budget", everyRegion},
	{"P046", "Gaming Display 27", "CAT06", "mid", everyRegion},
	{"P047", "Pro Display 32", "CAT06", "premium", everyRegion},
	{"P048", "Ultrawide 34", "CAT06", "premium", []entities.RegionID{"NAM", "EUR", "NEA"}},
	{"P049", "Curved Gaming 32", "CAT06", "mid", []entities.RegionID{"NAM", "EUR"}},
	{"P050", "Budget Panel 22", "CAT06", "budget", []entities.RegionID{"SEA", "SAM", "MEA"}},
	{"P051", "K-Display", "CAT06", "mid", []entities.RegionID{"NEA"}},
	{"P052", "Studio Color", "CAT06", "premium", []entities.RegionID{"EUR"}},
	{"P053", "Portable Monitor", "CAT06", "mid", []entities.RegionID{"NAM", "NEA", "SEA"}},
	{"P054", "Boardroom Screen", "CAT06", "premium", []entities.RegionID{"NAM", "EUR", "MEA"}},
	{"P055", "Echo Mini", "CAT07", "budget", everyRegion},
	{"P056", "Home Hub", "CAT07", "mid", everyRegion},
	{"P057", "Sound Tower", "CAT07", "premium", []entities.RegionID{"NAM", "EUR"}},
	{"P058", "Smart Orb", "CAT07", "mid", []entities.RegionID{"NEA", "SEA"}},
	{"P059", "Voice Cube", "CAT07", "budget", []entities.RegionID{"SAM", "MEA"}},
	{"P060", "Bamboo Speaker", "CAT07", "mid", []entities.RegionID{"SEA"}},
	{"P061", "Alto Speaker", "CAT07", "premium", []entities.RegionID{"EUR"}},
	{"P062", "Pocket Charge", "CAT08", "budget", everyRegion},
	{"P063", "Mega Power", "CAT08", "mid", everyRegion},
	{"P064", "Solar Charge", "CAT08", "premium", everyRegion},
	{"P065", "Rugged Power", "CAT08", "mid", []entities.RegionID{"NAM", "EUR", "MEA"}},
	{"P066", "Slim Charge", "CAT08", "budget", []entities.RegionID{"NEA", "SEA"}},
	{"P067", "Tropic Power", "CAT08", "budget", []entities.RegionID{"SAM", "SEA"}},
	{"P068", "Desert Reserve", "CAT08", "mid", []entities.RegionID{"MEA"}},
	{"P069", "Fast Charge Pro", "CAT08", "premium", []entities.RegionID{"NAM", "EUR"}},
	{"P070", "Mech Warrior", "CAT09", "premium", everyRegion},
	{"P071", "Wireless Comfort", "CAT09", "mid", everyRegion},
	{"P072", "Gaming Clicker", "CAT09", "premium", everyRegion},
	{"P073", "Ergo Board", "CAT09", "mid", []entities.RegionID{"NAM", "EUR"}},
	{"P074", "Compact Keys", "CAT09", "budget", []entities.RegionID{"NEA", "SEA"}},
	{"P075", "Office Basic", "CAT09", "budget", []entities.RegionID{"SAM", "MEA", "SEA"}},
	{"P076", "Silent Type", "CAT09", "mid", []entities.RegionID{"EUR"}},
	{"P077", "Sakura Board", "CAT09", "mid", []entities.RegionID{"NEA"}},
	{"P078", "Flex Keyboard", "CAT09", "budget", []entities.RegionID{"NAM", "SAM"}},
	{"P079", "ClearView HD", "CAT10", "budget", everyRegion},
	{"P080", "ProCam 4K", "CAT10", "premium", everyRegion},
	{"P081", "StreamCam", "CAT10", "mid", everyRegion},
	{"P082", "Conference Eye", "CAT10", "premium", []entities.RegionID{"NAM", "EUR", "NEA"}},
	{"P083", "Budget Cam", "CAT10", "budget", []entities.RegionID{"SEA", "SAM", "MEA"}},
	{"P084", "Night Vision Cam", "CAT10", "mid", []entities.RegionID{"NAM", "EUR"}},
	{"P085", "Mini Cam", "CAT10", "budget", []entities.RegionID{"NEA", "SEA"}},
	{"P086", "Boardroom Cam", "CAT10", "premium", []entities.RegionID{"NAM", "EUR", "MEA"}},
}

var everyCategory = []entities.CategoryID{
	"CAT01", "CAT02", "CAT03", "CAT04", "CAT05", "CAT06", "CAT07", "CAT08", "CAT09", "CAT10",
}

// factoryCategories assigns the categories each factory can manufacture.
// Every category keeps at least three factories, at least one of them in a
// country no restriction names.
var factoryCategories = map[entities.FactoryID][]entities.CategoryID{
	"F_CN_01": everyCategory,
	"F_CN_02": everyCategory,
	"F_VN_01": {"CAT01", "CAT03", "CAT04", "CAT05", "CAT07", "CAT08", "CAT09", "CAT10"},
	"F_VN_02": {"CAT01", "CAT02", "CAT05", "CAT06", "CAT07", "CAT08", "CAT09", "CAT10"},
	"F_IN_01": {"CAT01", "CAT03", "CAT04", "CAT05", "CAT07", "CAT08", "CAT09"},
	"F_IN_02": {"CAT01", "CAT02", "CAT04", "CAT06", "CAT08", "CAT09", "CAT10"},
	"F_KR_01": {"CAT01", "CAT02", "CAT03", "CAT04", "CAT05", "CAT06", "CAT09", "CAT10"},
	"F_US_01": {"CAT01", "CAT02", "CAT03", "CAT06", "CAT07", "CAT09", "CAT10"},
	"F_DE_01": {"CAT02", "CAT03", "CAT04", "CAT06", "CAT09", "CAT10"},
	"F_GB_01": {"CAT01", "CAT02", "CAT03", "CAT05", "CAT07", "CAT09"},
	"F_MX_01": {"CAT01", "CAT03", "CAT05", "CAT07", "CAT08", "CAT09", "CAT10"},
	"F_BR_01": {"CAT01", "CAT03", "CAT05", "CAT07", "CAT08", "CAT09"},
	"F_AE_01": {"CAT01", "CAT04", "CAT05", "CAT07", "CAT08"},
}

var restrictionSeeds = []restrictionSeed{
	{"US", "CN", entities.MadeIn, "US-China trade restrictions"},
	{"US", "CN", entities.RoutedThrough, "US security compliance"},
	{"US", "BR", entities.MadeIn, "US-Brazil trade policy"},
	{"CA", "CN", entities.MadeIn, "Aligned with US-China policy"},
	{"CA", "CN", entities.RoutedThrough, "Aligned with US security policy"},
	{"IN", "CN", entities.MadeIn, "India-China border tensions"},
	{"IN", "CN", entities.RoutedThrough, "India security concerns"},
	{"CN", "US", entities.MadeIn, "China reciprocal restrictions"},
	{"CN", "US", entities.RoutedThrough, "China reciprocal restrictions"},
	{"AU", "CN", entities.MadeIn, "Australia-China trade dispute"},
	{"JP", "CN", entities.RoutedThrough, "Japan regional security policy"},
}

// Monthly capacity ranges in units, by factory country
var capacityRanges = map[entities.CountryCode]struct{ lo, hi int }{
	"CN": {8000, 15000},
	"VN": {5000, 10000},
	"IN": {5000, 10000},
	"KR": {6000, 12000},
	"US": {3000, 7000},
	"DE": {3000, 7000},
	"GB": {3000, 7000},
	"MX": {3000, 6000},
	"BR": {3000, 6000},
	"AE": {3000, 6000},
}

const defaultTariff = 0.10

// tariffRules holds origin-to-destination tariff rates. Same-country lanes
// pay nothing; pairs not listed here pay defaultTariff.
var tariffRules = map[tariffKey]float64{
	// Within-region and FTA lanes
	{"US", "CA"}: 0.02, {"US", "MX"}: 0.01, {"CA", "US"}: 0.02, {"CA", "MX"}: 0.03,
	{"MX", "US"}: 0.01, {"MX", "CA"}: 0.03,
	{"BR", "AR"}: 0.04, {"AR", "BR"}: 0.04,
	{"DE", "GB"}: 0.03, {"DE", "FR"}: 0.01, {"GB", "DE"}: 0.04, {"GB", "FR"}: 0.04,
	{"CN", "KR"}: 0.05, {"KR", "CN"}: 0.05, {"KR", "JP"}: 0.04, {"JP", "KR"}: 0.04,
	{"VN", "IN"}: 0.06, {"IN", "VN"}: 0.06, {"VN", "AU"}: 0.05, {"IN", "AU"}: 0.06,
	{"AE", "SA"}: 0.02, {"SA", "AE"}: 0.02, {"AE", "ZA"}: 0.08, {"ZA", "AE"}: 0.08,
	// China to developed markets
	{"CN", "US"}: 0.30, {"CN", "CA"}: 0.28, {"CN", "DE"}: 0.28, {"CN", "GB"}: 0.25,
	{"CN", "FR"}: 0.28, {"CN", "AU"}: 0.32, {"CN", "JP"}: 0.15,
	// China to emerging markets
	{"CN", "MX"}: 0.10, {"CN", "BR"}: 0.12, {"CN", "AR"}: 0.12,
	{"CN", "AE"}: 0.05, {"CN", "SA"}: 0.05, {"CN", "ZA"}: 0.08,
	{"CN", "IN"}: 0.18, {"CN", "VN"}: 0.08,
	// Vietnam outbound
	{"VN", "US"}: 0.05, {"VN", "CA"}: 0.06, {"VN", "DE"}: 0.08, {"VN", "GB"}: 0.07,
	{"VN", "FR"}: 0.08, {"VN", "JP"}: 0.05, {"VN", "KR"}: 0.05,
	// India outbound
	{"IN", "US"}: 0.08, {"IN", "CA"}: 0.09, {"IN", "DE"}: 0.10, {"IN", "GB"}: 0.06,
	{"IN", "FR"}: 0.10, {"IN", "JP"}: 0.08, {"IN", "KR"}: 0.08,
	// South Korea outbound
	{"KR", "US"}: 0.03, {"KR", "CA"}: 0.05, {"KR", "DE"}: 0.06, {"KR", "GB"}: 0.05,
	{"KR", "FR"}: 0.06, {"KR", "AU"}: 0.05,
	// US outbound
	{"US", "DE"}: 0.06, {"US", "GB"}: 0.05, {"US", "FR"}: 0.06, {"US", "JP"}: 0.04,
	{"US", "KR"}: 0.05, {"US", "AU"}: 0.04, {"US", "CN"}: 0.25,
	{"US", "IN"}: 0.08, {"US", "BR"}: 0.10, {"US", "AR"}: 0.12,
	{"US", "AE"}: 0.05, {"US", "SA"}: 0.05, {"US", "ZA"}: 0.08,
	// Germany outbound
	{"DE", "US"}: 0.05, {"DE", "CA"}: 0.06, {"DE", "JP"}: 0.05, {"DE", "KR"}: 0.06,
	{"DE", "AU"}: 0.06, {"DE", "CN"}: 0.08, {"DE", "IN"}: 0.08,
	{"DE", "BR"}: 0.12, {"DE", "AR"}: 0.14, {"DE", "AE"}: 0.04, {"DE", "SA"}: 0.04,
	{"DE", "ZA"}: 0.08, {"DE", "MX"}: 0.08, {"DE", "VN"}: 0.07,
	// UK outbound
	{"GB", "US"}: 0.05, {"GB", "CA"}: 0.06, {"GB", "JP"}: 0.06, {"GB", "KR"}: 0.07,
	{"GB", "AU"}: 0.04, {"GB", "CN"}: 0.10, {"GB", "IN"}: 0.07,
	{"GB", "BR"}: 0.12, {"GB", "AR"}: 0.14, {"GB", "AE"}: 0.05, {"GB", "SA"}: 0.05,
	{"GB", "ZA"}: 0.09, {"GB", "MX"}: 0.09, {"GB", "VN"}: 0.08,
	// Brazil outbound
	{"BR", "US"}: 0.10, {"BR", "CA"}: 0.12, {"BR", "DE"}: 0.14, {"BR", "GB"}: 0.14,
	{"BR", "FR"}: 0.14, {"BR", "JP"}: 0.12, {"BR", "KR"}: 0.12, {"BR", "AU"}: 0.14,
	{"BR", "CN"}: 0.10, {"BR", "IN"}: 0.10, {"BR", "AE"}: 0.08, {"BR", "SA"}: 0.08,
	{"BR", "ZA"}: 0.10, {"BR", "MX"}: 0.08, {"BR", "VN"}: 0.12,
	// Mexico outbound
	{"MX", "DE"}: 0.08, {"MX", "GB"}: 0.08, {"MX", "FR"}: 0.08, {"MX", "JP"}: 0.10,
	{"MX", "KR"}: 0.10, {"MX", "AU"}: 0.12, {"MX", "CN"}: 0.10, {"MX", "IN"}: 0.10,
	{"MX", "BR"}: 0.08, {"MX", "AR"}: 0.10, {"MX", "AE"}: 0.08, {"MX", "SA"}: 0.08,
	{"MX", "ZA"}: 0.12, {"MX", "VN"}: 0.10,
	// UAE outbound
	{"AE", "US"}: 0.06, {"AE", "CA"}: 0.07, {"AE", "DE"}: 0.05, {"AE", "GB"}: 0.05,
	{"AE", "FR"}: 0.05, {"AE", "JP"}: 0.06, {"AE", "KR"}: 0.06, {"AE", "AU"}: 0.08,
	{"AE", "CN"}: 0.05, {"AE", "IN"}: 0.04, {"AE", "BR"}: 0.10, {"AE", "AR"}: 0.12,
	{"AE", "MX"}: 0.10, {"AE", "VN"}: 0.06,
	// India and Vietnam remainder
	{"IN", "MX"}: 0.10, {"IN", "BR"}: 0.10, {"IN", "AR"}: 0.12,
	{"IN", "AE"}: 0.04, {"IN", "SA"}: 0.05, {"IN", "ZA"}: 0.08, {"IN", "CN"}: 0.18,
	{"VN", "MX"}: 0.10, {"VN", "BR"}: 0.12, {"VN", "AR"}: 0.14,
	{"VN", "AE"}: 0.06, {"VN", "SA"}: 0.06, {"VN", "ZA"}: 0.10, {"VN", "CN"}: 0.08,
}
