package repositories

import "github.com/vsinha/supplyflow/pkg/domain/entities"

// NetworkRepository provides access to the geographic reference tables
type NetworkRepository interface {
	GetFactory(id entities.FactoryID) (*entities.Factory, error)
	GetHub(id entities.HubID) (*entities.Hub, error)
	GetCountry(code entities.CountryCode) (*entities.Country, error)
	GetCategory(id entities.CategoryID) (*entities.Category, error)

	GetAllFactories() ([]*entities.Factory, error)
	GetAllHubs() ([]*entities.Hub, error)
	GetAllCountries() ([]*entities.Country, error)
	GetAllCategories() ([]*entities.Category, error)
	GetAllRegions() ([]*entities.Region, error)
	GetAllProducts() ([]*entities.Product, error)

	// Region lookups used on scoring hot paths; a miss is a normal outcome,
	// not an error.
	FactoryRegion(id entities.FactoryID) (entities.RegionID, bool)
	HubRegion(id entities.HubID) (entities.RegionID, bool)
	CountryRegion(code entities.CountryCode) (entities.RegionID, bool)
}
