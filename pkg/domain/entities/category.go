package entities

import "fmt"

// CategoryID identifies a product category
type CategoryID string

// ProductID identifies a catalog product
type ProductID string

// Category represents a product category. Urgency drives the maximum lead
// time a destination will accept for the category.
type Category struct {
	ID           CategoryID
	Name         string
	Urgency      int
	BaseUnitCost float64
	UnitWeightKg float64
}

// NewCategory creates a validated Category
func NewCategory(id CategoryID, name string, urgency int, baseUnitCost, unitWeightKg float64) (*Category, error) {
	if id == "" {
		return nil, fmt.Errorf("category id cannot be empty")
	}
	if urgency < 1 || urgency > 3 {
		return nil, fmt.Errorf("category %s: urgency must be 1..3, got %d", id, urgency)
	}
	if baseUnitCost <= 0 {
		return nil, fmt.Errorf("category %s: base unit cost must be positive, got %g", id, baseUnitCost)
	}
	if unitWeightKg <= 0 {
		return nil, fmt.Errorf("category %s: unit weight must be positive, got %g", id, unitWeightKg)
	}

	return &Category{
		ID:           id,
		Name:         name,
		Urgency:      urgency,
		BaseUnitCost: baseUnitCost,
		UnitWeightKg: unitWeightKg,
	}, nil
}

// Product is a catalog item. Products never enter the allocation model; they
// exist for catalog browsing and availability reporting.
type Product struct {
	ID        ProductID
	Name      string
	Category  CategoryID
	PriceTier string
	Regions   []RegionID
}
