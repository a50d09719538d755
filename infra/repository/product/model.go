package product

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product record in the database.
//
// The cost lives in two columns for historical reasons: base_cost is the
// current field, cost is the legacy one still populated by old import
// scripts. Reads resolve preferred-first: base_cost when present, else cost.
type Product struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"not null"`
	Description string
	Category    string   `gorm:"index"`
	BaseCost    *float64 `gorm:"column:base_cost"`
	LegacyCost  *float64 `gorm:"column:cost"`
	Stock       int      `gorm:"not null;default:0"`
}

// TableName specifies the table name for the Product model.
func (Product) TableName() string {
	return "products"
}

// resolvedCost applies the preferred-first cost resolution.
func (p *Product) resolvedCost() float64 {
	if p.BaseCost != nil {
		return *p.BaseCost
	}
	if p.LegacyCost != nil {
		return *p.LegacyCost
	}
	return 0
}
