package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hardline/storefront/pkg/domain"
	"github.com/hardline/storefront/pkg/dto"
	repo "github.com/hardline/storefront/pkg/repository/product"
	"gorm.io/gorm"
)

// costExpr resolves the stored cost preferred-first across the legacy dual
// columns. Filters and sorts act on this raw value, not the display price.
const costExpr = "COALESCE(base_cost, cost)"

type repository struct {
	db *gorm.DB
}

// New creates a product repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements product.Repository.
func (r *repository) Create(ctx context.Context, create dto.ProductCreate) error {
	row := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&row).Error
}

// Update implements product.Repository.
func (r *repository) Update(ctx context.Context, id uuid.UUID, update dto.ProductUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Get implements product.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.ProductRead, error) {
	var row Product
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&row), nil
}

// List implements product.Repository.
func (r *repository) List(ctx context.Context, query dto.ListQuery) ([]*dto.ProductRead, int64, error) {
	db := r.db.WithContext(ctx).Model(&Product{})

	if query.Category != "" {
		db = db.Where("category = ?", query.Category)
	}
	if query.Search != "" {
		// LIKE is case sensitive on Postgres, matching the storefront's
		// documented search behavior.
		needle := "%" + query.Search + "%"
		db = db.Where("name LIKE ? OR description LIKE ?", needle, needle)
	}
	if query.MinPrice != nil {
		db = db.Where(costExpr+" >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		db = db.Where(costExpr+" <= ?", *query.MaxPrice)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Product
	err := db.Order(orderClause(query.SortBy)).
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.ProductRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDTO(&rows[i]))
	}
	return result, total, nil
}

func orderClause(sortBy string) string {
	switch sortBy {
	case dto.SortPriceAsc:
		return costExpr + " ASC"
	case dto.SortPriceDesc:
		return costExpr + " DESC"
	case dto.SortNameAsc:
		return "name ASC"
	default:
		return "created_at DESC"
	}
}

// mapCreateDTOToModel maps ProductCreate to the GORM model. New rows write
// the current column only; the legacy cost column stays empty.
func mapCreateDTOToModel(create dto.ProductCreate) Product {
	baseCost := create.BaseCost
	return Product{
		ID:          create.ID,
		Name:        create.Name,
		Description: create.Description,
		Category:    create.Category,
		BaseCost:    &baseCost,
		Stock:       create.Stock,
	}
}

// mapUpdateDTOToModel maps ProductUpdate to a map for GORM Updates.
func mapUpdateDTOToModel(update dto.ProductUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.BaseCost != nil {
		updates["base_cost"] = *update.BaseCost
	}
	if update.Stock != nil {
		updates["stock"] = *update.Stock
	}
	return updates
}

// mapModelToDTO maps a GORM model to a read-optimized DTO with the cost
// already resolved.
func mapModelToDTO(row *Product) *dto.ProductRead {
	return &dto.ProductRead{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		BaseCost:    row.resolvedCost(),
		Stock:       row.Stock,
		CreatedAt:   row.CreatedAt,
	}
}
