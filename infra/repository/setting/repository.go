package setting

import (
	"context"
	"errors"

	repo "github.com/hardline/storefront/pkg/repository/setting"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a settings repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Get implements setting.Repository. A missing key is not an error; it
// returns the empty string so callers can apply their defaults.
func (r *repository) Get(ctx context.Context, key string) (string, error) {
	var row Setting
	err := r.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.Value, nil
}

// Set implements setting.Repository via upsert on the key column.
func (r *repository) Set(ctx context.Context, key, value string) error {
	row := Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}
