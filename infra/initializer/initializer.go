// Package initializer wires infrastructure dependencies: logger, database,
// repositories, the exchange-rate provider and its cache.
package initializer

import (
	"fmt"

	infra_cache "github.com/hardline/storefront/infra/cache"
	infra_provider "github.com/hardline/storefront/infra/provider"
	productrepo "github.com/hardline/storefront/infra/repository/product"
	settingrepo "github.com/hardline/storefront/infra/repository/setting"
	"github.com/hardline/storefront/pkg/app"
	"github.com/hardline/storefront/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitializeDependencies builds the application dependency graph from config.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := NewDBConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps := &app.Deps{
		ProductRepo:  productrepo.New(db),
		SettingRepo:  settingrepo.New(db),
		RateProvider: infra_provider.NewQuoteAPIProvider(cfg.Exchange, logger),
		RateCache:    infra_cache.NewMemoryCache(cfg.Exchange.CacheTTL),
		Logger:       logger,
	}
	return deps, nil
}

// NewDBConnection opens the Postgres connection and migrates the schema.
func NewDBConnection(cfg *config.DB) (*gorm.DB, error) {
	connection, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := connection.AutoMigrate(&productrepo.Product{}, &settingrepo.Setting{}); err != nil {
		return nil, err
	}
	return connection, nil
}
