// Package app assembles the application services from their infrastructure
// dependencies.
package app

import (
	"log/slog"

	"github.com/hardline/storefront/pkg/cache"
	"github.com/hardline/storefront/pkg/config"
	"github.com/hardline/storefront/pkg/provider/exchange"
	productrepo "github.com/hardline/storefront/pkg/repository/product"
	settingrepo "github.com/hardline/storefront/pkg/repository/setting"
	"github.com/hardline/storefront/pkg/service/catalog"
	exchangesvc "github.com/hardline/storefront/pkg/service/exchange"
	settingssvc "github.com/hardline/storefront/pkg/service/settings"
)

// Deps contains the infrastructure dependencies the services are built from.
type Deps struct {
	ProductRepo  productrepo.Repository
	SettingRepo  settingrepo.Repository
	RateProvider exchange.Provider
	RateCache    cache.RateCache
	Logger       *slog.Logger
}

// App holds the wired application services.
type App struct {
	Deps            *Deps
	Config          *config.App
	CatalogService  *catalog.Service
	SettingsService *settingssvc.Service
	ExchangeService *exchangesvc.Service
}

// New wires the services together.
func New(deps *Deps, cfg *config.App) *App {
	settings := settingssvc.New(deps.SettingRepo, deps.Logger)
	rates := exchangesvc.New(deps.RateProvider, deps.RateCache, cfg.Exchange, deps.Logger)
	cat := catalog.New(deps.ProductRepo, settings, rates, cfg.Catalog, deps.Logger)

	return &App{
		Deps:            deps,
		Config:          cfg,
		CatalogService:  cat,
		SettingsService: settings,
		ExchangeService: rates,
	}
}
