package webapi

import (
	"github.com/gofiber/fiber/v2"
	exchangesvc "github.com/hardline/storefront/pkg/service/exchange"
)

// CurrencyRoutes registers the exchange-rate endpoint used by the storefront
// client for currency toggling.
func CurrencyRoutes(app *fiber.App, rateSvc *exchangesvc.Service) {
	app.Get("/api/exchange-rate", GetExchangeRate(rateSvc))
}

// GetExchangeRate returns the currently applied exchange rate.
// @Summary Current exchange rate
// @Description Returns the rate applied to secondary-currency prices, with its source and last update time
// @Tags currency
// @Produce json
// @Success 200 {object} Response
// @Router /api/exchange-rate [get]
func GetExchangeRate(rateSvc *exchangesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rate := rateSvc.GetRate(c.Context())
		return SuccessResponseJSON(c, fiber.StatusOK, "Exchange rate fetched successfully", rate)
	}
}
