package webapi

import (
	"github.com/gofiber/fiber/v2"
	settingssvc "github.com/hardline/storefront/pkg/service/settings"
)

// UpdateMarkupRequest is the request body for changing the global markup.
type UpdateMarkupRequest struct {
	MarkupPct float64 `json:"markupPct" validate:"gte=0"`
}

// SettingsRoutes registers admin settings endpoints.
func SettingsRoutes(app *fiber.App, settingsSvc *settingssvc.Service) {
	admin := app.Group("/api/admin/settings")
	admin.Get("/markup", GetMarkup(settingsSvc))
	admin.Put("/markup", UpdateMarkup(settingsSvc))
}

// GetMarkup returns the current global markup percentage.
// @Summary Get global markup
// @Tags settings
// @Produce json
// @Success 200 {object} Response
// @Router /api/admin/settings/markup [get]
func GetMarkup(settingsSvc *settingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pct := settingsSvc.GetGlobalMarkup(c.Context())
		return SuccessResponseJSON(c, fiber.StatusOK, "Markup fetched successfully",
			fiber.Map{"markupPct": pct})
	}
}

// UpdateMarkup sets a new global markup percentage. The change applies to
// the next price computation; nothing is recomputed eagerly.
// @Summary Update global markup
// @Tags settings
// @Accept json
// @Produce json
// @Param body body UpdateMarkupRequest true "New markup"
// @Success 200 {object} Response
// @Failure 400 {object} ProblemDetails
// @Router /api/admin/settings/markup [put]
func UpdateMarkup(settingsSvc *settingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[UpdateMarkupRequest](c)
		if err != nil {
			return nil
		}

		if err := settingsSvc.UpdateGlobalMarkup(c.Context(), input.MarkupPct); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to update markup", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Markup updated successfully",
			fiber.Map{"markupPct": input.MarkupPct})
	}
}
