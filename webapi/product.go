package webapi

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hardline/storefront/pkg/domain"
	"github.com/hardline/storefront/pkg/dto"
	"github.com/hardline/storefront/pkg/service/catalog"
)

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	BaseCost    float64 `json:"baseCost" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest is the request body for a partial product update.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	BaseCost    *float64 `json:"baseCost" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

// ProductRoutes registers storefront and admin catalog endpoints.
func ProductRoutes(app *fiber.App, catalogSvc *catalog.Service) {
	app.Get("/api/products", ListProducts(catalogSvc))
	app.Get("/api/products/:id", GetProduct(catalogSvc))

	admin := app.Group("/api/admin")
	admin.Get("/products", ListProducts(catalogSvc))
	admin.Post("/products", CreateProduct(catalogSvc))
	admin.Put("/products/:id", UpdateProduct(catalogSvc))
}

// ListProducts returns a paginated, priced product listing.
// @Summary List products
// @Description List products with filters, sorting and pagination; each row carries display prices in both currencies
// @Tags products
// @Produce json
// @Param category query string false "Category slug"
// @Param search query string false "Substring match over name and description (case sensitive)"
// @Param minPrice query number false "Minimum stored cost"
// @Param maxPrice query number false "Maximum stored cost"
// @Param sortBy query string false "newest | price_asc | price_desc | name_asc"
// @Param page query int false "1-indexed page"
// @Param limit query int false "Page size"
// @Success 200 {object} Response
// @Failure 500 {object} ProblemDetails
// @Router /api/products [get]
func ListProducts(catalogSvc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query, err := parseListQuery(c)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Invalid list query", err.Error())
		}

		result, err := catalogSvc.List(c.Context(), query)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to list products", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Products fetched successfully", result)
	}
}

// GetProduct returns one product with display pricing.
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /api/products/{id} [get]
func GetProduct(catalogSvc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid product ID", err.Error())
		}

		item, err := catalogSvc.Get(c.Context(), id)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to fetch product", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Product fetched successfully", item)
	}
}

// CreateProduct stores a new product.
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param body body CreateProductRequest true "Product"
// @Success 201 {object} Response
// @Failure 400 {object} ProblemDetails
// @Router /api/admin/products [post]
func CreateProduct(catalogSvc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateProductRequest](c)
		if err != nil {
			return nil
		}

		id, err := catalogSvc.Create(c.Context(), dto.ProductCreate{
			Name:        input.Name,
			Description: input.Description,
			Category:    input.Category,
			BaseCost:    input.BaseCost,
			Stock:       input.Stock,
		})
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to create product", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Product created successfully", fiber.Map{"id": id})
	}
}

// UpdateProduct applies a partial product update.
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body UpdateProductRequest true "Fields to update"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /api/admin/products/{id} [put]
func UpdateProduct(catalogSvc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid product ID", err.Error())
		}

		input, err := BindAndValidate[UpdateProductRequest](c)
		if err != nil {
			return nil
		}

		update := dto.ProductUpdate{
			Name:        input.Name,
			Description: input.Description,
			Category:    input.Category,
			BaseCost:    input.BaseCost,
			Stock:       input.Stock,
		}
		if err := catalogSvc.Update(c.Context(), id, update); err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to update product", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Product updated successfully", nil)
	}
}

func parseListQuery(c *fiber.Ctx) (dto.ListQuery, error) {
	query := dto.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 0),
	}

	if raw := c.Query("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, fmt.Errorf("%w: minPrice %q is not a number", domain.ErrInvalidListQuery, raw)
		}
		query.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, fmt.Errorf("%w: maxPrice %q is not a number", domain.ErrInvalidListQuery, raw)
		}
		query.MaxPrice = &max
	}
	return query, nil
}
