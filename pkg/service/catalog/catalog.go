// Package catalog implements the product listing pipeline: filter, sort and
// paginate stored rows, then derive display prices for each returned row.
package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/hardline/storefront/pkg/config"
	"github.com/hardline/storefront/pkg/domain"
	"github.com/hardline/storefront/pkg/dto"
	"github.com/hardline/storefront/pkg/pricing"
	"github.com/hardline/storefront/pkg/repository/product"
)

// MarkupReader supplies the current global markup percentage. Injected as an
// interface so the pipeline is testable with fixed inputs.
type MarkupReader interface {
	GetGlobalMarkup(ctx context.Context) float64
}

// RateReader supplies the current exchange rate. Implementations never fail;
// they fall back internally.
type RateReader interface {
	GetRate(ctx context.Context) *domain.ExchangeRate
}

// DisplayProduct merges the raw product row with its derived pricing fields.
type DisplayProduct struct {
	dto.ProductRead
	pricing.DisplayPrice
	ReferenceCurrency string `json:"referenceCurrency"`
	SecondaryCurrency string `json:"secondaryCurrency"`
}

// ListResult is one page of priced products.
type ListResult struct {
	Items      []*DisplayProduct `json:"items"`
	Pagination dto.Pagination    `json:"pagination"`
}

// Service builds catalog queries and prices each returned row.
type Service struct {
	repo     product.Repository
	markup   MarkupReader
	exchange RateReader
	cfg      *config.Catalog
	logger   *slog.Logger
}

// New creates a catalog service.
func New(
	repo product.Repository,
	markup MarkupReader,
	exchange RateReader,
	cfg *config.Catalog,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		markup:   markup,
		exchange: exchange,
		cfg:      cfg,
		logger:   logger,
	}
}

// List returns one page of products with display prices. Markup and exchange
// rate are fetched once per call, concurrently; the listing itself never
// fails because of pricing.
//
// Price filters and price sorts act on the raw stored cost, not the computed
// display price. That mirrors the storefront's historical behavior and is
// kept for parity.
func (s *Service) List(ctx context.Context, query dto.ListQuery) (*ListResult, error) {
	query = s.normalize(query)

	var (
		markupPct float64
		rate      *domain.ExchangeRate
		wg        sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		markupPct = s.markup.GetGlobalMarkup(ctx)
	}()
	go func() {
		defer wg.Done()
		rate = s.exchange.GetRate(ctx)
	}()
	wg.Wait()

	rows, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	items := make([]*DisplayProduct, 0, len(rows))
	for _, row := range rows {
		items = append(items, s.display(row, markupPct, rate))
	}

	return &ListResult{
		Items: items,
		Pagination: dto.Pagination{
			Page:       query.Page,
			Limit:      query.Limit,
			Total:      total,
			TotalPages: totalPages(total, query.Limit),
		},
	}, nil
}

// Get returns a single product with display pricing.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*DisplayProduct, error) {
	row, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	markupPct := s.markup.GetGlobalMarkup(ctx)
	rate := s.exchange.GetRate(ctx)
	return s.display(row, markupPct, rate), nil
}

// Create validates and stores a new product. Negative base costs are
// rejected here, at the boundary, so the normalizer itself stays
// validation-free.
func (s *Service) Create(ctx context.Context, create dto.ProductCreate) (uuid.UUID, error) {
	if create.BaseCost < 0 {
		return uuid.Nil, domain.ErrInvalidBaseCost
	}
	if create.ID == uuid.Nil {
		create.ID = uuid.New()
	}
	if err := s.repo.Create(ctx, create); err != nil {
		return uuid.Nil, err
	}
	s.logger.Info("product created", "id", create.ID, "name", create.Name)
	return create.ID, nil
}

// Update applies a partial product update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, update dto.ProductUpdate) error {
	if update.BaseCost != nil && *update.BaseCost < 0 {
		return domain.ErrInvalidBaseCost
	}
	return s.repo.Update(ctx, id, update)
}

func (s *Service) display(row *dto.ProductRead, markupPct float64, rate *domain.ExchangeRate) *DisplayProduct {
	return &DisplayProduct{
		ProductRead:       *row,
		DisplayPrice:      pricing.Compute(row.BaseCost, markupPct, rate.Rate),
		ReferenceCurrency: rate.FromCurrency,
		SecondaryCurrency: rate.ToCurrency,
	}
}

func (s *Service) normalize(query dto.ListQuery) dto.ListQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = s.cfg.PageSize
	}
	if query.Limit > s.cfg.MaxPageSize {
		query.Limit = s.cfg.MaxPageSize
	}
	switch query.SortBy {
	case dto.SortPriceAsc, dto.SortPriceDesc, dto.SortNameAsc, dto.SortNewest:
	default:
		query.SortBy = dto.SortNewest
	}
	return query
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
