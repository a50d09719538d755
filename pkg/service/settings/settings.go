// Package settings exposes the administratively editable store configuration,
// currently just the global markup percentage.
package settings

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"github.com/hardline/storefront/pkg/domain"
	"github.com/hardline/storefront/pkg/repository/setting"
)

// Service reads and updates persisted settings. Reads are deliberately
// uncached: a markup change takes effect on the next price computation.
type Service struct {
	repo   setting.Repository
	logger *slog.Logger
}

// New creates a settings service.
func New(repo setting.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetGlobalMarkup returns the storewide markup percentage. An unset or
// unreadable value degrades to 0 (no markup); it never returns an error.
func (s *Service) GetGlobalMarkup(ctx context.Context) float64 {
	raw, err := s.repo.Get(ctx, setting.GlobalMarkupKey)
	if err != nil {
		s.logger.Warn("failed to read global markup, defaulting to 0", "error", err)
		return 0
	}
	if raw == "" {
		return 0
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
		// ParseFloat accepts "NaN" and "Inf", which would poison every
		// price computation. Treat them like any other bad value.
		s.logger.Warn("global markup setting is not a finite number, defaulting to 0",
			"value", raw, "error", err)
		return 0
	}
	return pct
}

// UpdateGlobalMarkup persists a new markup percentage.
func (s *Service) UpdateGlobalMarkup(ctx context.Context, pct float64) error {
	if pct < 0 {
		return domain.ErrInvalidMarkup
	}
	value := strconv.FormatFloat(pct, 'f', -1, 64)
	if err := s.repo.Set(ctx, setting.GlobalMarkupKey, value); err != nil {
		return err
	}
	s.logger.Info("global markup updated", "markup_pct", pct)
	return nil
}
