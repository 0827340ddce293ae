// Package service contains the application services (use cases).
// Services orchestrate domain objects and driven ports; they hold no
// business rules of their own.
package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/hapkiduki/facet-go/internal/application/dto"
	"github.com/hapkiduki/facet-go/internal/application/port"
	"github.com/hapkiduki/facet-go/internal/domain/facet"
	"github.com/hapkiduki/facet-go/internal/domain/repository"
)

// FacetService answers facet queries for the storefront. For each call
// it takes one catalog snapshot, builds one immutable filter context and
// runs the requested self-excluding aggregations against them, so all
// facets in a response describe the same catalog state.
type FacetService struct {
	catalog repository.CatalogRepository
	logger  port.Logger
}

// NewFacetService creates a new FacetService.
//
// Parameters:
//   - catalog: the catalog snapshot provider
//   - logger: structured logger
//
// Returns:
//   - *FacetService: the service instance
func NewFacetService(catalog repository.CatalogRepository, logger port.Logger) *FacetService {
	return &FacetService{
		catalog: catalog,
		logger:  logger,
	}
}

// prepare takes a snapshot and builds the filter context for one query.
func (s *FacetService) prepare(ctx context.Context, params facet.Params) (*facet.Snapshot, *facet.FilterContext, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	fc, err := facet.NewFilterContext(params)
	if err != nil {
		return nil, nil, err
	}
	return snap, fc, nil
}

// PriceRange returns the price range facet for the given filters.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - params: normalized filter selections
//
// Returns:
//   - dto.PriceFacetResponse: the facet result (Match false on no match)
//   - error: context validation or snapshot errors
func (s *FacetService) PriceRange(ctx context.Context, params facet.Params) (dto.PriceFacetResponse, error) {
	snap, fc, err := s.prepare(ctx, params)
	if err != nil {
		return dto.PriceFacetResponse{}, err
	}

	r, err := snap.FilteredPriceRange(fc)
	if err != nil {
		if errors.Is(err, facet.ErrNoMatch) {
			return dto.PriceFacetResponse{Match: false}, nil
		}
		return dto.PriceFacetResponse{}, err
	}

	return dto.PriceFacetResponse{
		Match: true,
		Range: &dto.PriceRangeData{Min: r.Min, Max: r.Max},
	}, nil
}

// StockCounts returns the stock status facet for the given filters.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - params: normalized filter selections
//
// Returns:
//   - dto.StockFacetResponse: counts for every known status
//   - error: context validation or snapshot errors
func (s *FacetService) StockCounts(ctx context.Context, params facet.Params) (dto.StockFacetResponse, error) {
	snap, fc, err := s.prepare(ctx, params)
	if err != nil {
		return dto.StockFacetResponse{}, err
	}

	counts := snap.StockStatusCounts(fc)
	out := make(map[string]int, len(counts))
	for status, n := range counts {
		out[string(status)] = n
	}
	return dto.StockFacetResponse{Counts: out}, nil
}

// RatingCounts returns the rating facet for the given filters.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - params: normalized filter selections
//
// Returns:
//   - dto.RatingFacetResponse: counts per observed rating bucket
//   - error: context validation or snapshot errors
func (s *FacetService) RatingCounts(ctx context.Context, params facet.Params) (dto.RatingFacetResponse, error) {
	snap, fc, err := s.prepare(ctx, params)
	if err != nil {
		return dto.RatingFacetResponse{}, err
	}
	return dto.RatingFacetResponse{Counts: snap.RatingCounts(fc)}, nil
}

// AttributeCounts returns the term facet for one attribute dimension.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - params: normalized filter selections
//   - dimension: Attribute dimension name
//
// Returns:
//   - dto.AttributeFacetResponse: counts per observed term
//   - error: facet.ErrInvalidDimension for an unknown dimension,
//     context validation or snapshot errors
func (s *FacetService) AttributeCounts(ctx context.Context, params facet.Params, dimension string) (dto.AttributeFacetResponse, error) {
	snap, fc, err := s.prepare(ctx, params)
	if err != nil {
		return dto.AttributeFacetResponse{}, err
	}

	counts, err := snap.AttributeCounts(fc, dimension)
	if err != nil {
		return dto.AttributeFacetResponse{}, err
	}
	return dto.AttributeFacetResponse{Dimension: dimension, Counts: counts}, nil
}

// Summary computes every facet for one filter selection: price, stock,
// rating and one attribute facet per dimension the snapshot knows. The
// independent aggregations run concurrently against the same snapshot
// and context; they are pure reads, so no locking is involved.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - params: normalized filter selections
//
// Returns:
//   - dto.FacetSummaryResponse: all facets over one catalog state
//   - error: context validation or snapshot errors
func (s *FacetService) Summary(ctx context.Context, params facet.Params) (dto.FacetSummaryResponse, error) {
	snap, fc, err := s.prepare(ctx, params)
	if err != nil {
		return dto.FacetSummaryResponse{}, err
	}

	dimensions := snap.AttributeDimensions()
	summary := dto.FacetSummaryResponse{
		Attributes: make([]dto.AttributeFacetResponse, len(dimensions)),
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := snap.FilteredPriceRange(fc)
		if err != nil {
			if errors.Is(err, facet.ErrNoMatch) {
				summary.Price = dto.PriceFacetResponse{Match: false}
				return nil
			}
			return err
		}
		summary.Price = dto.PriceFacetResponse{
			Match: true,
			Range: &dto.PriceRangeData{Min: r.Min, Max: r.Max},
		}
		return nil
	})

	g.Go(func() error {
		counts := snap.StockStatusCounts(fc)
		out := make(map[string]int, len(counts))
		for status, n := range counts {
			out[string(status)] = n
		}
		summary.Stock = dto.StockFacetResponse{Counts: out}
		return nil
	})

	g.Go(func() error {
		summary.Rating = dto.RatingFacetResponse{Counts: snap.RatingCounts(fc)}
		return nil
	})

	for i, dimension := range dimensions {
		i, dimension := i, dimension
		g.Go(func() error {
			counts, err := snap.AttributeCounts(fc, dimension)
			if err != nil {
				return err
			}
			summary.Attributes[i] = dto.AttributeFacetResponse{Dimension: dimension, Counts: counts}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return dto.FacetSummaryResponse{}, err
	}

	s.logger.WithContext(ctx).Debug("Facet summary computed",
		"products", snap.Len(),
		"dimensions", len(dimensions),
	)
	return summary, nil
}

// CatalogSize returns the number of products in the catalog,
// used by the health endpoint.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//
// Returns:
//   - int: product count
//   - error: any repository error
func (s *FacetService) CatalogSize(ctx context.Context) (int, error) {
	return s.catalog.Count(ctx)
}
