// Package memory provides an in-memory implementation of the catalog
// repository. The store is the snapshot provider for the facet engine:
// it hands out stable, complete views of the catalog and swaps contents
// atomically, so a snapshot taken before a reload keeps answering
// consistently.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/hapkiduki/facet-go/internal/domain/entity"
	"github.com/hapkiduki/facet-go/internal/domain/facet"
	"github.com/hapkiduki/facet-go/internal/domain/repository"
)

// CatalogStore holds the catalog in memory behind a RWMutex.
// It implements repository.CatalogRepository.
type CatalogStore struct {
	mu         sync.RWMutex
	products   []*entity.Product
	bySKU      map[string]*entity.Product
	byID       map[uuid.UUID]*entity.Product
	dimensions []string
}

// NewCatalogStore creates an empty catalog store.
//
// Returns:
//   - *CatalogStore: the store instance
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		bySKU: make(map[string]*entity.Product),
		byID:  make(map[uuid.UUID]*entity.Product),
	}
}

// Snapshot returns a stable, read-only view of the complete catalog.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//
// Returns:
//   - *facet.Snapshot: the catalog snapshot
//   - error: context error if the context is done
func (s *CatalogStore) Snapshot(ctx context.Context) (*facet.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return facet.NewSnapshot(s.products, s.dimensions...), nil
}

// GetProduct retrieves a product by its unique identifier.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - id: The product's UUID
//
// Returns:
//   - *entity.Product: the retrieved product
//   - error: repository.ErrProductNotFound if the product doesn't exist
func (s *CatalogStore) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, repository.ErrProductNotFound
}

// GetBySKU retrieves a product by its SKU.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - sku: The product's SKU
//
// Returns:
//   - *entity.Product: the retrieved product
//   - error: repository.ErrProductNotFound if the product doesn't exist
func (s *CatalogStore) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.bySKU[sku]; ok {
		return p, nil
	}
	return nil, repository.ErrProductNotFound
}

// ReplaceCatalog swaps the catalog contents atomically.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - products: the new complete product set
//   - dimensions: declared attribute dimension names
//
// Returns:
//   - error: repository.ErrDuplicateSKU if two products share a SKU
func (s *CatalogStore) ReplaceCatalog(ctx context.Context, products []*entity.Product, dimensions ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bySKU := make(map[string]*entity.Product, len(products))
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		if _, exists := bySKU[p.SKU]; exists {
			return fmt.Errorf("%w: %q", repository.ErrDuplicateSKU, p.SKU)
		}
		bySKU[p.SKU] = p
		byID[p.ID] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace the slice wholesale; snapshots hold the old one.
	s.products = append([]*entity.Product(nil), products...)
	s.bySKU = bySKU
	s.byID = byID
	s.dimensions = append([]string(nil), dimensions...)
	return nil
}

// Count returns the number of products in the catalog.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//
// Returns:
//   - int: product count
//   - error: context error if the context is done
func (s *CatalogStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), nil
}

// seedDocument is the on-disk shape of a catalog seed file.
type seedDocument struct {
	AttributeDimensions []string      `json:"attribute_dimensions"`
	Products            []seedProduct `json:"products"`
}

// seedProduct describes one product in a seed file.
type seedProduct struct {
	Name         string              `json:"name"`
	SKU          string              `json:"sku"`
	Kind         string              `json:"kind"`
	RegularPrice *float64            `json:"regular_price"`
	StockStatus  string              `json:"stock_status"`
	Rating       *float64            `json:"rating"`
	Attributes   map[string][]string `json:"attributes"`
	Variations   []seedVariation     `json:"variations"`
}

// seedVariation describes one variation in a seed file.
type seedVariation struct {
	Price       *float64            `json:"price"`
	StockStatus string              `json:"stock_status"`
	Attributes  map[string][]string `json:"attributes"`
}

// LoadSeedFile replaces the catalog with the contents of a JSON seed file.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - path: path to the seed file
//
// Returns:
//   - error: repository.ErrInvalidSeedFile wrapping the underlying cause
func (s *CatalogStore) LoadSeedFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrInvalidSeedFile, err)
	}

	var doc seedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrInvalidSeedFile, err)
	}

	products := make([]*entity.Product, 0, len(doc.Products))
	for i, sp := range doc.Products {
		p, err := buildSeedProduct(sp)
		if err != nil {
			return fmt.Errorf("%w: product %d (%q): %v", repository.ErrInvalidSeedFile, i, sp.SKU, err)
		}
		products = append(products, p)
	}

	return s.ReplaceCatalog(ctx, products, doc.AttributeDimensions...)
}

// buildSeedProduct converts a seed entry into a domain product.
func buildSeedProduct(sp seedProduct) (*entity.Product, error) {
	var (
		p   *entity.Product
		err error
	)

	switch entity.ProductKind(sp.Kind) {
	case entity.ProductKindSimple:
		price := 0.0
		if sp.RegularPrice != nil {
			price = *sp.RegularPrice
		}
		p, err = entity.NewSimpleProduct(sp.Name, sp.SKU, price, entity.StockStatus(sp.StockStatus))
	case entity.ProductKindVariable:
		p, err = entity.NewVariableProduct(sp.Name, sp.SKU)
	default:
		return nil, fmt.Errorf("unknown product kind %q", sp.Kind)
	}
	if err != nil {
		return nil, err
	}

	for dimension, terms := range sp.Attributes {
		p.AssignTerms(dimension, terms...)
	}
	if sp.Rating != nil {
		if err := p.SetRating(*sp.Rating); err != nil {
			return nil, err
		}
	}
	for _, sv := range sp.Variations {
		if err := p.AddVariation(sv.Price, entity.StockStatus(sv.StockStatus), sv.Attributes); err != nil {
			return nil, err
		}
	}
	return p, nil
}
