// Package repository contains the repository interfaces (ports) for data access.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/facet-go/internal/domain/entity"
	"github.com/hapkiduki/facet-go/internal/domain/facet"
)

// CatalogRepository defines the interface for catalog snapshot access.
// It abstracts where the product/variation graph lives; the facet engine
// only ever sees the Snapshot it returns.
//
// Example usage:
//
//	store := memory.NewCatalogStore()
//	snap, err := store.Snapshot(ctx)
type CatalogRepository interface {
	// Snapshot returns a stable, read-only view of the complete catalog.
	// The snapshot must cover the whole candidate set for the scope;
	// later catalog changes must not affect an already-taken snapshot.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//
	// Returns:
	//   - *facet.Snapshot: the catalog snapshot
	//   - error: any error encountered building the snapshot
	Snapshot(ctx context.Context) (*facet.Snapshot, error)

	// GetProduct retrieves a product by its unique identifier.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - id: The product's UUID
	//
	// Returns:
	//   - *entity.Product: the retrieved product
	//   - error: ErrProductNotFound if the product doesn't exist
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetBySKU retrieves a product by its SKU.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - sku: The product's SKU
	//
	// Returns:
	//   - *entity.Product: the retrieved product
	//   - error: ErrProductNotFound if the product doesn't exist
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// ReplaceCatalog swaps the catalog contents atomically. Snapshots
	// taken before the replacement keep answering consistently.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - products: the new complete product set
	//   - dimensions: declared attribute dimension names
	//
	// Returns:
	//   - error: ErrDuplicateSKU if two products share a SKU
	ReplaceCatalog(ctx context.Context, products []*entity.Product, dimensions ...string) error

	// Count returns the number of products in the catalog.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//
	// Returns:
	//   - int: product count
	//   - error: any error encountered during counting
	Count(ctx context.Context) (int, error)
}
