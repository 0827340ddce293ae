// Package repository contains the repository interfaces and related errors.
package repository

import "errors"

// Repository errors define common error conditions across all repositories.
// These errors are used to communicate specific failure conditions
// from the data access layer to the application layer.

var (
	// ErrProductNotFound is returned when a product cannot be found by ID or SKU.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSKU is returned when trying to load a catalog containing
	// two products with the same SKU.
	ErrDuplicateSKU = errors.New("SKU already exists")

	// ErrInvalidSeedFile is returned when a catalog seed file cannot be
	// parsed or describes an invalid product.
	ErrInvalidSeedFile = errors.New("invalid catalog seed file")

	// ErrInvalidInput is returned when a repository receives invalid input.
	ErrInvalidInput = errors.New("invalid input provided")
)

// IsNotFoundError checks if the error is a not found error.
// This is useful for handling not-found cases uniformly.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a resource was not found
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}
