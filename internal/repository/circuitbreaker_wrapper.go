// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/localization-service/internal/circuitbreaker"
)

// TranslationKeysRepositoryWithCircuitBreaker wraps TranslationKeysRepository
// with circuit breaker protection against a degraded database.
type TranslationKeysRepositoryWithCircuitBreaker struct {
	repo           TranslationKeysRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTranslationKeysRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTranslationKeysRepositoryWithCircuitBreaker(repo TranslationKeysRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *TranslationKeysRepositoryWithCircuitBreaker {
	return &TranslationKeysRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FetchKeysForProject fetches key rows with circuit breaker protection.
func (r *TranslationKeysRepositoryWithCircuitBreaker) FetchKeysForProject(ctx context.Context, projectID, search, category string) ([]KeyRow, error) {
	var result []KeyRow
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FetchKeysForProject(ctx, projectID, search, category)
		return cbErr
	})
	return result, err
}

// FindByID fetches a single key row with circuit breaker protection.
func (r *TranslationKeysRepositoryWithCircuitBreaker) FindByID(ctx context.Context, keyID string) (*KeyRow, error) {
	var result *KeyRow
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, keyID)
		return cbErr
	})
	return result, err
}

// Insert persists a key row with circuit breaker protection.
func (r *TranslationKeysRepositoryWithCircuitBreaker) Insert(ctx context.Context, row *KeyRow) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, row)
	})
}

// Delete removes a key row with circuit breaker protection.
func (r *TranslationKeysRepositoryWithCircuitBreaker) Delete(ctx context.Context, keyID string) (bool, error) {
	var deleted bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		deleted, cbErr = r.repo.Delete(ctx, keyID)
		return cbErr
	})
	return deleted, err
}

// Count counts a project's keys with circuit breaker protection.
func (r *TranslationKeysRepositoryWithCircuitBreaker) Count(ctx context.Context, projectID string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, projectID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TranslationKeysRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
