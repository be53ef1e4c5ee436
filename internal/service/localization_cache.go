package service

import (
	"context"

	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/domain/model"
	"github.com/guttosm/localization-service/internal/service/cache"
)

// CachedTranslationService wraps a TranslationService with caching of the
// flat localization maps, which are the hot read path for client apps.
// Every write flushes the cache: the project a key belongs to is not known at
// write time, and flushing is cheap relative to serving stale values.
type CachedTranslationService struct {
	inner TranslationService
	cache cache.Cache
}

// NewCachedTranslationService wraps a translation service with a localization cache.
func NewCachedTranslationService(inner TranslationService, c cache.Cache) *CachedTranslationService {
	return &CachedTranslationService{
		inner: inner,
		cache: c,
	}
}

// GetLocalizations serves the flat map from cache when possible.
func (s *CachedTranslationService) GetLocalizations(ctx context.Context, projectID, locale string) (map[string]string, error) {
	key := projectID + ":" + locale
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	localizations, err := s.inner.GetLocalizations(ctx, projectID, locale)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, localizations)
	return localizations, nil
}

func (s *CachedTranslationService) GetTranslationKeys(ctx context.Context, projectID string, query dto.KeyListQuery) ([]model.TranslationKey, int, error) {
	return s.inner.GetTranslationKeys(ctx, projectID, query)
}

func (s *CachedTranslationService) GetTranslationKeyByID(ctx context.Context, keyID string) (*model.TranslationKey, error) {
	return s.inner.GetTranslationKeyByID(ctx, keyID)
}

func (s *CachedTranslationService) CreateTranslationKey(ctx context.Context, req dto.CreateTranslationKeyRequest) (*model.TranslationKey, error) {
	key, err := s.inner.CreateTranslationKey(ctx, req)
	if err == nil {
		s.cache.Clear()
	}
	return key, err
}

func (s *CachedTranslationService) UpdateTranslation(ctx context.Context, keyID, languageCode, value, updatedBy string) error {
	err := s.inner.UpdateTranslation(ctx, keyID, languageCode, value, updatedBy)
	if err == nil {
		s.cache.Clear()
	}
	return err
}

func (s *CachedTranslationService) CreateTranslation(ctx context.Context, req dto.CreateTranslationRequest) error {
	err := s.inner.CreateTranslation(ctx, req)
	if err == nil {
		s.cache.Clear()
	}
	return err
}

func (s *CachedTranslationService) BulkUpdateTranslations(ctx context.Context, updates []dto.UpdateTranslationRequest, updatedBy string) (*dto.BulkUpdateResponse, error) {
	result, err := s.inner.BulkUpdateTranslations(ctx, updates, updatedBy)
	if err == nil {
		s.cache.Clear()
	}
	return result, err
}

func (s *CachedTranslationService) DeleteTranslationKey(ctx context.Context, keyID string) (bool, error) {
	deleted, err := s.inner.DeleteTranslationKey(ctx, keyID)
	if err == nil && deleted {
		s.cache.Clear()
	}
	return deleted, err
}

func (s *CachedTranslationService) GetProjects(ctx context.Context) ([]model.Project, error) {
	return s.inner.GetProjects(ctx)
}

func (s *CachedTranslationService) GetAnalytics(ctx context.Context, projectID string) (*dto.AnalyticsResponse, error) {
	return s.inner.GetAnalytics(ctx, projectID)
}
