// Package service contains business logic for localization operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/domain/model"
	"github.com/guttosm/localization-service/internal/repository"
)

var (
	// ErrKeyNotFound is returned when a translation key does not exist.
	ErrKeyNotFound = errors.New("translation key not found")
	// ErrTranslationExists is returned by the create-only translation path when
	// a translation already exists for the (key, language) pair.
	ErrTranslationExists = errors.New("translation already exists for this language")
)

// SystemPrincipal attributes writes performed by the service itself, such as
// initial translations created alongside a new key.
const SystemPrincipal = "system"

// TranslationService provides translation key and translation value operations.
type TranslationService interface {
	// GetTranslationKeys returns one page of a project's translation keys after
	// applying search, category and missing-translation filters. The returned
	// total counts the whole filtered set, not the page.
	GetTranslationKeys(ctx context.Context, projectID string, query dto.KeyListQuery) ([]model.TranslationKey, int, error)
	GetTranslationKeyByID(ctx context.Context, keyID string) (*model.TranslationKey, error)
	CreateTranslationKey(ctx context.Context, req dto.CreateTranslationKeyRequest) (*model.TranslationKey, error)
	// UpdateTranslation sets the value for (keyID, languageCode), creating the
	// translation row when none exists.
	UpdateTranslation(ctx context.Context, keyID, languageCode, value, updatedBy string) error
	// CreateTranslation creates a translation row, failing with
	// ErrTranslationExists when the pair already has one.
	CreateTranslation(ctx context.Context, req dto.CreateTranslationRequest) error
	// BulkUpdateTranslations applies updates independently in submission order.
	// Individual failures are logged and counted, never raised.
	BulkUpdateTranslations(ctx context.Context, updates []dto.UpdateTranslationRequest, updatedBy string) (*dto.BulkUpdateResponse, error)
	// DeleteTranslationKey removes a key and all its translations. Returns
	// false when the key does not exist.
	DeleteTranslationKey(ctx context.Context, keyID string) (bool, error)
	GetProjects(ctx context.Context) ([]model.Project, error)
	GetAnalytics(ctx context.Context, projectID string) (*dto.AnalyticsResponse, error)
	// GetLocalizations returns the flat key-to-value map for one locale,
	// skipping keys whose translation is absent or blank.
	GetLocalizations(ctx context.Context, projectID, locale string) (map[string]string, error)
}

// TranslationServiceImpl implements TranslationService.
type TranslationServiceImpl struct {
	keysRepo         repository.TranslationKeysRepositoryInterface
	translationsRepo repository.TranslationsRepositoryInterface
	projectsRepo     repository.ProjectsRepositoryInterface
}

// NewTranslationService creates a new translation service.
func NewTranslationService(
	keysRepo repository.TranslationKeysRepositoryInterface,
	translationsRepo repository.TranslationsRepositoryInterface,
	projectsRepo repository.ProjectsRepositoryInterface,
) TranslationService {
	return &TranslationServiceImpl{
		keysRepo:         keysRepo,
		translationsRepo: translationsRepo,
		projectsRepo:     projectsRepo,
	}
}

// GetTranslationKeys lists a project's keys. Search and category are pushed
// down to the repository; the missing-translations filter runs here because it
// needs the project's language set and completeness semantics. Pagination
// slices the filtered set, so Total is the post-filter count.
func (s *TranslationServiceImpl) GetTranslationKeys(ctx context.Context, projectID string, query dto.KeyListQuery) ([]model.TranslationKey, int, error) {
	rows, err := s.keysRepo.FetchKeysForProject(ctx, projectID, query.Search, query.Category)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching translation keys: %w", err)
	}

	keys := make([]model.TranslationKey, 0, len(rows))
	for i := range rows {
		keys = append(keys, keyFromRow(&rows[i]))
	}

	if query.MissingTranslations {
		keys, err = s.filterMissing(ctx, projectID, keys, query.LanguageCode)
		if err != nil {
			return nil, 0, err
		}
	}

	total := len(keys)

	offset := (query.Page - 1) * query.Limit
	if offset >= total {
		return []model.TranslationKey{}, total, nil
	}
	end := offset + query.Limit
	if end > total {
		end = total
	}
	return keys[offset:end], total, nil
}

// filterMissing keeps only keys lacking a completed translation. With a
// language code the check is against that language alone; without one, a key
// is kept if any of the project's configured languages is missing.
func (s *TranslationServiceImpl) filterMissing(ctx context.Context, projectID string, keys []model.TranslationKey, languageCode string) ([]model.TranslationKey, error) {
	if languageCode != "" {
		filtered := keys[:0]
		for _, k := range keys {
			if !k.HasCompletedTranslation(languageCode) {
				filtered = append(filtered, k)
			}
		}
		return filtered, nil
	}

	codes, err := s.projectsRepo.FetchLanguageCodes(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("fetching project languages: %w", err)
	}

	filtered := keys[:0]
	for _, k := range keys {
		if k.MissingAnyOf(codes) {
			filtered = append(filtered, k)
		}
	}
	return filtered, nil
}

// GetTranslationKeyByID returns one key with its translations, or
// ErrKeyNotFound.
func (s *TranslationServiceImpl) GetTranslationKeyByID(ctx context.Context, keyID string) (*model.TranslationKey, error) {
	row, err := s.keysRepo.FindByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("fetching translation key: %w", err)
	}
	if row == nil {
		return nil, ErrKeyNotFound
	}
	key := keyFromRow(row)
	return &key, nil
}

// CreateTranslationKey creates a key and its initial translations, then
// re-reads the stored row so the caller sees exactly what was persisted.
func (s *TranslationServiceImpl) CreateTranslationKey(ctx context.Context, req dto.CreateTranslationKeyRequest) (*model.TranslationKey, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	row := &repository.KeyRow{
		ID:          uuid.New().String(),
		Key:         req.Key,
		Category:    req.Category,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.keysRepo.Insert(ctx, row); err != nil {
		return nil, fmt.Errorf("creating translation key: %w", err)
	}

	if len(req.InitialTranslations) > 0 {
		translations := make([]repository.TranslationRow, 0, len(req.InitialTranslations))
		for code, value := range req.InitialTranslations {
			translations = append(translations, repository.TranslationRow{
				TranslationKeyID: row.ID,
				LanguageCode:     code,
				Value:            value,
				UpdatedBy:        SystemPrincipal,
			})
		}
		if err := s.translationsRepo.InsertMany(ctx, translations); err != nil {
			return nil, fmt.Errorf("creating initial translations: %w", err)
		}
	}

	return s.GetTranslationKeyByID(ctx, row.ID)
}

// UpdateTranslation upserts the value for (keyID, languageCode). The key must
// exist; the translation row need not.
func (s *TranslationServiceImpl) UpdateTranslation(ctx context.Context, keyID, languageCode, value, updatedBy string) error {
	row, err := s.keysRepo.FindByID(ctx, keyID)
	if err != nil {
		return fmt.Errorf("fetching translation key: %w", err)
	}
	if row == nil {
		return ErrKeyNotFound
	}

	if err := s.translationsRepo.Upsert(ctx, keyID, languageCode, value, updatedBy); err != nil {
		return fmt.Errorf("upserting translation: %w", err)
	}
	return nil
}

// CreateTranslation creates a translation row only when none exists for the
// (key, language) pair.
func (s *TranslationServiceImpl) CreateTranslation(ctx context.Context, req dto.CreateTranslationRequest) error {
	row, err := s.keysRepo.FindByID(ctx, req.KeyID)
	if err != nil {
		return fmt.Errorf("fetching translation key: %w", err)
	}
	if row == nil {
		return ErrKeyNotFound
	}

	exists, err := s.translationsRepo.Exists(ctx, req.KeyID, req.LanguageCode)
	if err != nil {
		return fmt.Errorf("checking translation existence: %w", err)
	}
	if exists {
		return ErrTranslationExists
	}

	updatedBy := req.UpdatedBy
	if updatedBy == "" {
		updatedBy = SystemPrincipal
	}

	err = s.translationsRepo.InsertMany(ctx, []repository.TranslationRow{{
		TranslationKeyID: req.KeyID,
		LanguageCode:     req.LanguageCode,
		Value:            req.Value,
		UpdatedBy:        updatedBy,
	}})
	if err != nil {
		return fmt.Errorf("creating translation: %w", err)
	}
	return nil
}

// BulkUpdateTranslations applies each update independently, in submission
// order. A failed entry is logged and skipped; the response reports how many
// succeeded out of how many were requested.
func (s *TranslationServiceImpl) BulkUpdateTranslations(ctx context.Context, updates []dto.UpdateTranslationRequest, updatedBy string) (*dto.BulkUpdateResponse, error) {
	updated := 0
	for _, u := range updates {
		if err := s.UpdateTranslation(ctx, u.KeyID, u.LanguageCode, u.Value, updatedBy); err != nil {
			log.Warn().
				Err(err).
				Str("key_id", u.KeyID).
				Str("language_code", u.LanguageCode).
				Msg("Bulk update entry failed")
			continue
		}
		updated++
	}

	return &dto.BulkUpdateResponse{
		Success:        true,
		Message:        fmt.Sprintf("Updated %d of %d translations", updated, len(updates)),
		UpdatedCount:   updated,
		TotalRequested: len(updates),
	}, nil
}

// DeleteTranslationKey removes the key's translations first, then the key
// itself. Returns false without error when the key does not exist.
func (s *TranslationServiceImpl) DeleteTranslationKey(ctx context.Context, keyID string) (bool, error) {
	row, err := s.keysRepo.FindByID(ctx, keyID)
	if err != nil {
		return false, fmt.Errorf("fetching translation key: %w", err)
	}
	if row == nil {
		return false, nil
	}

	if err := s.translationsRepo.DeleteForKey(ctx, keyID); err != nil {
		return false, fmt.Errorf("deleting translations: %w", err)
	}
	if _, err := s.keysRepo.Delete(ctx, keyID); err != nil {
		return false, fmt.Errorf("deleting translation key: %w", err)
	}
	return true, nil
}

// GetProjects returns all projects with their configured languages.
func (s *TranslationServiceImpl) GetProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.projectsRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}

	projects := make([]model.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, projectFromRow(&rows[i]))
	}
	return projects, nil
}

// GetAnalytics reports per-language completion for a project. Completion
// counts only non-blank translations; a stored blank row does not count.
// Both counts are pushed to storage, so no key rows are materialized.
func (s *TranslationServiceImpl) GetAnalytics(ctx context.Context, projectID string) (*dto.AnalyticsResponse, error) {
	codes, err := s.projectsRepo.FetchLanguageCodes(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("fetching project languages: %w", err)
	}

	totalKeys, err := s.keysRepo.Count(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("counting translation keys: %w", err)
	}

	completion := make(map[string]dto.LanguageCompletion, len(codes))
	for _, code := range codes {
		completed, err := s.translationsRepo.CountForLanguage(ctx, projectID, code)
		if err != nil {
			return nil, fmt.Errorf("counting translations for %s: %w", code, err)
		}
		percentage := 0.0
		if totalKeys > 0 {
			percentage = math.Round(float64(completed)/float64(totalKeys)*10000) / 100
		}
		completion[code] = dto.LanguageCompletion{
			Completed:  completed,
			Total:      totalKeys,
			Percentage: percentage,
		}
	}

	return &dto.AnalyticsResponse{
		ProjectID:            projectID,
		TotalKeys:            totalKeys,
		CompletionByLanguage: completion,
		LastUpdated:          time.Now().UTC(),
	}, nil
}

// GetLocalizations flattens a project's keys into a key-to-value map for one
// locale. Keys without a completed translation for the locale are omitted.
func (s *TranslationServiceImpl) GetLocalizations(ctx context.Context, projectID, locale string) (map[string]string, error) {
	rows, err := s.keysRepo.FetchKeysForProject(ctx, projectID, "", "")
	if err != nil {
		return nil, fmt.Errorf("fetching translation keys: %w", err)
	}

	localizations := make(map[string]string, len(rows))
	for i := range rows {
		key := keyFromRow(&rows[i])
		if t, ok := key.Translations[locale]; ok && t.Completed() {
			localizations[key.Key] = t.Value
		}
	}
	return localizations, nil
}

// keyFromRow converts a stored key row into the domain model, parsing text
// timestamps and pivoting translation rows into a per-language map.
func keyFromRow(row *repository.KeyRow) model.TranslationKey {
	translations := make(map[string]model.Translation, len(row.Translations))
	for _, t := range row.Translations {
		translations[t.LanguageCode] = model.Translation{
			Value:     t.Value,
			UpdatedAt: parseTimestamp(t.UpdatedAt),
			UpdatedBy: t.UpdatedBy,
		}
	}
	return model.TranslationKey{
		ID:           row.ID,
		Key:          row.Key,
		Category:     row.Category,
		Description:  row.Description,
		Translations: translations,
	}
}

// projectFromRow converts a stored project row into the domain model.
func projectFromRow(row *repository.ProjectRow) model.Project {
	languages := make([]model.Language, 0, len(row.Languages))
	for _, l := range row.Languages {
		languages = append(languages, model.Language{
			Code: l.Code,
			Name: l.Name,
			Flag: l.Flag,
		})
	}
	return model.Project{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Languages:   languages,
		CreatedAt:   parseTimestamp(row.CreatedAt),
		UpdatedAt:   parseTimestamp(row.UpdatedAt),
	}
}

// parseTimestamp parses stored ISO-8601 text. Accepts RFC 3339 with or
// without fractional seconds, and naive timestamps lacking a zone (treated as
// UTC). Unparseable or empty text yields the zero time rather than an error;
// timestamps are display metadata, not behavior.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return ts.UTC()
	}
	return time.Time{}
}
