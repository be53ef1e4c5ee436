package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/mocks"
	"github.com/guttosm/localization-service/internal/repository"
)

func newTestService() (*mocks.MockTranslationKeysRepositoryInterface, *mocks.MockTranslationsRepositoryInterface, *mocks.MockProjectsRepositoryInterface, TranslationService) {
	keysRepo := new(mocks.MockTranslationKeysRepositoryInterface)
	translationsRepo := new(mocks.MockTranslationsRepositoryInterface)
	projectsRepo := new(mocks.MockProjectsRepositoryInterface)
	svc := NewTranslationService(keysRepo, translationsRepo, projectsRepo)
	return keysRepo, translationsRepo, projectsRepo, svc
}

func keyRow(id, key string, translations ...repository.TranslationRow) repository.KeyRow {
	return repository.KeyRow{
		ID:           id,
		Key:          key,
		Category:     "common",
		ProjectID:    "proj-1",
		CreatedAt:    "2025-01-01T00:00:00Z",
		UpdatedAt:    "2025-01-01T00:00:00Z",
		Translations: translations,
	}
}

func translationRow(keyID, lang, value string) repository.TranslationRow {
	return repository.TranslationRow{
		ID:               keyID + "-" + lang,
		TranslationKeyID: keyID,
		LanguageCode:     lang,
		Value:            value,
		UpdatedAt:        "2025-01-02T10:30:00Z",
		UpdatedBy:        "api_user",
	}
}

func defaultQuery() dto.KeyListQuery {
	return dto.KeyListQuery{Page: 1, Limit: 50}
}

func TestGetTranslationKeys_ReturnsAllKeys(t *testing.T) {
	keysRepo, _, _, svc := newTestService()
	keysRepo.On("FetchKeysForProject", mock.Anything, "proj-1", "", "").Return([]repository.KeyRow{
		keyRow("k1", "greeting", translationRow("k1", "en", "Hello")),
		keyRow("k2", "farewell"),
	}, nil)

	keys, total, err := svc.GetTranslationKeys(context.Background(), "proj-1", defaultQuery())

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, keys, 2)
	assert.Equal(t, "greeting", keys[0].Key)
	assert.Equal(t, "Hello", keys[0].Translations["en"].Value)
	assert.Equal(t, "api_user", keys[0].Translations["en"].UpdatedBy)
	assert.Empty(t, keys[1].Translations)
}

func TestGetTranslationKeys_SearchAndCategoryPushedDown(t *testing.T) {
	keysRepo, _, _, svc := newTestService()
	keysRepo.On("FetchKeysForProject", mock.Anything, "proj-1", "welcome", "onboarding").
		Return([]repository.KeyRow{}, nil)

	query := defaultQuery()
	query.Search = "welcome"
	query.Category = "onboarding"

	keys, total, err := svc.GetTranslationKeys(context.Background(), "proj-1", query)

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, keys)
	keysRepo.AssertExpectations(t)
}

func TestGetTranslationKeys_MissingForLanguage(t *testing.T) {
	keysRepo, _, _, svc := newTestService()
	keysRepo.On("FetchKeysForProject", mock.Anything, "proj-1", "", "").Return([]repository.KeyRow{
		keyRow("k1", "done", translationRow("k1", "de", "Hallo")),
		keyRow("k2", "absent"),
		keyRow("k3", "blank", translationRow("k3", "de", "   ")),
	}, nil)

	query := defaultQuery()
	query.MissingTranslations = true
	query.LanguageCode = "de"

	keys, total, err := svc.GetTranslationKeys(context.Background(), "proj-1", query)

	require.NoError(t, err)
	// A blank stored value counts as missing, same as no row at all.
	assert.Equal(t, 2, total)
	require.Len(t, keys, 2)
	assert.Equal(t, "absent", keys[0].Key)
	assert.Equal(t, "blank", keys[1].Key)
}

func TestGetTranslationKeys_MissingAnyProjectLanguage(t *testing.T) {
	keysRepo, _, projectsRepo, svc := newTestService()
	keysRepo.On("FetchKeysForProject", mock.Anything, "proj-1", "", "").Return([]repository.KeyRow{
		keyRow("k1", "complete",
			translationRow("k1", "en", "Hello"),
			translationRow("k1", "de", "Hallo")),
		keyRow("k2", "partial", translationRow("k2", "en", "Bye")),
	}, nil)
	projectsRepo.On("FetchLanguageCodes", mock.Anything, "proj-1").Return([]string{"en", "de"}, nil)

	query := defaultQuery()
	query.MissingTranslations = true

	keys, total, err := svc.GetTranslationKeys(context.Background(), "proj-1", query)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, keys, 1)
	assert.Equal(t, "partial", keys[0].Key)
}

func TestGetTranslationKeys_PaginationAfterFiltering(t *testing.T) {
	rows := []repository.KeyRow{
		keyRow("k1", "a"),
		keyRow("k2", "b", translationRow("k2", "en", "done")),
		keyRow("k3", "c"),
		keyRow("k4", "d"),
		keyRow("k5", "e"),
	}

	keysRepo, _, _, svc := newTestService()
	keysRepo.On("FetchKeysForProject", mock.Anything, "proj-1", "", "").Return(rows, nil)

	query := dto.KeyListQuery{Page: 2, Limit: 2, MissingTranslations: true, LanguageCode: "en"}

	keys, total, err := svc.GetTranslationKeys(context.Background(), "proj-1", query)

	require.NoError(t, err)
	// Total counts the filtered set (4 keys missing "en"), not the raw 5.
	assert.Equal(t, 4, total)
	require.Len(t, keys, 2)
	assert.Equal(t, "d", keys[0].Key)
	assert.Equal(t, "e", keys[1].Key)
}

func TestGetTranslationKeys_PageBeyondEnd(t *testing.T) {
	keysRepo, _, _, svc := newTestService()
	keysRepo.On("FetchKeysForProject", mock.Anything, "proj-1", "", "").Return([]repository.KeyRow{
		keyRow("k1", "a"),
		keyRow("k2", "b"),
	}, nil)

	query := dto.KeyListQuery{Page: 3, Limit: 50}

	keys, total, err := svc.GetTranslationKeys(context.Background(), "proj-1", query)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Empty(t, keys)
}

func TestGetTranslationKeys_RepositoryError(t *testing.T) {
	keysRepo, _, _, svc := newTestService()
	keysRepo.On("FetchKeysForProject", mock.Anything, "proj-1", "", "").
		Return(nil, errors.New("connection reset"))

	_, _, err := svc.GetTranslationKeys(context.Background(), "proj-1", defaultQuery())

	assert.Error(t, err)
}

func TestGetTranslationKeyByID_NotFound(t *testing.T) {
	keysRepo, _, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.GetTranslationKeyByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCreateTranslationKey_WithInitialTranslations(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()

	var insertedID string
	keysRepo.On("Insert", mock.Anything, mock.MatchedBy(func(row *repository.KeyRow) bool {
		insertedID = row.ID
		return row.Key == "welcome" && row.ProjectID == "proj-1" && row.ID != "" && row.CreatedAt != ""
	})).Return(nil)
	translationsRepo.On("InsertMany", mock.Anything, mock.MatchedBy(func(rows []repository.TranslationRow) bool {
		return len(rows) == 1 && rows[0].LanguageCode == "en" && rows[0].Value == "Welcome" && rows[0].UpdatedBy == SystemPrincipal
	})).Return(nil)
	keysRepo.On("FindByID", mock.Anything, mock.Anything).Return(&repository.KeyRow{
		ID:  "generated",
		Key: "welcome",
	}, nil)

	key, err := svc.CreateTranslationKey(context.Background(), dto.CreateTranslationKeyRequest{
		Key:                 "welcome",
		Category:            "onboarding",
		ProjectID:           "proj-1",
		InitialTranslations: map[string]string{"en": "Welcome"},
	})

	require.NoError(t, err)
	assert.Equal(t, "welcome", key.Key)
	assert.NotEmpty(t, insertedID)
	translationsRepo.AssertExpectations(t)
}

func TestCreateTranslationKey_WithoutInitialTranslations(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	keysRepo.On("FindByID", mock.Anything, mock.Anything).Return(&repository.KeyRow{ID: "k1", Key: "plain"}, nil)

	_, err := svc.CreateTranslationKey(context.Background(), dto.CreateTranslationKeyRequest{
		Key:       "plain",
		Category:  "common",
		ProjectID: "proj-1",
	})

	require.NoError(t, err)
	translationsRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestUpdateTranslation_UpsertsValue(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "k1").Return(&repository.KeyRow{ID: "k1"}, nil)
	translationsRepo.On("Upsert", mock.Anything, "k1", "en", "Hello", "editor@example.com").Return(nil)

	err := svc.UpdateTranslation(context.Background(), "k1", "en", "Hello", "editor@example.com")

	require.NoError(t, err)
	translationsRepo.AssertExpectations(t)
}

func TestUpdateTranslation_KeyNotFound(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	err := svc.UpdateTranslation(context.Background(), "missing", "en", "Hello", "api_user")

	assert.ErrorIs(t, err, ErrKeyNotFound)
	translationsRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTranslation_BlankValueAllowed(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "k1").Return(&repository.KeyRow{ID: "k1"}, nil)
	translationsRepo.On("Upsert", mock.Anything, "k1", "en", "", "api_user").Return(nil)

	err := svc.UpdateTranslation(context.Background(), "k1", "en", "", "api_user")

	require.NoError(t, err)
}

func TestCreateTranslation_Conflict(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "k1").Return(&repository.KeyRow{ID: "k1"}, nil)
	translationsRepo.On("Exists", mock.Anything, "k1", "en").Return(true, nil)

	err := svc.CreateTranslation(context.Background(), dto.CreateTranslationRequest{
		KeyID:        "k1",
		LanguageCode: "en",
		Value:        "Hello",
	})

	assert.ErrorIs(t, err, ErrTranslationExists)
	translationsRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestCreateTranslation_DefaultsPrincipal(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "k1").Return(&repository.KeyRow{ID: "k1"}, nil)
	translationsRepo.On("Exists", mock.Anything, "k1", "en").Return(false, nil)
	translationsRepo.On("InsertMany", mock.Anything, mock.MatchedBy(func(rows []repository.TranslationRow) bool {
		return len(rows) == 1 && rows[0].UpdatedBy == SystemPrincipal
	})).Return(nil)

	err := svc.CreateTranslation(context.Background(), dto.CreateTranslationRequest{
		KeyID:        "k1",
		LanguageCode: "en",
		Value:        "Hello",
	})

	require.NoError(t, err)
	translationsRepo.AssertExpectations(t)
}

func TestBulkUpdateTranslations_PartialFailure(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "k1").Return(&repository.KeyRow{ID: "k1"}, nil)
	keysRepo.On("FindByID", mock.Anything, "k2").Return(nil, nil)
	keysRepo.On("FindByID", mock.Anything, "k3").Return(&repository.KeyRow{ID: "k3"}, nil)
	translationsRepo.On("Upsert", mock.Anything, "k1", "en", "one", "api_user").Return(nil)
	translationsRepo.On("Upsert", mock.Anything, "k3", "en", "three", "api_user").Return(nil)

	result, err := svc.BulkUpdateTranslations(context.Background(), []dto.UpdateTranslationRequest{
		{KeyID: "k1", LanguageCode: "en", Value: "one"},
		{KeyID: "k2", LanguageCode: "en", Value: "two"},
		{KeyID: "k3", LanguageCode: "en", Value: "three"},
	}, "api_user")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.UpdatedCount)
	assert.Equal(t, 3, result.TotalRequested)
}

func TestBulkUpdateTranslations_Empty(t *testing.T) {
	_, _, _, svc := newTestService()

	result, err := svc.BulkUpdateTranslations(context.Background(), nil, "api_user")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Zero(t, result.UpdatedCount)
	assert.Zero(t, result.TotalRequested)
}

func TestDeleteTranslationKey_CascadesTranslationsFirst(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "k1").Return(&repository.KeyRow{ID: "k1"}, nil)
	translationsRepo.On("DeleteForKey", mock.Anything, "k1").Return(nil)
	keysRepo.On("Delete", mock.Anything, "k1").Return(true, nil)

	deleted, err := svc.DeleteTranslationKey(context.Background(), "k1")

	require.NoError(t, err)
	assert.True(t, deleted)
	translationsRepo.AssertExpectations(t)
	keysRepo.AssertExpectations(t)
}

func TestDeleteTranslationKey_NotFound(t *testing.T) {
	keysRepo, translationsRepo, _, svc := newTestService()
	keysRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	deleted, err := svc.DeleteTranslationKey(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, deleted)
	translationsRepo.AssertNotCalled(t, "DeleteForKey", mock.Anything, mock.Anything)
}

func TestGetProjects_HydratesLanguages(t *testing.T) {
	_, _, projectsRepo, svc := newTestService()
	projectsRepo.On("FetchAll", mock.Anything).Return([]repository.ProjectRow{
		{
			ID:        "proj-1",
			Name:      "Website",
			CreatedAt: "2025-01-01T00:00:00Z",
			UpdatedAt: "2025-01-05T12:00:00Z",
			Languages: []repository.LanguageRow{
				{Code: "en", Name: "English", Flag: "🇬🇧"},
				{Code: "de", Name: "German", Flag: "🇩🇪"},
			},
		},
	}, nil)

	projects, err := svc.GetProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Website", projects[0].Name)
	require.Len(t, projects[0].Languages, 2)
	assert.Equal(t, "en", projects[0].Languages[0].Code)
	assert.Equal(t, 2025, projects[0].CreatedAt.Year())
}

func TestGetAnalytics_CompletionPerLanguage(t *testing.T) {
	keysRepo, translationsRepo, projectsRepo, svc := newTestService()
	projectsRepo.On("FetchLanguageCodes", mock.Anything, "proj-1").Return([]string{"en", "de"}, nil)
	keysRepo.On("Count", mock.Anything, "proj-1").Return(int64(3), nil)
	translationsRepo.On("CountForLanguage", mock.Anything, "proj-1", "en").Return(int64(2), nil)
	translationsRepo.On("CountForLanguage", mock.Anything, "proj-1", "de").Return(int64(1), nil)

	analytics, err := svc.GetAnalytics(context.Background(), "proj-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), analytics.TotalKeys)
	keysRepo.AssertNotCalled(t, "FetchKeysForProject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	en := analytics.CompletionByLanguage["en"]
	assert.Equal(t, int64(2), en.Completed)
	assert.InDelta(t, 66.67, en.Percentage, 0.001)

	de := analytics.CompletionByLanguage["de"]
	assert.Equal(t, int64(1), de.Completed)
	assert.InDelta(t, 33.33, de.Percentage, 0.001)
}

func TestGetAnalytics_CountError(t *testing.T) {
	keysRepo, translationsRepo, projectsRepo, svc := newTestService()
	projectsRepo.On("FetchLanguageCodes", mock.Anything, "proj-1").Return([]string{"en"}, nil)
	keysRepo.On("Count", mock.Anything, "proj-1").Return(int64(3), nil)
	translationsRepo.On("CountForLanguage", mock.Anything, "proj-1", "en").
		Return(int64(0), errors.New("aggregate failed"))

	analytics, err := svc.GetAnalytics(context.Background(), "proj-1")

	require.Error(t, err)
	assert.Nil(t, analytics)
	assert.Contains(t, err.Error(), "counting translations for en")
}

func TestGetLocalizations_FlattensCompletedOnly(t *testing.T) {
	keysRepo, _, _, svc := newTestService()
	keysRepo.On("FetchKeysForProject", mock.Anything, "proj-1", "", "").Return([]repository.KeyRow{
		keyRow("k1", "greeting", translationRow("k1", "en", "Hello")),
		keyRow("k2", "farewell", translationRow("k2", "en", "")),
		keyRow("k3", "untranslated"),
	}, nil)

	localizations, err := svc.GetLocalizations(context.Background(), "proj-1", "en")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greeting": "Hello"}, localizations)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, parsed bool, year int)
	}{
		{"rfc3339", "2025-03-15T10:30:00Z", func(t *testing.T, parsed bool, year int) {
			assert.True(t, parsed)
			assert.Equal(t, 2025, year)
		}},
		{"fractional seconds", "2025-03-15T10:30:00.123456Z", func(t *testing.T, parsed bool, year int) {
			assert.True(t, parsed)
		}},
		{"naive treated as utc", "2025-03-15T10:30:00", func(t *testing.T, parsed bool, year int) {
			assert.True(t, parsed)
			assert.Equal(t, 2025, year)
		}},
		{"empty", "", func(t *testing.T, parsed bool, year int) {
			assert.False(t, parsed)
		}},
		{"garbage", "yesterday", func(t *testing.T, parsed bool, year int) {
			assert.False(t, parsed)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := parseTimestamp(tt.input)
			tt.check(t, !ts.IsZero(), ts.Year())
		})
	}
}
