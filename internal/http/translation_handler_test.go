package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/domain/model"
	"github.com/guttosm/localization-service/internal/mocks"
	"github.com/guttosm/localization-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouterWithMock() (*gin.Engine, *mocks.MockTranslationService) {
	mockSvc := new(mocks.MockTranslationService)
	cfg := DefaultRouterConfig()
	cfg.TranslationService = mockSvc
	return NewRouter(NewHealthHandler(), cfg), mockSvc
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp dto.SuccessResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	dataBytes, _ := json.Marshal(resp.Data)
	var out T
	assert.NoError(t, json.Unmarshal(dataBytes, &out))
	return out
}

func TestGetTranslationKeys(t *testing.T) {
	keys := []model.TranslationKey{
		{ID: "k1", Key: "welcome", Category: "greetings", Translations: map[string]model.Translation{
			"en": {Value: "Welcome", UpdatedBy: "system"},
		}},
	}

	tests := []struct {
		name           string
		url            string
		setup          func(*mocks.MockTranslationService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "default pagination",
			url:  "/api/projects/proj-1/translation-keys",
			setup: func(m *mocks.MockTranslationService) {
				m.On("GetTranslationKeys", mock.Anything, "proj-1", dto.KeyListQuery{Page: 1, Limit: 50}).
					Return(keys, 1, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				result := decodeData[dto.GetTranslationKeysResponse](t, w)
				assert.Equal(t, 1, result.Total)
				assert.Len(t, result.Keys, 1)
				assert.Equal(t, "welcome", result.Keys[0].Key)
			},
		},
		{
			name: "filters forwarded",
			url:  "/api/projects/proj-1/translation-keys?page=2&limit=10&search=wel&category=greetings&language_code=en&missing_translations=true",
			setup: func(m *mocks.MockTranslationService) {
				m.On("GetTranslationKeys", mock.Anything, "proj-1", dto.KeyListQuery{
					Page: 2, Limit: 10, Search: "wel", Category: "greetings",
					LanguageCode: "en", MissingTranslations: true,
				}).Return([]model.TranslationKey{}, 0, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "page below one rejected",
			url:            "/api/projects/proj-1/translation-keys?page=0",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "limit above hundred rejected",
			url:            "/api/projects/proj-1/translation-keys?limit=101",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			url:  "/api/projects/proj-1/translation-keys",
			setup: func(m *mocks.MockTranslationService) {
				m.On("GetTranslationKeys", mock.Anything, "proj-1", mock.Anything).
					Return(nil, 0, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockSvc := setupRouterWithMock()
			if tt.setup != nil {
				tt.setup(mockSvc)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestGetTranslationKey(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mockSvc := setupRouterWithMock()
		mockSvc.On("GetTranslationKeyByID", mock.Anything, "k1").
			Return(&model.TranslationKey{ID: "k1", Key: "welcome"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/translation-keys/k1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		key := decodeData[model.TranslationKey](t, w)
		assert.Equal(t, "k1", key.ID)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockSvc := setupRouterWithMock()
		mockSvc.On("GetTranslationKeyByID", mock.Anything, "missing").
			Return(nil, service.ErrKeyNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/translation-keys/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	})
}

func TestCreateTranslationKey(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, mockSvc := setupRouterWithMock()
		mockSvc.On("CreateTranslationKey", mock.Anything, mock.MatchedBy(func(req dto.CreateTranslationKeyRequest) bool {
			return req.Key == "welcome" && req.ProjectID == "proj-1"
		})).Return(&model.TranslationKey{ID: "k1", Key: "welcome"}, nil)

		body := `{"key": "welcome", "category": "greetings", "projectId": "proj-1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/translation-keys", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		key := decodeData[model.TranslationKey](t, w)
		assert.Equal(t, "k1", key.ID)
	})

	t.Run("missing required fields", func(t *testing.T) {
		router, mockSvc := setupRouterWithMock()

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/translation-keys", strings.NewReader(`{"key": "welcome"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "CreateTranslationKey", mock.Anything, mock.Anything)
	})
}

func TestUpdateTranslation(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "updated", err: nil, expectedStatus: http.StatusOK},
		{name: "key not found", err: service.ErrKeyNotFound, expectedStatus: http.StatusNotFound},
		{name: "other error", err: errors.New("write failed"), expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockSvc := setupRouterWithMock()
			mockSvc.On("UpdateTranslation", mock.Anything, "k1", "en", "Hello", APIPrincipal).
				Return(tt.err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PUT", "/api/translations/k1/en", strings.NewReader(`{"value": "Hello"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCreateTranslation(t *testing.T) {
	body := `{"key_id": "k1", "language_code": "en", "value": "Hello"}`

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "created", err: nil, expectedStatus: http.StatusCreated},
		{name: "conflict", err: service.ErrTranslationExists, expectedStatus: http.StatusConflict},
		{name: "key not found", err: service.ErrKeyNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockSvc := setupRouterWithMock()
			mockSvc.On("CreateTranslation", mock.Anything, mock.MatchedBy(func(req dto.CreateTranslationRequest) bool {
				// Unauthenticated writes are attributed to the API principal.
				return req.KeyID == "k1" && req.UpdatedBy == APIPrincipal
			})).Return(tt.err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/translations", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBulkUpdateTranslations(t *testing.T) {
	router, mockSvc := setupRouterWithMock()
	mockSvc.On("BulkUpdateTranslations", mock.Anything, mock.Anything, APIPrincipal).
		Return(&dto.BulkUpdateResponse{
			Success:        true,
			Message:        "Updated 2 of 3 translations",
			UpdatedCount:   2,
			TotalRequested: 3,
		}, nil)

	body := `{"updates": [
		{"key_id": "k1", "language_code": "en", "value": "a"},
		{"key_id": "k2", "language_code": "en", "value": "b"},
		{"key_id": "k3", "language_code": "en", "value": "c"}
	]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/translations/bulk-update", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	result := decodeData[dto.BulkUpdateResponse](t, w)
	assert.Equal(t, 2, result.UpdatedCount)
	assert.Equal(t, 3, result.TotalRequested)
}

func TestDeleteTranslationKey(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, mockSvc := setupRouterWithMock()
		mockSvc.On("DeleteTranslationKey", mock.Anything, "k1").Return(true, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/translation-keys/k1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockSvc := setupRouterWithMock()
		mockSvc.On("DeleteTranslationKey", mock.Anything, "missing").Return(false, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/translation-keys/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetProjects(t *testing.T) {
	router, mockSvc := setupRouterWithMock()
	mockSvc.On("GetProjects", mock.Anything).Return([]model.Project{
		{ID: "proj-1", Name: "Website", Languages: []model.Language{{Code: "en", Name: "English"}}},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/projects", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	projects := decodeData[[]model.Project](t, w)
	assert.Len(t, projects, 1)
	assert.Equal(t, "Website", projects[0].Name)
}

func TestGetAnalytics(t *testing.T) {
	router, mockSvc := setupRouterWithMock()
	mockSvc.On("GetAnalytics", mock.Anything, "proj-1").Return(&dto.AnalyticsResponse{
		ProjectID: "proj-1",
		TotalKeys: 3,
		CompletionByLanguage: map[string]dto.LanguageCompletion{
			"en": {Completed: 2, Total: 3, Percentage: 66.67},
		},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/projects/proj-1/analytics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	analytics := decodeData[dto.AnalyticsResponse](t, w)
	assert.Equal(t, int64(3), analytics.TotalKeys)
	assert.Equal(t, 66.67, analytics.CompletionByLanguage["en"].Percentage)
}

func TestGetLocalizations(t *testing.T) {
	router, mockSvc := setupRouterWithMock()
	mockSvc.On("GetLocalizations", mock.Anything, "proj-1", "en").
		Return(map[string]string{"welcome": "Welcome"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/localizations/proj-1/en", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	result := decodeData[dto.LocalizationsResponse](t, w)
	assert.Equal(t, "proj-1", result.ProjectID)
	assert.Equal(t, "Welcome", result.Localizations["welcome"])
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := setupRouterWithMock()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
