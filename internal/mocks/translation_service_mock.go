// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/domain/model"
)

type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) GetTranslationKeys(ctx context.Context, projectID string, query dto.KeyListQuery) ([]model.TranslationKey, int, error) {
	args := m.Called(ctx, projectID, query)
	var keys []model.TranslationKey
	if args.Get(0) != nil {
		keys = args.Get(0).([]model.TranslationKey)
	}
	return keys, args.Int(1), args.Error(2)
}

func (m *MockTranslationService) GetTranslationKeyByID(ctx context.Context, keyID string) (*model.TranslationKey, error) {
	args := m.Called(ctx, keyID)
	var key *model.TranslationKey
	if args.Get(0) != nil {
		key = args.Get(0).(*model.TranslationKey)
	}
	return key, args.Error(1)
}

func (m *MockTranslationService) CreateTranslationKey(ctx context.Context, req dto.CreateTranslationKeyRequest) (*model.TranslationKey, error) {
	args := m.Called(ctx, req)
	var key *model.TranslationKey
	if args.Get(0) != nil {
		key = args.Get(0).(*model.TranslationKey)
	}
	return key, args.Error(1)
}

func (m *MockTranslationService) UpdateTranslation(ctx context.Context, keyID, languageCode, value, updatedBy string) error {
	args := m.Called(ctx, keyID, languageCode, value, updatedBy)
	return args.Error(0)
}

func (m *MockTranslationService) CreateTranslation(ctx context.Context, req dto.CreateTranslationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockTranslationService) BulkUpdateTranslations(ctx context.Context, updates []dto.UpdateTranslationRequest, updatedBy string) (*dto.BulkUpdateResponse, error) {
	args := m.Called(ctx, updates, updatedBy)
	var resp *dto.BulkUpdateResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.BulkUpdateResponse)
	}
	return resp, args.Error(1)
}

func (m *MockTranslationService) DeleteTranslationKey(ctx context.Context, keyID string) (bool, error) {
	args := m.Called(ctx, keyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTranslationService) GetProjects(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	var projects []model.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]model.Project)
	}
	return projects, args.Error(1)
}

func (m *MockTranslationService) GetAnalytics(ctx context.Context, projectID string) (*dto.AnalyticsResponse, error) {
	args := m.Called(ctx, projectID)
	var resp *dto.AnalyticsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.AnalyticsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockTranslationService) GetLocalizations(ctx context.Context, projectID, locale string) (map[string]string, error) {
	args := m.Called(ctx, projectID, locale)
	var localizations map[string]string
	if args.Get(0) != nil {
		localizations = args.Get(0).(map[string]string)
	}
	return localizations, args.Error(1)
}
