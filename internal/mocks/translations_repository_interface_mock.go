// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/localization-service/internal/repository"
)

type MockTranslationsRepositoryInterface struct {
	mock.Mock
}

func (m *MockTranslationsRepositoryInterface) InsertMany(ctx context.Context, rows []repository.TranslationRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockTranslationsRepositoryInterface) Exists(ctx context.Context, keyID, languageCode string) (bool, error) {
	args := m.Called(ctx, keyID, languageCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockTranslationsRepositoryInterface) Upsert(ctx context.Context, keyID, languageCode, value, updatedBy string) error {
	args := m.Called(ctx, keyID, languageCode, value, updatedBy)
	return args.Error(0)
}

func (m *MockTranslationsRepositoryInterface) DeleteForKey(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

func (m *MockTranslationsRepositoryInterface) CountForLanguage(ctx context.Context, projectID, languageCode string) (int64, error) {
	args := m.Called(ctx, projectID, languageCode)
	return args.Get(0).(int64), args.Error(1)
}
