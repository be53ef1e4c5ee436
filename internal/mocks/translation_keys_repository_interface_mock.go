// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/localization-service/internal/repository"
)

type MockTranslationKeysRepositoryInterface struct {
	mock.Mock
}

func (m *MockTranslationKeysRepositoryInterface) FetchKeysForProject(ctx context.Context, projectID, search, category string) ([]repository.KeyRow, error) {
	args := m.Called(ctx, projectID, search, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.KeyRow), args.Error(1)
}

func (m *MockTranslationKeysRepositoryInterface) FindByID(ctx context.Context, keyID string) (*repository.KeyRow, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.KeyRow), args.Error(1)
}

func (m *MockTranslationKeysRepositoryInterface) Insert(ctx context.Context, row *repository.KeyRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockTranslationKeysRepositoryInterface) Delete(ctx context.Context, keyID string) (bool, error) {
	args := m.Called(ctx, keyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTranslationKeysRepositoryInterface) Count(ctx context.Context, projectID string) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}
