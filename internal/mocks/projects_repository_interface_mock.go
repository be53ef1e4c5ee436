// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/localization-service/internal/repository"
)

type MockProjectsRepositoryInterface struct {
	mock.Mock
}

func (m *MockProjectsRepositoryInterface) FetchAll(ctx context.Context) ([]repository.ProjectRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ProjectRow), args.Error(1)
}

func (m *MockProjectsRepositoryInterface) FetchLanguageCodes(ctx context.Context, projectID string) ([]string, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
