package mocks

import (
	"context"

	"fruitapi/internal/model"
	"fruitapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockFruitService struct {
	mock.Mock
}

func (m *MockFruitService) List(ctx context.Context) ([]model.Fruit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fruit), args.Error(1)
}

func (m *MockFruitService) Create(ctx context.Context, in service.CreateFruitInput) (*model.Fruit, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fruit), args.Error(1)
}
