package mocks

import (
	"context"

	"fruitapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFruitRepository struct {
	mock.Mock
}

func (m *MockFruitRepository) Create(ctx context.Context, fruit *model.Fruit) (*model.Fruit, error) {
	args := m.Called(ctx, fruit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fruit), args.Error(1)
}

func (m *MockFruitRepository) List(ctx context.Context) ([]model.Fruit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fruit), args.Error(1)
}
