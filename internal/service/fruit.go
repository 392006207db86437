package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"fruitapi/internal/model"
	"fruitapi/internal/repository"
)

const (
	opListFruits  = "list_fruits"
	opCreateFruit = "create_fruit"
)

// ErrInvalidInput is returned by Create when fruit_name or fruit_count is missing.
var ErrInvalidInput = errors.New("fruit_name and fruit_count are required")

// CreateFruitInput carries a candidate fruit.
// Count is a pointer so that an absent value can be told apart from zero.
type CreateFruitInput struct {
	Name  string `json:"fruit_name" validate:"required"`
	Count *int   `json:"fruit_count" validate:"required"`
}

// FruitService defines the use cases for the fruit inventory.
type FruitService interface {
	// List returns every fruit, newest first. It never returns a nil slice on success.
	List(ctx context.Context) ([]model.Fruit, error)

	// Create validates the input and stores one fruit.
	Create(ctx context.Context, in CreateFruitInput) (*model.Fruit, error)
}

type fruitService struct {
	repo     repository.FruitRepository
	validate *validator.Validate
	log      zerolog.Logger
}

// NewFruitService constructs a new FruitService.
func NewFruitService(repo repository.FruitRepository, log zerolog.Logger) FruitService {
	return &fruitService{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

func (s *fruitService) List(ctx context.Context) ([]model.Fruit, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Str("operation", opListFruits).Str("status", "error").Err(err).Msg("error fetching fruits")
		return nil, err
	}
	if items == nil {
		items = []model.Fruit{}
	}
	s.log.Info().Str("operation", opListFruits).Str("status", "success").Int("count", len(items)).Send()
	return items, nil
}

func (s *fruitService) Create(ctx context.Context, in CreateFruitInput) (*model.Fruit, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		s.log.Warn().Str("operation", opCreateFruit).Str("status", "invalid").Err(err).Send()
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := s.repo.Create(ctx, &model.Fruit{Name: in.Name, Count: *in.Count})
	if err != nil {
		s.log.Error().Str("operation", opCreateFruit).Str("status", "error").Err(err).Msg("error adding fruit")
		return nil, err
	}
	s.log.Info().Str("operation", opCreateFruit).Str("status", "success").Int64("id", stored.ID).Send()
	return stored, nil
}
