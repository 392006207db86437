package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fruitapi/internal/service"
)

const (
	msgFetchFailed    = "Failed to fetch fruits"
	msgAddFailed      = "Failed to add fruit"
	msgFieldsRequired = "fruit_name and fruit_count are required"
	msgInvalidBody    = "invalid request body"
)

// ListFruits godoc
// @Summary List fruits
// @Description Returns every fruit, newest first.
// @Tags fruits
// @Produce json
// @Success 200 {array} model.Fruit
// @Failure 500 {object} errorPayload
// @Router /fruits [get]
func ListFruits(svc service.FruitService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, msgFetchFailed)
		}
		return c.JSON(items)
	}
}

// CreateFruit godoc
// @Summary Add a fruit
// @Tags fruits
// @Accept json
// @Produce json
// @Param fruit body service.CreateFruitInput true "fruit to add"
// @Success 201 {object} model.Fruit
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /fruits [post]
func CreateFruit(svc service.FruitService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateFruitInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return writeError(c, fiber.StatusBadRequest, msgInvalidBody)
			}
		}

		fruit, err := svc.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return writeError(c, fiber.StatusBadRequest, msgFieldsRequired)
			}
			return writeError(c, fiber.StatusInternalServerError, msgAddFailed)
		}
		return c.Status(fiber.StatusCreated).JSON(fruit)
	}
}
