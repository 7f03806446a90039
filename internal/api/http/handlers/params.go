package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/internhub/internship-service/internal/api/dto"
	apperrors "github.com/internhub/internship-service/pkg/util/errorutil"
)

func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name + " must be a positive integer")
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := dto.Validate(out); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}
