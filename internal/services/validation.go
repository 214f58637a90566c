package services

import (
	"errors"
	"strings"

	"farm_manager/internal/models"

	"github.com/shopspring/decimal"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return models.NewValidationError(field, "is required")
	}
	return nil
}

func requirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return models.NewValidationError(field, "must be greater than 0")
	}
	return nil
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return models.NewValidationError(field, "must not be negative")
	}
	return nil
}

func requireID(field string, id uint) error {
	if id == 0 {
		return models.NewValidationError(field, "is required")
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// mustExist turns a missing reference into a validation error on field.
func mustExist(field string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return models.NewValidationError(field, "does not exist")
	}
	return err
}
