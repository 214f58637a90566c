package repository

import (
	"errors"
	"fmt"
	"strings"

	"farm_manager/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes the service reacts to.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgInsufficientPriv    = "42501"
	pgRaiseException      = "P0001"
)

// translateError maps driver errors onto the domain errors in models so the
// layers above never inspect driver types.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", models.ErrReferenced, pgErr.Detail)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", models.ErrDuplicate, pgErr.Detail)
		case pgInsufficientPriv:
			return models.ErrForbidden
		case pgRaiseException:
			return &models.RaisedError{Message: pgErr.Message}
		}
		return err
	}

	// SQLite reports constraint failures only through the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %s", models.ErrReferenced, msg)
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %s", models.ErrDuplicate, msg)
	}
	return err
}

// exists reports ErrNotFound when no row of model has the given id.
func exists(db *gorm.DB, model interface{}, id uint) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return translateError(err)
	}
	if count == 0 {
		return models.ErrNotFound
	}
	return nil
}

// checkAffected turns a no-op update or delete into ErrNotFound.
func checkAffected(result *gorm.DB) error {
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
