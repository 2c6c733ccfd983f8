package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)

// Error is a classified business-rule failure. Kind is one of the sentinel
// errors above so callers can match with errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return e.Kind == target }

func validationError(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }

func conflictError(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

func notFoundError(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

func unavailableError(msg string) error { return &Error{Kind: ErrUnavailable, Message: msg} }

// found turns gorm.ErrRecordNotFound into (false, nil).
func found(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// storeConstraint classifies constraint errors raised by the database after a
// pre-check passed, e.g. when two requests race. onForeignKey is the error
// returned for a foreign-key violation, which means NotFound on insert and
// Conflict on delete.
func storeConstraint(err error, onUnique string, onForeignKey error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflictError(onUnique)
	case errors.Is(err, gorm.ErrForeignKeyViolated) && onForeignKey != nil:
		return onForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return validationError("Value violates a data constraint")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return conflictError(onUnique)
		case pgForeignKeyViolation:
			if onForeignKey != nil {
				return onForeignKey
			}
		case pgCheckViolation:
			return validationError("Value violates constraint " + pgErr.ConstraintName)
		}
	}
	return err
}
