package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrIncorrectCredentials = errors.New("Incorrect email or password")
	ErrEmailExists          = errors.New("Email already exists")
)

// notFound reports a missing entity by name, e.g. "Grant not found".
func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

type conflictError struct {
	what string
}

func (e conflictError) Error() string { return e.what + " already exists" }

func (e conflictError) Is(target error) bool { return target == ErrConflict }

// conflict reports a unique-field collision, e.g. "Grant name already exists".
func conflict(what string) error {
	return conflictError{what: what}
}

// translate maps driver-level errors onto the service sentinels.
func translate(err error, entity, uniqueField string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict(uniqueField)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s references a missing record: %w", entity, ErrNotFound)
	default:
		return err
	}
}
