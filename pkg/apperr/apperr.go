// Package apperr holds the error kinds shared by every store and service.
// Repositories translate gorm errors at their boundary so callers only ever
// match against these sentinels.
package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrPersistence  = errors.New("persistence failure")
)

// NotFoundf wraps ErrNotFound with the entity that was missing.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalid)...)
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// FromGorm maps a gorm error onto the taxonomy. Record-not-found becomes
// ErrNotFound, unique/check violations become ErrConflict, anything else a
// persistence failure carrying the cause.
func FromGorm(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}
