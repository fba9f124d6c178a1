package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	codeNumericOutOfRange   = "22003"
	codeInvalidText         = "22P02"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeExclusionViolation  = "23P01"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// wrapErr maps constraint violations to domain errors and marks everything
// else as a storage failure.
func wrapErr(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeExclusionViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrVenueNotFound)
		case codeUniqueViolation, codeCheckViolation, codeNumericOutOfRange, codeInvalidText:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
