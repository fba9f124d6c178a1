package repository

import (
	"errors"
	"testing"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWrapErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"overlap constraint", &pq.Error{Code: codeExclusionViolation}, domain.ErrConflict},
		{"missing venue", &pq.Error{Code: codeForeignKeyViolation}, domain.ErrVenueNotFound},
		{"check constraint", &pq.Error{Code: codeCheckViolation, Message: "events_window_check"}, domain.ErrValidation},
		{"duplicate id", &pq.Error{Code: codeUniqueViolation}, domain.ErrValidation},
		{"numeric overflow", &pq.Error{Code: codeNumericOutOfRange, Message: "numeric field overflow"}, domain.ErrValidation},
		{"malformed uuid", &pq.Error{Code: codeInvalidText}, domain.ErrValidation},
		{"other pg error", &pq.Error{Code: "40001"}, domain.ErrStorage},
		{"driver error", errors.New("connection reset"), domain.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapErr("op", tt.err)
			assert.ErrorIs(t, got, tt.want)
			if tt.want == domain.ErrValidation {
				assert.NotErrorIs(t, got, domain.ErrStorage)
			}
		})
	}
}

func TestWrapErr_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")

	got := wrapErr("list events", cause)

	assert.ErrorIs(t, got, cause)
	assert.Contains(t, got.Error(), "list events")
	assert.False(t, domain.IsBusinessRuleError(got))
}
