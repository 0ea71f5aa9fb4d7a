package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

func TestNewValidationError(t *testing.T) {
	err := domain.NewValidationError(domain.MsgNameRequired, domain.MsgBrandRequired)

	assert.Equal(t, domain.KindValidation, err.Kind)
	assert.Equal(t, "name is required, brand is required", err.Error())
	assert.Equal(t, []string{domain.MsgNameRequired, domain.MsgBrandRequired}, err.Details)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.Kind
	}{
		{name: "validation", err: domain.NewValidationError("x"), want: domain.KindValidation},
		{name: "invalid_id", err: domain.ErrInvalidID("abc"), want: domain.KindInvalidID},
		{name: "not_found", err: domain.ErrNotFound("65a1b2c3d4e5f60718293a4b"), want: domain.KindNotFound},
		{name: "wrapped_not_found", err: fmt.Errorf("lookup: %w", domain.ErrNotFound("x")), want: domain.KindNotFound},
		{name: "internal", err: domain.Internal(errors.New("boom"), "db down"), want: domain.KindInternal},
		{name: "plain_error_is_internal", err: errors.New("boom"), want: domain.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.KindOf(tt.err))
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	cause := errors.New("connection refused")
	err := domain.Internal(cause, "failed to load phones")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load phones: connection refused", err.Error())
	assert.False(t, domain.IsNotFound(nil))
	assert.True(t, domain.IsNotFound(domain.ErrNotFound("x")))
	assert.False(t, domain.IsValidation(cause))
}
