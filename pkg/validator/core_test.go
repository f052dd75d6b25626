package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "amount", Message: "must be positive"})
		assert.Equal(t, "validation failed: amount: must be positive", errs.Error())
	})

	t.Run("joins multiple errors in order", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "amount", Message: "must be positive"})
		errs.Add(validator.ValidationError{Field: "digits", Message: "must be at least 0"})
		assert.Equal(t,
			"validation failed: amount: must be positive; digits: must be at least 0",
			errs.Error(),
		)
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())
	assert.False(t, errs.Has("amount"))
	assert.Nil(t, errs.Get("amount"))
	assert.Nil(t, errs.Fields())

	errs.Add(validator.ValidationError{Field: "amount", Message: "must be positive"})
	errs.Add(validator.ValidationError{Field: "rate", Message: "cannot be negative"})
	errs.Add(validator.ValidationError{Field: "amount", Message: "must have at most 2 decimal places"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("amount"))
	assert.False(t, errs.Has("total"))
	assert.Equal(t, []string{"must be positive", "must have at most 2 decimal places"}, errs.Get("amount"))
	assert.Equal(t, []string{"amount", "rate"}, errs.Fields())
}

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "bad"},
		}
	}

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply())
	})

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"a", "b"}, errs.Fields())
	})

	t.Run("is ErrValidationFailed", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(fail("a"))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), validator.ErrValidationFailed)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	orig := validator.ValidationErrors{{Field: "x", Message: "bad"}}
	wrapped := fmt.Errorf("check: %w", orig)
	assert.Equal(t, orig, validator.ExtractValidationErrors(wrapped))
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.True(t, validator.IsValidationError(validator.ValidationErrors{{Field: "x"}}))
}
