package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/lifebook/lifebook/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(assert.AnError)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email.Validate("user@example.com"))
	assert.Error(t, Email.Validate("not-an-email"))
	assert.Error(t, Email.Validate("user@"))
}

func TestUsername(t *testing.T) {
	assert.NoError(t, Username.Validate("jane.doe_42"))
	assert.Error(t, Username.Validate("jane doe"))
	assert.Error(t, Username.Validate("jane@doe"))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("x"))
	assert.Error(t, NotBlank.Validate("   "))
}

func TestDateOnly(t *testing.T) {
	assert.NoError(t, DateOnly.Validate("2026-08-29"))
	assert.Error(t, DateOnly.Validate("29/08/2026"))
	assert.Error(t, DateOnly.Validate("2026-13-01"))
}

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{MinLength: 8, RequireUpper: true, RequireLower: true, RequireNumber: true}

	assert.NoError(t, rule.Validate("Sup3rSecret"))
	assert.Error(t, rule.Validate("short"))
	assert.Error(t, rule.Validate("alllowercase1"))
	assert.Error(t, rule.Validate("ALLUPPERCASE1"))
	assert.Error(t, rule.Validate("NoNumbersHere"))
	assert.Error(t, rule.Validate(42))
}
