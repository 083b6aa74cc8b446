package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crownbraids/salon-scheduler/internal/models"
)

func TestPasswordIsStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"longenough1", true},
		{"1234567abc", true},
		{"short1a", false},     // under 10 chars
		{"abcdefghij", false},  // no digit
		{"1234567890", false},  // no letter
		{"", false},
		{"pass word 1x", true}, // spaces allowed, length counts
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, PasswordIsStrong(tc.password), "password=%q", tc.password)
	}
}

func fieldNames(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateIdentity(t *testing.T) {
	t.Run("client without a password is fine", func(t *testing.T) {
		assert.Empty(t, ValidateIdentity(models.RoleClient, "", "", false))
	})

	t.Run("client with a weak password is rejected", func(t *testing.T) {
		errs := ValidateIdentity(models.RoleClient, "", "weak1", true)
		assert.Contains(t, fieldNames(errs), "password")
	})

	t.Run("employee needs password and location", func(t *testing.T) {
		errs := ValidateIdentity(models.RoleEmployee, "", "", false)
		names := fieldNames(errs)
		assert.Contains(t, names, "password")
		assert.Contains(t, names, "location")
	})

	t.Run("employee with strong password and valid location passes", func(t *testing.T) {
		assert.Empty(t, ValidateIdentity(models.RoleEmployee, "A", "longenough1", true))
		assert.Empty(t, ValidateIdentity(models.RoleAdmin, "B", "longenough1", true))
	})

	t.Run("staff location must be a salon site", func(t *testing.T) {
		errs := ValidateIdentity(models.RoleEmployee, "C", "longenough1", true)
		assert.Equal(t, []string{"location"}, fieldNames(errs))
	})

	t.Run("unknown role short-circuits", func(t *testing.T) {
		errs := ValidateIdentity("owner", "A", "longenough1", true)
		require.Len(t, errs, 1)
		assert.Equal(t, "role", errs[0].Field)
	})
}

func TestEmailLooksValid(t *testing.T) {
	assert.True(t, EmailLooksValid("ada@example.com"))
	assert.True(t, EmailLooksValid("a.b+tag@sub.example.co"))

	assert.False(t, EmailLooksValid("no-at-sign"))
	assert.False(t, EmailLooksValid("@example.com"))
	assert.False(t, EmailLooksValid("ada@"))
	assert.False(t, EmailLooksValid("ada@nodot"))
	assert.False(t, EmailLooksValid("ada @example.com"))
}
