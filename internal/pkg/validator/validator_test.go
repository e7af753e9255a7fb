package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidEmail("jo@example.co.uk"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()
	date, ok := IsValidDate("2025-04-21")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidDate("21/04/2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "staff_id", Message: "is required"},
	}
	assert.Contains(t, errs.Error(), "month: must be between 1 and 12")
	assert.Equal(t, "is required", errs.ToMap()["staff_id"])
}
