package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidatorIsValid(t *testing.T) {
	v := New()
	assert.True(t, v.IsValid())
}

func TestCheckNotBlank(t *testing.T) {
	v := New()
	v.CheckNotBlank("  ", "title", "must be provided")

	assert.False(t, v.IsValid())
	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestCheckMaxLengthCountsRunes(t *testing.T) {
	v := New()
	v.CheckMaxLength(strings.Repeat("é", 200), 200, "title", "too long")
	assert.True(t, v.IsValid())

	v.CheckMaxLength(strings.Repeat("é", 201), 200, "title", "too long")
	assert.False(t, v.IsValid())
}

func TestCheckEmail(t *testing.T) {
	v := New()
	v.CheckEmail("jake@example.com", "must be a valid email address")
	assert.True(t, v.IsValid())

	v.CheckEmail("not-an-email", "must be a valid email address")
	assert.Equal(t, "must be a valid email address", v.Errors["email"])
}

func TestFirstErrorPerKeyWins(t *testing.T) {
	v := New()
	v.AddError("title", "first")
	v.AddError("title", "second")

	assert.Equal(t, "first", v.Errors["title"])
}
