package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane@school.edu"))
	assert.True(t, IsValidEmail("a.b+c@example.co.uk"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("jane@"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone(""), "phone is optional")
	assert.True(t, IsValidPhone("+12025550123"))
	assert.True(t, IsValidPhone("2025550123"))
	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone("+1-202-555-0123"))
}

func TestIsValidGradeLevel(t *testing.T) {
	for _, level := range []int{1, 6, 12} {
		assert.True(t, IsValidGradeLevel(level), "level %d", level)
	}
	for _, level := range []int{0, -3, 13} {
		assert.False(t, IsValidGradeLevel(level), "level %d", level)
	}
}

func TestIsValidGrade(t *testing.T) {
	assert.True(t, IsValidGrade(0))
	assert.True(t, IsValidGrade(87.5))
	assert.True(t, IsValidGrade(100))
	assert.False(t, IsValidGrade(-0.1))
	assert.False(t, IsValidGrade(100.1))
}
