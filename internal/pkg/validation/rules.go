package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[^@\s]+@[^@\s]+\.[^@\s]+$`

	// Phone pattern - optional leading +, 10 to 15 digits
	PhonePattern = `^\+?\d{10,15}$`

	// Password min length
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Grade level bounds for students
	GradeLevelMin = 1
	GradeLevelMax = 12
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidPhone reports whether the value is an acceptable phone number.
// An empty phone is valid since the field is optional.
func IsValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return CompiledPatterns.Phone.MatchString(phone)
}

// IsValidGradeLevel reports whether the student grade level is in range
func IsValidGradeLevel(level int) bool {
	return level >= GradeLevelMin && level <= GradeLevelMax
}

// IsValidGrade reports whether a course grade is in the 0..100 range
func IsValidGrade(grade float64) bool {
	return grade >= 0 && grade <= 100
}
