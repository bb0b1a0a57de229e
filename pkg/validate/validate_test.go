package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.org",
		"a@b.co",
	}
	for _, s := range valid {
		assert.True(t, Email(s), "email=%q", s)
	}

	invalid := []string{
		"",
		"not-an-email",
		"user@",
		"@example.com",
		"user@example",
		"user name@example.com",
	}
	for _, s := range invalid {
		assert.False(t, Email(s), "email=%q", s)
	}
}

func TestPhone(t *testing.T) {
	valid := []string{
		"+12025550123",
		"202-555-0123",
		"(202) 555-0123",
		"+44 20 7946 0958",
	}
	for _, s := range valid {
		assert.True(t, Phone(s), "phone=%q", s)
	}

	invalid := []string{
		"",
		"12345",             // слишком мало цифр
		"12345678901234567", // слишком много цифр
		"call me maybe",
		"+1-202-abc-0123",
	}
	for _, s := range invalid {
		assert.False(t, Phone(s), "phone=%q", s)
	}
}
