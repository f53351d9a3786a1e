package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/K3nguruh/validation/pkg/validator"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"user+tag@sub.example.org",
	}
	for _, v := range valid {
		t.Run("accepts "+v, func(t *testing.T) {
			assert.True(t, validator.Email(v))
		})
	}

	invalid := []string{
		"",
		"plainaddress",
		"user@",
		"@example.com",
		"user name@example.com",
		" user@example.com",
		"user@example.com ",
	}
	for _, v := range invalid {
		t.Run("rejects "+v, func(t *testing.T) {
			assert.False(t, validator.Email(v))
		})
	}

	t.Run("rejects nil", func(t *testing.T) {
		assert.False(t, validator.Email(nil))
	})
}

func TestURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path?q=1#top",
		"ftp://files.example.com/archive.zip",
		"mailto:user@example.com",
	}
	for _, v := range valid {
		t.Run("accepts "+v, func(t *testing.T) {
			assert.True(t, validator.URL(v))
		})
	}

	invalid := []string{
		"",
		"example.com",
		"/relative/path",
		"http://",
		" https://example.com",
	}
	for _, v := range invalid {
		t.Run("rejects "+v, func(t *testing.T) {
			assert.False(t, validator.URL(v))
		})
	}
}
