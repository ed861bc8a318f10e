package check_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neptun2000/email-validator/check"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		wantOK bool
	}{
		{"valid simple", "user@example.com", true},
		{"valid with plus", "user+tag@example.com", true},
		{"valid with dots", "first.last@example.com", true},
		{"valid subdomain", "user@mail.example.co.uk", true},
		{"valid IDN", "user@münchen.de", true},
		{"valid punycode", "user@xn--mnchen-3ya.de", true},
		{"empty", "", false},
		{"no at sign", "not-an-email", false},
		{"no domain", "user@", false},
		{"no local", "@example.com", false},
		{"no dot in domain", "user@localhost", false},
		{"dot at domain end", "user@example.", false},
		{"dot at domain start", "user@.com", false},
		{"space in local", "us er@example.com", false},
		{"too long total", strings.Repeat("a", 250) + "@example.com", false},
		{"too long local", strings.Repeat("a", 65) + "@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, ferr := check.Normalize(tt.email)
			if tt.wantOK {
				assert.Nil(t, ferr)
				assert.True(t, email.Valid)
			} else {
				assert.NotNil(t, ferr)
				assert.NotEmpty(t, ferr.Error())
			}
		})
	}
}

func TestNormalize_DomainLowerCased(t *testing.T) {
	email, ferr := check.Normalize("John.Doe@EXAMPLE.Com")
	assert.Nil(t, ferr)
	assert.Equal(t, "example.com", email.Domain)
	assert.Equal(t, "John.Doe", email.Local, "local part case is preserved")
}
