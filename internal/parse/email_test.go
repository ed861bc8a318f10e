package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neptun2000/email-validator/internal/parse"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantValid  bool
		wantLocal  string
		wantDomain string
	}{
		{"simple", "user@example.com", true, "user", "example.com"},
		{"case preserved in local", "John.Doe@Example.COM", true, "John.Doe", "example.com"},
		{"plus tag", "user+tag@example.com", true, "user+tag", "example.com"},
		{"surrounding spaces trimmed", "  user@example.com  ", true, "user", "example.com"},
		{"last at splits", "a@b@example.com", false, "", ""},
		{"no at", "userexample.com", false, "", ""},
		{"no local", "@example.com", false, "", ""},
		{"no domain", "user@", false, "", ""},
		{"empty", "", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := parse.NewEmail(tt.raw)
			assert.Equal(t, tt.wantValid, e.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantLocal, e.Local)
				assert.Equal(t, tt.wantDomain, e.Domain)
			}
		})
	}
}

func TestNewEmail_IDN(t *testing.T) {
	e := parse.NewEmail("user@münchen.de")
	assert.True(t, e.Valid)
	assert.Equal(t, "xn--mnchen-3ya.de", e.Domain)
	assert.Equal(t, "münchen.de", e.DomainUnicode)

	e = parse.NewEmail("user@xn--mnchen-3ya.de")
	assert.True(t, e.Valid)
	assert.Equal(t, "xn--mnchen-3ya.de", e.Domain)
	assert.Equal(t, "münchen.de", e.DomainUnicode)
}

func TestNewEmail_RawAlwaysPopulated(t *testing.T) {
	e := parse.NewEmail("not-an-email")
	assert.False(t, e.Valid)
	assert.Equal(t, "not-an-email", e.Raw)
}
