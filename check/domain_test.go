package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neptun2000/email-validator/check"
	"github.com/neptun2000/email-validator/types"
)

func fixtureSets() check.Sets {
	return check.Sets{
		Public: map[string]struct{}{
			"gmail.com": {}, "yahoo.com": {}, "outlook.com": {},
		},
		Disposable: map[string]struct{}{
			"mailinator.com": {}, "yopmail.com": {},
		},
		Corporate: map[string]struct{}{
			"microsoft.com": {}, "ibm.com": {},
		},
	}
}

func TestClassify(t *testing.T) {
	c := check.NewClassifier(fixtureSets())

	tests := []struct {
		domain string
		want   types.DomainCategory
	}{
		{"gmail.com", types.CategoryPublicProvider},
		{"GMAIL.COM", types.CategoryPublicProvider},
		{"mailinator.com", types.CategoryDisposable},
		{"microsoft.com", types.CategoryCorporate},
		{"stanford.edu", types.CategoryCorporate},
		{"nasa.gov", types.CategoryCorporate},
		{"some-startup.io", types.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.domain))
		})
	}
}

func TestClassify_DisposableWins(t *testing.T) {
	// A domain present in several sets must classify as disposable.
	sets := fixtureSets()
	sets.Public["mailinator.com"] = struct{}{}
	sets.Corporate["mailinator.com"] = struct{}{}

	c := check.NewClassifier(sets)
	assert.Equal(t, types.CategoryDisposable, c.Classify("mailinator.com"))
}

func TestClassify_DefaultSets(t *testing.T) {
	c := check.NewClassifier(check.DefaultSets())
	assert.Equal(t, types.CategoryPublicProvider, c.Classify("gmail.com"))
	assert.Equal(t, types.CategoryDisposable, c.Classify("temp-mail.org"))
	assert.Equal(t, types.CategoryCorporate, c.Classify("salesforce.com"))
	assert.Equal(t, types.CategoryOther, c.Classify("example.org"))
}

func TestSuggest(t *testing.T) {
	c := check.NewClassifier(fixtureSets())

	assert.Equal(t, "gmail.com", c.Suggest("gmial.com", 2))
	assert.Equal(t, "gmail.com", c.Suggest("gmal.com", 2))
	assert.Equal(t, "", c.Suggest("gmail.com", 2), "exact member yields no suggestion")
	assert.Equal(t, "", c.Suggest("example.org", 2), "nothing close enough")
	assert.Equal(t, "", c.Suggest("yopmail.com", 2), "disposable is not a typo")
}

func TestCategoryTokens(t *testing.T) {
	assert.Equal(t, "public_email_provider", types.CategoryPublicProvider.Token())
	assert.Equal(t, "corporate", types.CategoryCorporate.Token())
	assert.Equal(t, "disposable", types.CategoryDisposable.Token())
	assert.Equal(t, "other", types.CategoryOther.Token())
}
