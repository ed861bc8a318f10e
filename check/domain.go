package check

import (
	"sort"
	"strings"

	"github.com/neptun2000/email-validator/internal/domainset"
	"github.com/neptun2000/email-validator/internal/levenshtein"
	"github.com/neptun2000/email-validator/types"
)

// corporateSuffixes are TLDs whose domains are institutional by
// definition, regardless of the corporate reference set.
var corporateSuffixes = []string{".edu", ".gov"}

// Sets are the immutable reference sets the classifier matches against.
// Construct them once at process start; never mutate them afterwards.
type Sets struct {
	Public     map[string]struct{}
	Disposable map[string]struct{}
	Corporate  map[string]struct{}
}

// DefaultSets returns the embedded reference lists.
func DefaultSets() Sets {
	return Sets{
		Public:     domainset.PublicProviders(),
		Disposable: domainset.Disposable(),
		Corporate:  domainset.Corporate(),
	}
}

// Classifier categorizes a domain from static reference data. Pure
// lookup, no network I/O; the only "failure mode" is the CategoryOther
// default.
type Classifier struct {
	sets Sets
}

// NewClassifier creates a classifier over the given reference sets.
// Inject fixture sets in tests; use DefaultSets for production.
func NewClassifier(sets Sets) *Classifier {
	return &Classifier{sets: sets}
}

// Classify matches the domain against the reference sets in fixed
// priority order: disposable first (a disposable domain must never be
// reported as deliverable even if it also appears in another set), then
// public provider, then corporate set or suffix rule, else Other.
func (c *Classifier) Classify(domain string) types.DomainCategory {
	domain = strings.ToLower(domain)

	if _, ok := c.sets.Disposable[domain]; ok {
		return types.CategoryDisposable
	}
	if _, ok := c.sets.Public[domain]; ok {
		return types.CategoryPublicProvider
	}
	if _, ok := c.sets.Corporate[domain]; ok {
		return types.CategoryCorporate
	}
	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return types.CategoryCorporate
		}
	}
	return types.CategoryOther
}

// Suggest returns the public-provider domain closest to the given
// domain within the edit-distance threshold, or "" when the domain is
// an exact member of any set or no provider is close enough. Ties are
// broken lexicographically so the result is deterministic.
func (c *Classifier) Suggest(domain string, threshold int) string {
	domain = strings.ToLower(domain)
	if c.Classify(domain) != types.CategoryOther {
		return ""
	}

	providers := make([]string, 0, len(c.sets.Public))
	for p := range c.sets.Public {
		providers = append(providers, p)
	}
	sort.Strings(providers)

	best := ""
	bestDist := threshold + 1
	for _, p := range providers {
		if !levenshtein.Within(domain, p, threshold) {
			continue
		}
		if d := levenshtein.Distance(domain, p); d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}
