// Package domainset holds the static domain reference lists used by the
// domain classifier: public/free mail providers, disposable mail services
// and known corporate domains. The lists are embedded at build time and
// parsed once into immutable sets.
package domainset

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed public.txt
var rawPublic string

//go:embed disposable.txt
var rawDisposable string

//go:embed corporate.txt
var rawCorporate string

var (
	once       sync.Once
	public     map[string]struct{}
	disposable map[string]struct{}
	corporate  map[string]struct{}
)

func load() {
	once.Do(func() {
		public = parseList(rawPublic)
		disposable = parseList(rawDisposable)
		corporate = parseList(rawCorporate)
	})
}

// parseList turns one domain-per-line text into a set. Blank lines and
// lines starting with # are ignored.
func parseList(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	return set
}

// PublicProviders returns the embedded set of consumer webmail domains.
// The returned map must not be mutated.
func PublicProviders() map[string]struct{} {
	load()
	return public
}

// Disposable returns the embedded set of throwaway mail domains.
// The returned map must not be mutated.
func Disposable() map[string]struct{} {
	load()
	return disposable
}

// Corporate returns the embedded set of known corporate domains.
// The returned map must not be mutated.
func Corporate() map[string]struct{} {
	load()
	return corporate
}
