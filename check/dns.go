package check

import (
	"net"
	"sort"
	"strings"

	"github.com/emersion/go-msgauth/dmarc"
	"github.com/rs/zerolog"

	"github.com/neptun2000/email-validator/internal/dnscache"
)

// MXResult is the outcome of an MX lookup. A failed or empty lookup is
// a negative result, never an error: Found=false and an empty Host.
type MXResult struct {
	Found bool
	Host  string // lowest-preference host, lower-cased, root dot stripped
	Pref  uint16
}

// DMARCResult is the outcome of a DMARC policy lookup. Policy carries
// the parsed p= token (none/quarantine/reject) for reporting only; the
// scorer uses Present alone.
type DMARCResult struct {
	Present bool
	Policy  string
}

// Resolver answers the two DNS questions of the pipeline: which host
// receives mail for a domain, and does the domain publish a DMARC
// policy. Lookups go through a shared cache; every resolution failure
// (NXDOMAIN, timeout, no answer, malformed response) is treated
// uniformly as a negative signal and logged, never propagated.
type Resolver struct {
	log zerolog.Logger
	// injectable for testability
	lookupMX  func(domain string) ([]*net.MX, error)
	lookupTXT func(name string) ([]string, error)
}

// NewResolver creates a resolver backed by the given DNS cache.
func NewResolver(cache *dnscache.Cache, log zerolog.Logger) *Resolver {
	return &Resolver{
		log:       log,
		lookupMX:  cache.LookupMX,
		lookupTXT: cache.LookupTXT,
	}
}

// NewResolverWithLookups is a test-oriented constructor that overrides
// the lookup functions.
func NewResolverWithLookups(
	mx func(string) ([]*net.MX, error),
	txt func(string) ([]string, error),
	log zerolog.Logger,
) *Resolver {
	return &Resolver{log: log, lookupMX: mx, lookupTXT: txt}
}

// ResolveMX looks up the MX records for the domain and reports the one
// with the lowest preference value.
func (r *Resolver) ResolveMX(domain string) MXResult {
	records, err := r.lookupMX(domain)
	if err != nil {
		r.log.Debug().Str("domain", domain).Err(err).Msg("MX lookup failed")
		return MXResult{}
	}
	if len(records) == 0 {
		r.log.Debug().Str("domain", domain).Msg("no MX records")
		return MXResult{}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Pref < records[j].Pref
	})

	host := strings.ToLower(strings.TrimSuffix(records[0].Host, "."))
	if host == "" {
		return MXResult{}
	}
	return MXResult{Found: true, Host: host, Pref: records[0].Pref}
}

// ResolveDMARC queries the _dmarc.<domain> TXT record. The domain has a
// policy if any returned TXT string begins with v=DMARC1; the p= token
// is extracted when the record parses.
func (r *Resolver) ResolveDMARC(domain string) DMARCResult {
	txts, err := r.lookupTXT("_dmarc." + domain)
	if err != nil {
		r.log.Debug().Str("domain", domain).Err(err).Msg("DMARC lookup failed")
		return DMARCResult{}
	}

	for _, txt := range txts {
		if !strings.HasPrefix(txt, "v=DMARC1") {
			continue
		}
		result := DMARCResult{Present: true}
		if record, perr := dmarc.Parse(txt); perr == nil {
			result.Policy = string(record.Policy)
		} else {
			r.log.Debug().Str("domain", domain).Err(perr).Msg("DMARC record does not parse")
		}
		return result
	}
	return DMARCResult{}
}
