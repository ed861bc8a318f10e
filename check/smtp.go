package check

import (
	"github.com/rs/zerolog"

	"github.com/neptun2000/email-validator/internal/smtppool"
	"github.com/neptun2000/email-validator/types"
)

// ProbeResult is the outcome of a mailbox probe. Attempted=false means
// no network exchange happened and none was owed (no MX host).
// Accepted is true only when the RCPT response code was exactly 250,
// or when the public-provider override applied.
type ProbeResult struct {
	Attempted bool
	Accepted  bool
	Code      int // raw RCPT code; 0 when no exchange took place
}

// ProbeConfig is the prober policy configuration.
type ProbeConfig struct {
	// ProbePublicProviders disables the public-provider bypass and runs
	// the live probe even against consumer webmail MX hosts. Default
	// false: public providers routinely refuse to confirm mailbox
	// existence, so a live check would manufacture unreliable negatives.
	ProbePublicProviders bool
}

// Prober infers mailbox existence with a non-committing SMTP recipient
// check against the domain's top-priority MX host. Every connection,
// protocol or timeout failure is a negative signal, logged and never
// surfaced.
type Prober struct {
	cfg  ProbeConfig
	pool *smtppool.Pool
	log  zerolog.Logger
}

// NewProber creates a prober over the given connection pool.
func NewProber(cfg ProbeConfig, pool *smtppool.Pool, log zerolog.Logger) *Prober {
	return &Prober{cfg: cfg, pool: pool, log: log}
}

// Probe checks whether mxHost accepts mail for the address. With no MX
// host there is nothing to probe: Attempted=false. For public-provider
// domains the probe is skipped by policy and reported as accepted —
// a category-wide rule, not per-domain behavior.
func (p *Prober) Probe(address, mxHost string, category types.DomainCategory) ProbeResult {
	if mxHost == "" {
		return ProbeResult{}
	}

	if category == types.CategoryPublicProvider && !p.cfg.ProbePublicProviders {
		p.log.Debug().Str("email", address).Str("mx", mxHost).
			Msg("public provider, probe skipped by policy")
		return ProbeResult{Attempted: true, Accepted: true}
	}

	code, msg, err := p.pool.Probe(mxHost, address)
	if err != nil {
		p.log.Warn().Str("email", address).Str("mx", mxHost).Err(err).
			Msg("SMTP probe failed")
		return ProbeResult{Attempted: true}
	}

	if code != 250 {
		p.log.Debug().Str("email", address).Str("mx", mxHost).
			Int("code", code).Str("response", msg).
			Msg("RCPT not accepted")
	}

	return ProbeResult{
		Attempted: true,
		Accepted:  code == 250,
		Code:      code,
	}
}
