package emailvalidator

import (
	"context"
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"

	"github.com/neptun2000/email-validator/check"
	"github.com/neptun2000/email-validator/internal/dnscache"
	"github.com/neptun2000/email-validator/internal/smtppool"
	"github.com/neptun2000/email-validator/types"
)

// Verifier runs the full verification pipeline: syntax normalization,
// domain classification, MX/DMARC resolution, the SMTP mailbox probe,
// confidence scoring and verdict assembly. Construct with New, tune
// with the With* methods before first use, and call Close when done to
// release pooled SMTP connections.
//
// A Verifier is safe for concurrent use once verification has started.
type Verifier struct {
	dns    DNSOptions
	smtp   SMTPOptions
	domain DomainOptions
	batch  BatchOptions
	sets   check.Sets
	log    zerolog.Logger

	buildOnce  sync.Once
	classifier *check.Classifier
	resolver   *check.Resolver
	prober     *check.Prober
	pool       *smtppool.Pool
}

// New creates a Verifier with default options: full pipeline, public
// provider bypass on, no typo suggestions, batch cap 100.
func New() *Verifier {
	return &Verifier{
		dns:    defaultDNSOptions(),
		smtp:   defaultSMTPOptions(),
		domain: defaultDomainOptions(),
		batch:  defaultBatchOptions(),
		sets:   check.DefaultSets(),
		log:    zerolog.Nop(),
	}
}

// WithDNS overrides the DNS options. Zero fields keep their defaults.
func (v *Verifier) WithDNS(opts DNSOptions) *Verifier {
	def := defaultDNSOptions()
	if opts.Timeout == 0 {
		opts.Timeout = def.Timeout
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = def.CacheTTL
	}
	v.dns = opts
	return v
}

// WithSMTP overrides the probe options. Zero fields keep their defaults.
func (v *Verifier) WithSMTP(opts SMTPOptions) *Verifier {
	def := defaultSMTPOptions()
	if opts.HeloHost == "" {
		opts.HeloHost = def.HeloHost
	}
	if opts.MailFrom == "" {
		opts.MailFrom = def.MailFrom
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = def.ConnectTimeout
	}
	if opts.CommandTimeout == 0 {
		opts.CommandTimeout = def.CommandTimeout
	}
	if opts.Port == "" {
		opts.Port = def.Port
	}
	if opts.MaxConnsPerHost == 0 {
		opts.MaxConnsPerHost = def.MaxConnsPerHost
	}
	v.smtp = opts
	return v
}

// WithDomain overrides the classification options.
func (v *Verifier) WithDomain(opts DomainOptions) *Verifier {
	if opts.TypoThreshold == 0 {
		opts.TypoThreshold = defaultDomainOptions().TypoThreshold
	}
	v.domain = opts
	return v
}

// WithBatch overrides the batch options. Zero fields keep their defaults.
func (v *Verifier) WithBatch(opts BatchOptions) *Verifier {
	def := defaultBatchOptions()
	if opts.MaxSize == 0 {
		opts.MaxSize = def.MaxSize
	}
	if opts.Workers == 0 {
		opts.Workers = def.Workers
	}
	v.batch = opts
	return v
}

// WithSets replaces the domain reference sets (fixture sets in tests).
func (v *Verifier) WithSets(sets check.Sets) *Verifier {
	v.sets = sets
	return v
}

// WithLogger attaches a logger for probe/resolution observability.
// Recovered failures are logged here, never surfaced to the caller.
func (v *Verifier) WithLogger(log zerolog.Logger) *Verifier {
	v.log = log
	return v
}

// build wires the pipeline components from the configured options.
// Runs once, on first verification. Components already set (stubbed in
// tests) are kept.
func (v *Verifier) build() {
	v.buildOnce.Do(func() {
		if v.classifier == nil {
			v.classifier = check.NewClassifier(v.sets)
		}
		if v.resolver == nil {
			cache := dnscache.New(v.dns.Timeout, v.dns.CacheTTL)
			v.resolver = check.NewResolver(cache, v.log)
		}
		if v.prober == nil {
			v.pool = smtppool.New(smtppool.Config{
				HeloHost:        v.smtp.HeloHost,
				MailFrom:        v.smtp.MailFrom,
				ConnectTimeout:  v.smtp.ConnectTimeout,
				CommandTimeout:  v.smtp.CommandTimeout,
				Port:            v.smtp.Port,
				MaxConnsPerHost: v.smtp.MaxConnsPerHost,
			})
			v.prober = check.NewProber(check.ProbeConfig{
				ProbePublicProviders: v.smtp.ProbePublicProviders,
			}, v.pool, v.log)
		}
	})
}

// Close releases pooled SMTP connections. Safe to call multiple times;
// no-op if no verification ever ran.
func (v *Verifier) Close() error {
	if v.pool != nil {
		return v.pool.Close()
	}
	return nil
}

// Verify runs the full pipeline on one address. It always returns a
// verdict: signal failures become negative signals and unanticipated
// faults become an error/system_error verdict.
func (v *Verifier) Verify(ctx context.Context, email string) Verdict {
	v.build()
	return v.verifySafe(ctx, email)
}

// VerifyBatch verifies up to MaxSize addresses concurrently and returns
// one verdict per input address, in input order. The only error is
// ErrBatchTooLarge, raised before any network work starts; a single
// address's failure never aborts or delays its siblings.
func (v *Verifier) VerifyBatch(ctx context.Context, emails []string) ([]Verdict, error) {
	if len(emails) > v.batch.MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(emails), v.batch.MaxSize)
	}
	v.build()

	verdicts := make([]Verdict, len(emails))
	wp := workerpool.New(v.batch.Workers)
	for i, email := range emails {
		i, email := i, email
		wp.Submit(func() {
			verdicts[i] = v.verifySafe(ctx, email)
		})
	}
	wp.StopWait()

	return verdicts, nil
}

// verifySafe isolates one address's pipeline: a panic anywhere in the
// signal collection is converted into a system_error verdict.
func (v *Verifier) verifySafe(ctx context.Context, email string) (verdict Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v.log.Error().Str("email", email).Interface("panic", r).
				Msg("verification panicked")
			verdict = systemVerdict(email, fmt.Sprint(r))
		}
	}()
	return v.verifyOne(ctx, email)
}

// verifyOne runs the sequential signal pipeline for one address.
func (v *Verifier) verifyOne(ctx context.Context, raw string) Verdict {
	email, ferr := check.Normalize(raw)
	if ferr != nil {
		return formatVerdict(raw, ferr)
	}

	category := v.classifier.Classify(email.Domain)
	if category == types.CategoryDisposable {
		return disposableVerdict(email)
	}

	var suggestion string
	if v.domain.SuggestTypos {
		suggestion = v.classifier.Suggest(email.DomainUnicode, v.domain.TypoThreshold)
	}

	if err := ctx.Err(); err != nil {
		return systemVerdict(raw, err.Error())
	}

	mx := v.resolver.ResolveMX(email.Domain)
	if !mx.Found {
		return noMXVerdict(email, category, suggestion)
	}

	dmarcRes := v.resolver.ResolveDMARC(email.Domain)

	if err := ctx.Err(); err != nil {
		return systemVerdict(raw, err.Error())
	}

	probe := v.prober.Probe(email.Local+"@"+email.Domain, mx.Host, category)

	return finalVerdict(email, category, mx, dmarcRes, probe, suggestion)
}
