package emailvalidator

import "time"

// DNSOptions configures MX and DMARC resolution.
type DNSOptions struct {
	// Timeout is the maximum time for a single DNS lookup. Default: 5s
	Timeout time.Duration
	// CacheTTL is how long lookup results are reused. Default: 5m
	CacheTTL time.Duration
}

func defaultDNSOptions() DNSOptions {
	return DNSOptions{
		Timeout:  5 * time.Second,
		CacheTTL: 5 * time.Minute,
	}
}

// SMTPOptions configures the mailbox probe.
type SMTPOptions struct {
	// HeloHost is the placeholder client name sent in the HELO command.
	// Default: "verifier.local"
	HeloHost string
	// MailFrom is the placeholder sender sent in MAIL FROM.
	// Default: "verify@verifier.local"
	MailFrom string
	// ConnectTimeout is the maximum time for the TCP connection. Default: 5s
	ConnectTimeout time.Duration
	// CommandTimeout bounds the whole HELO/MAIL FROM/RCPT TO exchange. Default: 10s
	CommandTimeout time.Duration
	// Port is the SMTP port. Default: 25
	Port string
	// MaxConnsPerHost is the max pooled connections per MX host. Default: 3
	MaxConnsPerHost int
	// ProbePublicProviders runs the live probe even against public
	// providers instead of the bypass. Default: false (bypass always).
	ProbePublicProviders bool
}

func defaultSMTPOptions() SMTPOptions {
	return SMTPOptions{
		HeloHost:        "verifier.local",
		MailFrom:        "verify@verifier.local",
		ConnectTimeout:  5 * time.Second,
		CommandTimeout:  10 * time.Second,
		Port:            "25",
		MaxConnsPerHost: 3,
	}
}

// DomainOptions configures classification extras.
type DomainOptions struct {
	// SuggestTypos populates the verdict's didYouMean field with the
	// closest public-provider domain when the input domain looks like a
	// typo. Default: false (didYouMean stays empty). Suggestions never
	// affect status or confidence.
	SuggestTypos bool
	// TypoThreshold is the edit-distance threshold for suggestions. Default: 2
	TypoThreshold int
}

func defaultDomainOptions() DomainOptions {
	return DomainOptions{
		SuggestTypos:  false,
		TypoThreshold: 2,
	}
}

// BatchOptions configures VerifyBatch.
type BatchOptions struct {
	// MaxSize is the hard cap on batch length. Default: 100
	MaxSize int
	// Workers is the number of concurrent verifications. Default: 16
	Workers int
}

func defaultBatchOptions() BatchOptions {
	return BatchOptions{
		MaxSize: 100,
		Workers: 16,
	}
}
