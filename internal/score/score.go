// Package score turns the collected verification signals into a
// deterministic confidence value in [0,100].
package score

// Additive weights in percent points. Deliverability (the SMTP probe)
// dominates; domain reputation only corroborates.
const (
	WeightFormat        = 25 // address parses
	WeightMX            = 25 // MX record found
	WeightSMTP          = 30 // RCPT accepted, or public-provider override
	WeightKnownCategory = 10 // domain in the public or corporate set
	WeightDMARC         = 10 // DMARC policy published

	// DisposableConfidence is the policy floor applied to disposable
	// domains regardless of other signals.
	DisposableConfidence = 10
)

// Signals are the five independent booleans feeding the confidence score.
type Signals struct {
	FormatValid   bool
	MXFound       bool
	SMTPAccepted  bool
	KnownCategory bool
	DMARCPresent  bool
}

// Confidence sums the weights of the present signals and clamps the
// result to [0,100]. Pure and total: no error path, no randomness.
func Confidence(s Signals) int {
	total := 0
	if s.FormatValid {
		total += WeightFormat
	}
	if s.MXFound {
		total += WeightMX
	}
	if s.SMTPAccepted {
		total += WeightSMTP
	}
	if s.KnownCategory {
		total += WeightKnownCategory
	}
	if s.DMARCPresent {
		total += WeightDMARC
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return total
}
