package emailvalidator

import (
	"strings"

	"github.com/neptun2000/email-validator/check"
	"github.com/neptun2000/email-validator/internal/names"
	"github.com/neptun2000/email-validator/internal/parse"
	"github.com/neptun2000/email-validator/internal/score"
	"github.com/neptun2000/email-validator/types"
)

// Verdict is the terminal, immutable record of one verification. Every
// field is populated on every verdict; data a skipped signal could not
// supply is represented by an explicit "Unknown" placeholder, never by
// an absent field.
type Verdict struct {
	Email      string       `json:"email"`
	Status     types.Status `json:"status"`
	SubStatus  string       `json:"subStatus"`
	Confidence int          `json:"confidence"`

	FreeEmail  string `json:"freeEmail"`
	DidYouMean string `json:"didYouMean"`
	Account    string `json:"account"`
	Domain     string `json:"domain"`

	// DomainAgeDays is structurally "Unknown": WHOIS lookup is not
	// implemented in this design.
	DomainAgeDays string `json:"domainAgeDays"`

	SMTPProvider string `json:"smtpProvider"`
	MXFound      string `json:"mxFound"`
	MXRecord     string `json:"mxRecord"`
	DMARCFound   string `json:"dmarcFound"`
	DMARCPolicy  string `json:"dmarcPolicy"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Message string `json:"message"`
	IsValid bool   `json:"isValid"`
}

// baseVerdict populates the fields every verdict shares, with all
// signal-derived fields at their Unknown placeholders.
func baseVerdict(email, account, domain string) Verdict {
	name := names.Extract(account)
	return Verdict{
		Email:         email,
		Account:       account,
		Domain:        domain,
		FreeEmail:     types.Unknown,
		DidYouMean:    "",
		DomainAgeDays: types.Unknown,
		SMTPProvider:  types.Unknown,
		MXFound:       types.No,
		MXRecord:      types.Unknown,
		DMARCFound:    types.Unknown,
		DMARCPolicy:   types.Unknown,
		FirstName:     name.First,
		LastName:      name.Last,
	}
}

// splitRaw best-effort splits an unparseable address for display fields.
func splitRaw(raw string) (account, domain string) {
	if at := strings.LastIndex(raw, "@"); at >= 0 {
		account = raw[:at]
		if at+1 < len(raw) {
			domain = raw[at+1:]
		}
	} else {
		account = raw
	}
	if domain == "" {
		domain = types.Unknown
	}
	return account, domain
}

// formatVerdict is terminal for addresses that do not parse.
func formatVerdict(raw string, ferr *check.FormatError) Verdict {
	account, domain := splitRaw(raw)
	v := baseVerdict(raw, account, domain)
	v.Status = types.StatusInvalid
	v.SubStatus = types.SubStatusInvalidFormat
	v.Confidence = 0
	v.Message = ferr.Error()
	return v
}

// systemVerdict converts an unanticipated fault into a verdict so that
// one bad address never aborts its batch siblings.
func systemVerdict(raw, fault string) Verdict {
	account, domain := splitRaw(raw)
	v := baseVerdict(raw, account, domain)
	v.Status = types.StatusError
	v.SubStatus = types.SubStatusSystemError
	v.Confidence = 0
	v.Message = "verification failed: " + fault
	return v
}

// disposableVerdict short-circuits disposable domains with a fixed low
// confidence regardless of any other signal.
func disposableVerdict(email parse.Email) Verdict {
	v := baseVerdict(email.Local+"@"+email.Domain, email.Local, email.Domain)
	v.Status = types.StatusInvalid
	v.SubStatus = types.SubStatusDisposableEmail
	v.Confidence = score.DisposableConfidence
	v.FreeEmail = types.No
	v.Message = "Disposable email address"
	return v
}

// noMXVerdict is terminal for domains that cannot receive mail at all.
func noMXVerdict(email parse.Email, category types.DomainCategory, suggestion string) Verdict {
	v := baseVerdict(email.Local+"@"+email.Domain, email.Local, email.Domain)
	v.Status = types.StatusInvalid
	v.SubStatus = types.SubStatusNoMXRecord
	v.Confidence = score.Confidence(score.Signals{
		FormatValid:   true,
		KnownCategory: knownCategory(category),
	})
	v.FreeEmail = freeEmail(category)
	v.DidYouMean = suggestion
	v.Message = "No valid MX records found"
	return v
}

// finalVerdict assembles the full-signal outcome.
func finalVerdict(
	email parse.Email,
	category types.DomainCategory,
	mx check.MXResult,
	dmarcRes check.DMARCResult,
	probe check.ProbeResult,
	suggestion string,
) Verdict {
	v := baseVerdict(email.Local+"@"+email.Domain, email.Local, email.Domain)

	v.Confidence = score.Confidence(score.Signals{
		FormatValid:   true,
		MXFound:       mx.Found,
		SMTPAccepted:  probe.Accepted,
		KnownCategory: knownCategory(category),
		DMARCPresent:  dmarcRes.Present,
	})

	v.FreeEmail = freeEmail(category)
	v.DidYouMean = suggestion
	v.MXFound = types.Yes
	v.MXRecord = mx.Host
	v.SMTPProvider = providerLabel(mx.Host)
	if dmarcRes.Present {
		v.DMARCFound = types.Yes
		if dmarcRes.Policy != "" {
			v.DMARCPolicy = dmarcRes.Policy
		}
	} else {
		v.DMARCFound = types.No
	}

	if probe.Accepted {
		v.Status = types.StatusValid
		v.SubStatus = category.Token()
		v.IsValid = true
		if category == types.CategoryCorporate {
			v.Message = "Valid corporate email address"
		} else {
			v.Message = "Valid email address"
		}
	} else {
		v.Status = types.StatusInvalid
		v.SubStatus = types.SubStatusNonexistent
		v.Message = "Mailbox does not exist"
	}

	return v
}

func knownCategory(category types.DomainCategory) bool {
	return category == types.CategoryPublicProvider || category == types.CategoryCorporate
}

func freeEmail(category types.DomainCategory) string {
	if category == types.CategoryPublicProvider {
		return types.Yes
	}
	return types.No
}

// providerLabel derives the display provider from the MX host: its
// first DNS label, e.g. "gmail-smtp-in" for gmail-smtp-in.l.google.com.
func providerLabel(mxHost string) string {
	if mxHost == "" {
		return types.Unknown
	}
	if dot := strings.Index(mxHost, "."); dot > 0 {
		return mxHost[:dot]
	}
	return mxHost
}
