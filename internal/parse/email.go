package parse

import (
	"strings"

	"golang.org/x/net/idna"
)

// Email is the internal representation of a parsed email address.
// The check/ packages receive this as parameter.
type Email struct {
	Raw           string // the original, trimmed input
	Local         string // the part before @, original case preserved
	Domain        string // the part after @, lower-cased ASCII/Punycode form (for DNS/SMTP)
	DomainUnicode string // the part after @, Unicode form (for display/typo detection)
	Valid         bool   // false if Raw cannot be split into local@domain
}

// NewEmail splits the given address at the last "@" into local part and
// domain. The domain is lower-cased and converted to its ASCII/Punycode
// form (IDNA2008); the local part keeps its original case. If the input
// has no usable local@domain shape, Valid=false but Raw is populated.
//
// Shape-level rules beyond the split (no whitespace, at least one dot in
// the domain) are enforced by the syntax checker, not here.
func NewEmail(raw string) Email {
	raw = strings.TrimSpace(raw)

	at := strings.LastIndex(raw, "@")
	if at < 1 || at == len(raw)-1 {
		return Email{Raw: raw, Valid: false}
	}
	local := raw[:at]
	if strings.Contains(local, "@") {
		return Email{Raw: raw, Valid: false}
	}

	domain := strings.ToLower(raw[at+1:])
	ascii, unicode, ok := convertDomain(domain)
	if !ok {
		return Email{Raw: raw, Valid: false}
	}

	return Email{
		Raw:           raw,
		Local:         local,
		Domain:        ascii,
		DomainUnicode: unicode,
		Valid:         true,
	}
}

// convertDomain converts a lower-cased domain to both ASCII/Punycode and
// Unicode forms. ok is false if the domain contains non-ASCII characters
// that fail IDNA2008 validation.
func convertDomain(domain string) (ascii, unicode string, ok bool) {
	hasNonASCII := false
	for _, r := range domain {
		if r > 127 {
			hasNonASCII = true
			break
		}
	}

	if hasNonASCII {
		a, err := idna.Lookup.ToASCII(domain)
		if err != nil {
			return "", "", false
		}
		return a, domain, true
	}

	// Pure ASCII: derive the Unicode display form so existing Punycode
	// like xn--mnchen-3ya.de renders as münchen.de.
	u, err := idna.Display.ToUnicode(domain)
	if err != nil {
		u = domain
	}
	return domain, u, true
}
