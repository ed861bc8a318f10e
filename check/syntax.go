package check

import (
	"strings"

	"github.com/neptun2000/email-validator/internal/parse"
)

// FormatError reports that an address does not have a verifiable shape.
// It is terminal: no further signal is computed for the address.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid email format: " + e.Reason
}

// Normalize parses and validates the shape of an address: exactly one
// local part and one domain around the last "@", no whitespace in
// either, and at least one dot in the domain. On success the returned
// Email carries the lower-cased (and punycoded, for IDN) domain while
// the local part keeps its original case.
func Normalize(raw string) (parse.Email, *FormatError) {
	email := parse.NewEmail(raw)
	if !email.Valid {
		return email, &FormatError{Reason: "address is not of the form local@domain"}
	}

	if reason := shapeError(email); reason != "" {
		email.Valid = false
		return email, &FormatError{Reason: reason}
	}

	return email, nil
}

// shapeError applies the shape rules on top of the basic split.
// Returns error text, or "" if ok.
func shapeError(email parse.Email) string {
	if len(email.Raw) > 254 {
		return "address exceeds 254 characters"
	}
	if len(email.Local) > 64 {
		return "local part exceeds 64 characters"
	}
	if strings.ContainsAny(email.Local, " \t\r\n") {
		return "local part contains whitespace"
	}
	if strings.ContainsAny(email.Domain, " \t\r\n") {
		return "domain contains whitespace"
	}

	dot := strings.LastIndex(email.Domain, ".")
	if dot < 0 {
		return "domain has no dot"
	}
	if dot == 0 || dot == len(email.Domain)-1 {
		return "domain has an empty label around the dot"
	}

	return ""
}
