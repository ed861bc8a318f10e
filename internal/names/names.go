// Package names guesses a person's first and last name from the local
// part of an email address. Best-effort: "john.doe" and "john_doe" look
// like names, "jsmith" does not split.
package names

import (
	"strings"
	"unicode"
)

// Unknown is the placeholder for tokens that cannot be derived.
const Unknown = "Unknown"

// Name holds the extracted first/last name guess.
type Name struct {
	First string
	Last  string
}

// Extract splits the local part on dots and underscores and title-cases
// each token. The first token becomes First; the remaining tokens joined
// by spaces become Last. Fewer than two tokens yields Last=Unknown; no
// tokens at all yields Unknown for both.
func Extract(local string) Name {
	fields := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_'
	})

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, capitalize(f))
		}
	}

	switch len(parts) {
	case 0:
		return Name{First: Unknown, Last: Unknown}
	case 1:
		return Name{First: parts[0], Last: Unknown}
	default:
		return Name{First: parts[0], Last: strings.Join(parts[1:], " ")}
	}
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
