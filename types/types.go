// Package types contains the shared types for email-validator.
// This package does not import anything from other email-validator packages
// to avoid circular imports.
package types

import "strings"

// DomainCategory classifies the domain of an address.
type DomainCategory int

const (
	// CategoryOther is the default for domains not present in any reference set.
	CategoryOther DomainCategory = iota
	// CategoryPublicProvider marks major consumer webmail domains.
	CategoryPublicProvider
	// CategoryCorporate marks known corporate domains and .edu/.gov suffixes.
	CategoryCorporate
	// CategoryDisposable marks throwaway/temporary mail services.
	CategoryDisposable
)

// String returns the human-readable display form of the category.
func (c DomainCategory) String() string {
	switch c {
	case CategoryPublicProvider:
		return "Public Email Provider"
	case CategoryCorporate:
		return "Corporate"
	case CategoryDisposable:
		return "Disposable"
	default:
		return "Other"
	}
}

// Token returns the category in sub-status form: lower-cased with
// spaces replaced by underscores, e.g. "public_email_provider".
func (c DomainCategory) Token() string {
	return strings.ReplaceAll(strings.ToLower(c.String()), " ", "_")
}

// Status is the top-level outcome of a verification.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
	StatusError   Status = "error"
)

// Sub-status tokens. Valid addresses carry their domain-category token
// (DomainCategory.Token) instead of one of these.
const (
	SubStatusInvalidFormat   = "invalid_format"
	SubStatusNoMXRecord      = "no_mx_record"
	SubStatusNonexistent     = "nonexistent"
	SubStatusDisposableEmail = "disposable_email"
	SubStatusSystemError     = "system_error"
)

// Tri-state display values for fields that may be unknowable.
const (
	Yes     = "Yes"
	No      = "No"
	Unknown = "Unknown"
)
