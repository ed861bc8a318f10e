// Package emailvalidator determines, for a given email address, whether
// it is syntactically valid, whether its domain can receive mail, and
// how likely it is to be a real, deliverable mailbox. Each verification
// returns a structured verdict with a confidence score and an
// explanatory sub-status.
//
// Basic usage:
//
//	v := emailvalidator.New()
//	defer v.Close()
//	verdict := v.Verify(ctx, "user@example.com")
//
// Batches (up to 100 addresses, verified concurrently):
//
//	verdicts, err := v.VerifyBatch(ctx, []string{"a@example.com", "b@example.com"})
//
// Signals that fail, time out, or are deliberately unreliable (public
// providers routinely refuse to confirm mailbox existence) are folded
// into the verdict instead of surfacing as errors: every input address
// always yields a same-shape verdict.
package emailvalidator

import "github.com/neptun2000/email-validator/types"

// DomainCategory is a re-export from the types package so that consumers
// don't need to import the types package directly.
type DomainCategory = types.DomainCategory

// Status is a re-export.
type Status = types.Status

// Category and status constants re-exported.
const (
	CategoryOther          = types.CategoryOther
	CategoryPublicProvider = types.CategoryPublicProvider
	CategoryCorporate      = types.CategoryCorporate
	CategoryDisposable     = types.CategoryDisposable

	StatusValid   = types.StatusValid
	StatusInvalid = types.StatusInvalid
	StatusError   = types.StatusError
)
