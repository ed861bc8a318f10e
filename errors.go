package emailvalidator

import "errors"

// ErrBatchTooLarge is returned by VerifyBatch when the input exceeds
// the configured maximum batch size, before any network work starts.
var ErrBatchTooLarge = errors.New("emailvalidator: batch exceeds maximum size")
