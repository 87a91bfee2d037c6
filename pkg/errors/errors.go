package errors

import "errors"

// ErrStaleRecord signals that a compare-and-swap update matched no row:
// the record changed under the caller between read and write.
var ErrStaleRecord = errors.New("record was modified by another operation")
