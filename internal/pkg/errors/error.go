package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors. Each sentinel corresponds to one
// user-visible failure kind; callers branch with errors.Is rather than
// matching strings.
var (
	// ErrStorageWrite covers serialization or storage failures while
	// persisting a collection.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrSheetsConfigMissing blocks a spreadsheet sync before any network
	// I/O when the API key or sheet id is not configured.
	ErrSheetsConfigMissing = errors.New("spreadsheet API key or sheet id not configured")

	// ErrInsufficientData is the neutral "nothing to do" outcome: an empty
	// export source or a remote read without usable rows.
	ErrInsufficientData = errors.New("no data or insufficient data")

	// ErrShapeMismatch reports a record set that violates the
	// uniform-shape precondition of the tabular pipeline, or a CSV row
	// whose column count does not match the header.
	ErrShapeMismatch = errors.New("record shape mismatch")

	// ErrInvalidCredentials is the expected login rejection; it is not a
	// fault and no session is established.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoData signals that a report has nothing to compute over,
	// distinct from a computed zero-valued summary.
	ErrNoData = errors.New("no data to report on")

	ErrUnauthorized      = errors.New("unauthorized access")
	ErrForbidden         = errors.New("forbidden")
	ErrSessionExpired    = errors.New("session expired or invalid")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
