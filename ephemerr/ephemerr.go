// Package ephemerr defines the sentinel error taxonomy shared by the
// kernel reader, the analytical providers, and the dispatcher, and the
// wrapping conventions used to attach context to them.
package ephemerr

import "github.com/pkg/errors"

// Sentinel errors. Callers match with errors.Is; the dispatcher and the
// SPK reader wrap these with errors.Wrap to attach the offending body,
// file, or epoch.
var (
	// ErrUnknownBody means a name is not in the dispatcher's union of
	// provider name sets and is not a recognized fallback.
	ErrUnknownBody = errors.New("ephemerr: unknown body")

	// ErrDateOutOfRange means an instant falls outside the global
	// 3000 BC / 3000 AD envelope, or outside a provider's private window.
	ErrDateOutOfRange = errors.New("ephemerr: date out of range")

	// ErrBadKernelFile means an SPK magic mismatch, inconsistent nd/ni,
	// or an I/O failure while reading a kernel.
	ErrBadKernelFile = errors.New("ephemerr: bad kernel file")

	// ErrNoSegment means no SPK segment covers the requested
	// (target, observer, et).
	ErrNoSegment = errors.New("ephemerr: no matching segment")

	// ErrUnsupported means the operation is not implemented for this
	// provider, e.g. a barycentric variant a provider declares but does
	// not implement.
	ErrUnsupported = errors.New("ephemerr: unsupported operation")

	// ErrNonConvergent means a Kepler/hyperbolic solver or the Lambert
	// Householder iteration hit its cap without meeting tolerance. This
	// is surfaced as a diagnostic alongside a best estimate, never as a
	// fatal return on its own.
	ErrNonConvergent = errors.New("ephemerr: iteration did not converge")

	// ErrLambertDegenerate means tof <= 0, mu <= 0, or the rotation
	// sense could not be determined.
	ErrLambertDegenerate = errors.New("ephemerr: degenerate lambert input")
)

// Wrap attaches msg as context to err via github.com/pkg/errors, or
// returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// Wrapf attaches a formatted message as context to err, or returns nil
// if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// Is reports whether err is, or wraps, target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
