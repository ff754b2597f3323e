package address

import "github.com/pkg/errors"

var (
	ErrInvalidAddressFormat = errors.New("invalid address format")
	ErrInvalidChecksum      = errors.New("invalid address checksum")
	ErrWorkchainOutOfRange  = errors.New("workchain out of range")
)

// IsInvalidAddressError reports whether err was caused by malformed user input
// rather than by an encoding limitation.
func IsInvalidAddressError(err error) bool {
	return errors.Is(err, ErrInvalidAddressFormat) ||
		errors.Is(err, ErrInvalidChecksum)
}
