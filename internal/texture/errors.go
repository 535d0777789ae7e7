package texture

import "errors"

// ErrInvalidArgument is wrapped by every precondition violation in the
// sampling core: out-of-range texel coordinates, unknown pixel formats,
// sample coordinates the selector cannot bracket, and kernel inputs outside
// the unit quad.
var ErrInvalidArgument = errors.New("invalid argument")
