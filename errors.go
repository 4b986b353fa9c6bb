package swr

import "errors"

// ErrInvalidDimensions is returned by NewDevice when width or height is
// not positive.
var ErrInvalidDimensions = errors.New("swr: width and height must be positive")

// ErrNoFrame is returned by Save when the device has no frame buffer,
// which can only happen after Reset and before the next NewDevice call.
var ErrNoFrame = errors.New("swr: device has no frame buffer")
