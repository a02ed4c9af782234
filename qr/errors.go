package qr

import "errors"

// Error kinds returned from the planning and generation calls. The core
// never logs or aborts; every failure is reported through one of these.
var (
	// ErrInvalidSegment indicates text failed its mode's alphabet check,
	// or an ECI designator fell outside its valid range.
	ErrInvalidSegment = errors.New("qr: invalid segment")

	// ErrVersionOutOfRange indicates a fixed version outside [1,40].
	ErrVersionOutOfRange = errors.New("qr: version out of range")

	// ErrCapacityExceeded indicates no allowed version can hold the
	// planned bitstream.
	ErrCapacityExceeded = errors.New("qr: capacity exceeded")

	// ErrBufferTooSmall indicates a caller-supplied buffer is smaller
	// than PlanSizes reports.
	ErrBufferTooSmall = errors.New("qr: buffer too small")

	// ErrInvalidOption indicates contradictory or out-of-range options,
	// such as a mask index outside 0-7 when not Auto.
	ErrInvalidOption = errors.New("qr: invalid option")
)
