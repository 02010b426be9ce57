package rita

import "errors"

// Sentinel errors returned by RenderContext methods, matching the pipeline's
// fixed set of failure categories: bad caller input, a precondition the
// caller skipped, memory the caller didn't size correctly, and anything
// else the runtime considers unrecoverable.
var (
	// ErrInvalidArgument means a caller-supplied value is out of range or
	// otherwise malformed (negative dimensions, unknown enum value, nil
	// required pointer).
	ErrInvalidArgument = errors.New("rita: invalid argument")

	// ErrPreconditionUnmet means an operation was attempted before a
	// required prior step (e.g. drawing with no framebuffer bound, or with
	// depth testing or depth writing enabled and no depth buffer).
	ErrPreconditionUnmet = errors.New("rita: precondition unmet")

	// ErrResourceExhausted means an internal bound was hit (a framebuffer
	// that would need more tiles than the context supports).
	ErrResourceExhausted = errors.New("rita: resource exhausted")

	// ErrInternalFatal means the render context reached a state it cannot
	// recover from and must be recreated.
	ErrInternalFatal = errors.New("rita: internal fatal error")
)
