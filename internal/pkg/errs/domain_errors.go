package errs

import "errors"

// Sentinel errors shared across the gateway and usecase layers
var (
	// Remote call taxonomy. Read paths substitute fallback data on any of
	// these; mutation and auth paths propagate them unmodified.
	ErrUnreachable       = errors.New("upstream unreachable")
	ErrRemoteRejected    = errors.New("upstream rejected request")
	ErrMalformedResponse = errors.New("upstream response unparsable")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
