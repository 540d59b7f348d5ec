package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Adapters return these (optionally
// wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: the input resource (file, endpoint) does not exist
//   - ErrUnavailable: a remote dependency could not be reached or failed
//   - ErrRejected: a remote dependency refused the request
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrRejected    = errors.New("rejected")
)
