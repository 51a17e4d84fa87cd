package model

import "errors"

var (
	// ErrNotFound means the requested video, comment or note does not
	// exist, locally or remotely.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated means the bearer token is missing, malformed,
	// or has no matching session row.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMirrorWrite means a local mirror write failed after the remote
	// mutation already succeeded. The remote state is correct; the
	// local row is missing or stale until reconciled.
	ErrMirrorWrite = errors.New("mirror write failed")
)
