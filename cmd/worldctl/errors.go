package main

import "github.com/pkg/errors"

// errIntegrityFailure marks a command failure caused by a fingerprint or
// replay mismatch (exit code 1). errUnreadablePath marks a failure to read
// the world directory at all (exit code 2).
var (
	errIntegrityFailure = errors.New("worldctl: integrity check failed")
	errUnreadablePath   = errors.New("worldctl: could not read world directory")
)

func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUnreadablePath):
		return 2
	case errors.Is(err, errIntegrityFailure):
		return 1
	default:
		return 1
	}
}
