package eventlog

import "github.com/pkg/errors"

// ErrInvalidTruncateLength is returned when Truncate is asked to grow the
// log instead of shrinking it, or given a negative length.
var ErrInvalidTruncateLength = errors.New("eventlog: invalid truncate length")
