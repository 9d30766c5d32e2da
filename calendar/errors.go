package calendar

import (
	"errors"
	"strconv"
	"strings"
)

// ErrRange is the sentinel matched by every validation failure in this
// package. Test for it with [errors.Is].
var ErrRange = errors.New("date out of range")

// RangeError reports calendar fields that do not form a valid date. The
// message is formatted only when Error is called, so callers that discard
// the error, as the hot parsing paths do, never pay for it.
type RangeError struct {
	// What names the rejected representation; empty means "date".
	What string
	// Fields holds the offending field values in their calendar order.
	Fields []int32
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	what := e.What
	if what == "" {
		what = "date"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = strconv.FormatInt(int64(f), 10)
	}
	return what + " out of range: " + strings.Join(parts, "-")
}

// Is reports whether target is [ErrRange], making every RangeError match
// the sentinel.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}
