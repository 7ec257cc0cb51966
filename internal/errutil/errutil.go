// Package errutil contains small helpers to simplify working with errors.
package errutil

import "io"

// Close closes c and, if err doesn't already hold a value, sets it to the
// error returned by Close. Meant to be used from a defer so a deferred
// Close error is never silently dropped.
func Close(c io.Closer, err *error) {
	e := c.Close()
	if *err == nil && e != nil {
		*err = e
	}
}
