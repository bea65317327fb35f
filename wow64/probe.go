// Package wow64 reports whether the current process runs under WOW64, the
// Windows subsystem that hosts 32-bit binaries on a 64-bit kernel.
//
// Every call asks the operating system again; nothing is cached. On systems
// without WOW64 the probes return ErrUnsupported and make no native call.
package wow64

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
)

// ErrUnsupported is returned on operating systems that have no 32-on-64
// compatibility layer.
var ErrUnsupported = fmt.Errorf("wow64: %w on %s", errors.ErrUnsupported, runtime.GOOS)

// Error is a failed native query. Code is the calling thread's last-error
// value as captured by the same syscall that failed.
type Error struct {
	Op   string
	Code uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("wow64: %s: %v", e.Op, syscall.Errno(e.Code))
}

func (e *Error) Unwrap() error {
	return syscall.Errno(e.Code)
}

// Code extracts the platform error code from err.
func Code(err error) (uint32, bool) {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Code, true
	}
	return 0, false
}

// boolQuery calls a native function that fills a BOOL out parameter. It
// returns the call's own return value and the last-error value read on the
// same thread before any other call could overwrite it.
type boolQuery func(out *int32) (ret uintptr, lastErr syscall.Errno)

func probe(op string, query boolQuery) (bool, error) {
	var flag int32
	if ret, errno := query(&flag); ret == 0 {
		return false, &Error{Op: op, Code: uint32(errno)}
	}
	return flag != 0, nil
}
