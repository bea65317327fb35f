//go:build windows

package wow64

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procIsWow64Process  = modkernel32.NewProc("IsWow64Process")
	procIsWow64Process2 = modkernel32.NewProc("IsWow64Process2")
)

// Probe reports whether the current process runs under WOW64.
func Probe() (bool, error) {
	return probe("IsWow64Process", isWow64Process)
}

// Machines returns the image machine the current process was built for and
// the native machine of the host. process is MachineUnknown unless the
// process runs under WOW64. It needs Windows 10 1511 or later; older systems
// report ERROR_PROC_NOT_FOUND.
func Machines() (process, native Machine, err error) {
	return machines("IsWow64Process2", isWow64Process2)
}

func isWow64Process(out *int32) (uintptr, syscall.Errno) {
	if err := procIsWow64Process.Find(); err != nil {
		return 0, loadErrno(err)
	}
	// SyscallN reads GetLastError on this thread before returning.
	r1, _, e1 := syscall.SyscallN(procIsWow64Process.Addr(),
		uintptr(windows.CurrentProcess()),
		uintptr(unsafe.Pointer(out)))
	return r1, e1
}

func isWow64Process2(process, native *uint16) (uintptr, syscall.Errno) {
	if err := procIsWow64Process2.Find(); err != nil {
		return 0, loadErrno(err)
	}
	r1, _, e1 := syscall.SyscallN(procIsWow64Process2.Addr(),
		uintptr(windows.CurrentProcess()),
		uintptr(unsafe.Pointer(process)),
		uintptr(unsafe.Pointer(native)))
	return r1, e1
}

func loadErrno(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return syscall.Errno(windows.ERROR_PROC_NOT_FOUND)
}
