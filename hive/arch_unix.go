//go:build !windows && !tinygo

package hive

import "golang.org/x/sys/unix"

func arch(process bool) string {
	if process {
		return goarch()
	}
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uname.Machine[:])
}
