package wow64

import (
	"fmt"
	"syscall"
)

// Machine is a PE image machine type (IMAGE_FILE_MACHINE_*).
type Machine uint16

// https://learn.microsoft.com/en-us/windows/win32/sysinfo/image-file-machine-constants
const (
	MachineUnknown Machine = 0x0000
	MachineI386    Machine = 0x014c
	MachineARMNT   Machine = 0x01c4
	MachineIA64    Machine = 0x0200
	MachineAMD64   Machine = 0x8664
	MachineARM64   Machine = 0xaa64
)

func (m Machine) String() string {
	switch m {
	case MachineUnknown:
		return "unknown"
	case MachineI386:
		return "i386"
	case MachineARMNT:
		return "arm"
	case MachineIA64:
		return "ia64"
	case MachineAMD64:
		return "x86_64"
	case MachineARM64:
		return "arm64"
	default:
		return fmt.Sprintf("machine(%#04x)", uint16(m))
	}
}

// Is64Bit reports whether m is a 64-bit instruction set.
func (m Machine) Is64Bit() bool {
	switch m {
	case MachineAMD64, MachineARM64, MachineIA64:
		return true
	}
	return false
}

type machineQuery func(process, native *uint16) (ret uintptr, lastErr syscall.Errno)

func machines(op string, query machineQuery) (process, native Machine, err error) {
	var p, n uint16
	if ret, errno := query(&p, &n); ret == 0 {
		return MachineUnknown, MachineUnknown, &Error{Op: op, Code: uint32(errno)}
	}
	return Machine(p), Machine(n), nil
}
