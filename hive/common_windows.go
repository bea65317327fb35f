//go:build windows

package hive

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemInfo       = modkernel32.NewProc("GetSystemInfo")
	procGetNativeSystemInfo = modkernel32.NewProc("GetNativeSystemInfo")
)

// https://learn.microsoft.com/en-us/windows/win32/api/sysinfoapi/ns-sysinfoapi-system_info
type systeminfo struct {
	wProcessorArchitecture      uint16
	wReserved                   uint16
	dwPageSize                  uint32
	lpMinimumApplicationAddress uintptr
	lpMaximumApplicationAddress uintptr
	dwActiveProcessorMask       uintptr
	dwNumberOfProcessors        uint32
	dwProcessorType             uint32
	dwAllocationGranularity     uint32
	wProcessorLevel             uint16
	wProcessorRevision          uint16
}

// https://learn.microsoft.com/en-us/windows/win32/api/sysinfoapi/ns-sysinfoapi-system_info
const (
	PROCESSOR_ARCHITECTURE_AMD64 = 9
	PROCESSOR_ARCHITECTURE_INTEL = 0
	PROCESSOR_ARCHITECTURE_ARM   = 5
	PROCESSOR_ARCHITECTURE_ARM64 = 12
	PROCESSOR_ARCHITECTURE_IA64  = 6
)

// System info is fixed for the life of the process.
var (
	sysinfo       = sync.OnceValue(func() *systeminfo { return getSystemInfo(procGetSystemInfo) })
	nativeSysinfo = sync.OnceValue(func() *systeminfo { return getSystemInfo(procGetNativeSystemInfo) })
)

func getSystemInfo(proc *windows.LazyProc) *systeminfo {
	info := new(systeminfo)
	if proc.Find() != nil {
		proc = procGetSystemInfo
	}
	proc.Call(uintptr(unsafe.Pointer(info)))
	return info
}
