//go:build windows && !tinygo

package hive

import (
	"fmt"

	"lesiw.io/wowbox/wow64"
)

func arch(process bool) string {
	if process {
		return sysarch(sysinfo())
	}
	// IsWow64Process2 sees through x86 emulation on ARM64 hosts, which
	// GetNativeSystemInfo does not.
	if _, native, err := wow64.Machines(); err == nil && native != wow64.MachineUnknown {
		return native.String()
	}
	return sysarch(nativeSysinfo())
}

func sysarch(info *systeminfo) string {
	switch info.wProcessorArchitecture {
	case PROCESSOR_ARCHITECTURE_AMD64:
		return "x86_64"
	case PROCESSOR_ARCHITECTURE_INTEL:
		if info.wProcessorLevel <= 3 {
			return "i386"
		} else if info.wProcessorLevel >= 6 {
			return "i686"
		} else {
			return fmt.Sprintf("i%d86", info.wProcessorLevel)
		}
	case PROCESSOR_ARCHITECTURE_ARM:
		return "arm"
	case PROCESSOR_ARCHITECTURE_ARM64:
		return "arm64"
	case PROCESSOR_ARCHITECTURE_IA64:
		return "ia64"
	default:
		return ""
	}
}
