//go:build !windows

package wow64

// Probe is only available on Windows.
func Probe() (bool, error) {
	return false, ErrUnsupported
}

// Machines is only available on Windows.
func Machines() (process, native Machine, err error) {
	return MachineUnknown, MachineUnknown, ErrUnsupported
}
