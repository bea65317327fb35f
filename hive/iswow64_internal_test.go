package hive

import (
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"lesiw.io/wowbox/wow64"
)

func withProbe(t *testing.T, isWow64 bool, err error) {
	orig := probe
	probe = func() (bool, error) { return isWow64, err }
	t.Cleanup(func() { probe = orig })
}

func runBee(argv ...string) (code int, stdout, stderr string) {
	var outw, errw strings.Builder
	cmd := Command(argv...)
	cmd.Stdout = &outw
	cmd.Stderr = &errw
	code = cmd.Run()
	return code, outw.String(), errw.String()
}

func TestIsWow64Outcomes(t *testing.T) {
	failed := &wow64.Error{Op: "IsWow64Process", Code: 127}
	tests := []struct {
		name    string
		argv    []string
		isWow64 bool
		err     error
		code    int
		stdout  string
		stderr  string
	}{
		{"true", []string{"iswow64"}, true, nil, 0, "true\n", ""},
		{"false", []string{"iswow64"}, false, nil, 0, "false\n", ""},
		{"quiet true", []string{"iswow64", "-q"}, true, nil, 0, "", ""},
		{"quiet false", []string{"iswow64", "--quiet"}, false, nil, 1, "", ""},
		{"failed", []string{"iswow64"}, false, failed, 2, "", "(code 127)\n"},
		{"quiet failed", []string{"iswow64", "-q"}, false, failed, 2, "", ""},
		{"unsupported", []string{"iswow64"}, false, wow64.ErrUnsupported, 2, "", "unsupported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withProbe(t, tt.isWow64, tt.err)
			code, stdout, stderr := runBee(tt.argv...)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.stdout, stdout)
			if tt.stderr == "" {
				assert.Empty(t, stderr)
			} else {
				assert.Contains(t, stderr, tt.stderr)
			}
		})
	}
}

func TestIsWow64Verbose(t *testing.T) {
	withProbe(t, false, &wow64.Error{Op: "IsWow64Process", Code: uint32(syscall.Errno(5))})
	code, _, stderr := runBee("iswow64", "-v")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "msg=probe")
	assert.Contains(t, stderr, "code=5")
	assert.Contains(t, stderr, "iswow64: wow64: IsWow64Process:")
}

func TestMachineOutcomes(t *testing.T) {
	orig := machines
	t.Cleanup(func() { machines = orig })

	machines = func() (wow64.Machine, wow64.Machine, error) {
		return wow64.MachineI386, wow64.MachineAMD64, nil
	}
	code, stdout, _ := runBee("machine")
	assert.Equal(t, 0, code)
	assert.Equal(t, "process i386\nnative x86_64\n", stdout)

	machines = func() (wow64.Machine, wow64.Machine, error) {
		return wow64.MachineUnknown, wow64.MachineUnknown, &wow64.Error{Op: "IsWow64Process2", Code: 127}
	}
	code, stdout, stderr := runBee("machine")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "machine: wow64: IsWow64Process2:")
	assert.Contains(t, stderr, "(code 127)")
}

func TestProbeErrorPretty(t *testing.T) {
	err := &probeError{"iswow64", wow64.ErrUnsupported}
	assert.Equal(t, err.Error(), err.Pretty())
	assert.ErrorIs(t, err, wow64.ErrUnsupported)
}
