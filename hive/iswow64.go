package hive

import (
	"errors"
	"fmt"
	"runtime"

	"lesiw.io/wowbox/internal/flag"
	"lesiw.io/wowbox/wow64"
)

const iswow64Usage = `usage: iswow64 [-qv]

Report whether this process runs under WOW64.
Exit status is 0 on success, 2 if the query failed.
With -q, nothing is printed and the status is 0 (true), 1 (false) or 2.`

var probe = wow64.Probe

func init() {
	Bees["iswow64"] = IsWow64
}

func IsWow64(cmd *Cmd) int {
	var quiet, verbose bool
	flags := flag.NewFlagSet(cmd.Stderr, "iswow64")
	flags.Usage = iswow64Usage
	flags.BoolVar(&quiet, "q", "Print nothing; report through the exit status")
	flags.BoolVar(&quiet, "quiet", "Same as -q")
	flags.BoolVar(&verbose, "v", "Log the probe to stderr")
	if err := flags.Parse(cmd.Args[1:]...); errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return exitFailed
	}

	log := debugLogger(cmd.Stderr, verbose)
	isWow64, err := probe()
	log.Debug("probe", append([]any{
		"goos", runtime.GOOS,
		"goarch", runtime.GOARCH,
		"wow64", isWow64,
	}, errAttrs(err)...)...)
	if err != nil {
		if !quiet {
			prettyPrintError(cmd.Stderr, &probeError{"iswow64", err})
		}
		return exitFailed
	}

	if !quiet {
		fmt.Fprintln(cmd.Stdout, isWow64)
		return exitTrue
	}
	if isWow64 {
		return exitTrue
	}
	return exitFalse
}
