package hive

import (
	"errors"
	"fmt"

	"lesiw.io/wowbox/internal/flag"
	"lesiw.io/wowbox/wow64"
)

const machineUsage = `usage: machine [-q]

Print the image machine of this process and of the host.
The process machine is "unknown" unless running under WOW64.`

var machines = wow64.Machines

func init() {
	Bees["machine"] = Machine
}

func Machine(cmd *Cmd) int {
	var quiet bool
	flags := flag.NewFlagSet(cmd.Stderr, "machine")
	flags.Usage = machineUsage
	flags.BoolVar(&quiet, "q", "Print nothing; report errors through the exit status")
	if err := flags.Parse(cmd.Args[1:]...); errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return exitFailed
	}

	process, native, err := machines()
	if err != nil {
		if !quiet {
			prettyPrintError(cmd.Stderr, &probeError{"machine", err})
		}
		return exitFailed
	}
	if !quiet {
		fmt.Fprintln(cmd.Stdout, "process", process)
		fmt.Fprintln(cmd.Stdout, "native", native)
	}
	return 0
}
