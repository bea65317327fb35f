package hive

import (
	"errors"
	"fmt"
	"runtime"

	"lesiw.io/wowbox/internal/flag"
)

const archUsage = `usage: arch [-p]

Print machine architecture. Under WOW64 this is the host's architecture
unless -p is given.`

func init() {
	Bees["arch"] = Arch
}

func Arch(cmd *Cmd) int {
	flags := flag.NewFlagSet(cmd.Stderr, "arch")
	flags.Usage = archUsage
	process := flags.Bool("p", "Print the architecture this process sees")
	if err := flags.Parse(cmd.Args[1:]...); errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 1
	}
	name := arch(*process)
	if name == "" {
		fmt.Fprintln(cmd.Stderr, "arch: unknown architecture")
		return 1
	}
	fmt.Fprintln(cmd.Stdout, name)
	return 0
}

func goarch() string {
	switch runtime.GOARCH {
	case "386":
		return "i386"
	case "amd64":
		return "x86_64"
	default:
		return runtime.GOARCH
	}
}
