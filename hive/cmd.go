package hive

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Exit statuses shared by the probing bees.
const (
	exitTrue   = 0
	exitFalse  = 1
	exitFailed = 2
)

type Cmd struct {
	exec.Cmd
	ExitCode int
}
type CmdFunc func(*Cmd) int

var Bees = map[string]CmdFunc{}

func Command(argv ...string) *Cmd {
	c := &Cmd{}
	c.Path = argv[0]
	c.Args = argv
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c
}

func CmdList() (cmds []string) {
	for cmd := range Bees {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return
}

func (c *Cmd) Default() int {
	fmt.Fprintf(c.Stderr, "Usage: wowbox [command]\nCommands: %s\n",
		strings.Join(CmdList(), ", "))
	return 1
}

func (c *Cmd) Run() int {
	cmd := beeName(c.Path)
	if cmd == "wowbox" {
		if len(c.Args) < 2 {
			c.ExitCode = c.Default()
			return c.ExitCode
		}
		c.Args = c.Args[1:]
		c.Path = c.Args[0]
		cmd = beeName(c.Path)
	}
	if fn, ok := Bees[cmd]; ok {
		c.ExitCode = fn(c)
		return c.ExitCode
	}
	fmt.Fprintln(c.Stderr, "bad command:", c.Args[0])
	c.ExitCode = 1
	return c.ExitCode
}

// beeName strips the directory and any .exe suffix from argv[0].
func beeName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, ".exe")
}
