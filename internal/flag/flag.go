package flag

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrHelp is returned by Parse when -h or --help is given and no flag of
// that name is defined.
var ErrHelp = errors.New("help requested")

var errParse = errors.New("parse error")

type Value interface {
	String() string
	Set(string) error
}

type boolValue bool

func newBoolValue(p *bool) *boolValue {
	return (*boolValue)(p)
}
func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not a bool", errParse, s)
	}
	*b = boolValue(v)
	return nil
}
func (b *boolValue) Get() bool        { return bool(*b) }
func (b *boolValue) String() string   { return strconv.FormatBool(bool(*b)) }
func (b *boolValue) IsBoolFlag() bool { return true }

type Flag struct {
	Name  string
	Usage string
	Value Value
}

type FlagSet struct {
	args   []string
	output io.Writer
	name   string
	flags  map[string]*Flag
	Args   []string
	Usage  string
}

func NewFlagSet(output io.Writer, name string) *FlagSet {
	return &FlagSet{output: output, name: name, flags: make(map[string]*Flag)}
}

func (f *FlagSet) Name() string { return f.name }

func (f *FlagSet) Var(value Value, name string, usage string) {
	f.flags[name] = &Flag{name, usage, value}
}

func (f *FlagSet) Bool(name string, usage string) *bool {
	var b bool
	f.BoolVar(&b, name, usage)
	return &b
}

func (f *FlagSet) BoolVar(p *bool, name string, usage string) {
	f.Var(newBoolValue(p), name, usage)
}

// Parse consumes args. On error the error and the usage text are written to
// the output; on ErrHelp only the usage text is.
func (f *FlagSet) Parse(args ...string) (err error) {
	defer func() {
		if errors.Is(err, ErrHelp) {
			f.PrintUsage()
		} else if err != nil {
			fmt.Fprintln(f.output, err)
			f.PrintUsage()
		}
	}()
	f.args = args
	for len(f.args) > 0 {
		if f.args[0] == "--" {
			f.args = f.args[1:]
			f.Args = append(f.Args, f.args...)
			return
		} else if f.args[0] == "-" {
			f.Args = append(f.Args, "-")
			f.args = f.args[1:]
		} else if strings.HasPrefix(f.args[0], "-") {
			if err = f.parseFlag(); err != nil {
				return
			}
		} else {
			f.Args = append(f.Args, f.args[0])
			f.args = f.args[1:]
		}
	}
	return
}

func (f *FlagSet) parseFlag() error {
	arg := f.args[0]
	f.args = f.args[1:]
	if len(arg) > 2 && arg[:2] == "--" {
		return f.parseLongFlag(arg[2:])
	}
	return f.parseShortFlag(arg[1:])
}

func (f *FlagSet) parseLongFlag(arg string) error {
	name, val, hasVal := strings.Cut(arg, "=")
	if len(name) == 1 {
		return fmt.Errorf("bad flag: --%s", name) // Short flags are invalid.
	}
	flag, ok := f.flags[name]
	if !ok {
		if name == "help" {
			return ErrHelp
		}
		return fmt.Errorf("bad flag: --%s", name)
	}
	if !hasVal {
		val = "true"
	}
	if err := flag.Value.Set(val); err != nil {
		return fmt.Errorf("bad flag: --%s: %w", name, err)
	}
	return nil
}

func (f *FlagSet) parseShortFlag(arg string) error {
	for _, name := range arg {
		flag, ok := f.flags[string(name)]
		if !ok {
			if name == 'h' {
				return ErrHelp
			}
			return fmt.Errorf("bad flag: -%s", string(name))
		}
		if err := flag.Value.Set("true"); err != nil {
			return err
		}
	}
	return nil
}

func (f *FlagSet) PrintUsage() {
	fmt.Fprintln(f.output, f.Usage)
	fmt.Fprintln(f.output)
	f.PrintDefaults()
}

func (f *FlagSet) PrintDefaults() {
	f.Visit(func(flag *Flag) {
		fmt.Fprintf(f.output, "  -%s\t%s\n", flag.Name,
			strings.ReplaceAll(flag.Usage, "\n", "\n    \t"))
	})
}

func (f *FlagSet) Visit(fn func(*Flag)) {
	for _, flag := range sortFlags(f.flags) {
		fn(flag)
	}
}

func (f *FlagSet) Arg(i int) string {
	if i < 0 || i >= len(f.Args) {
		return ""
	}
	return f.Args[i]
}

func (f *FlagSet) NArg() int { return len(f.Args) }

func sortFlags(flags map[string]*Flag) []*Flag {
	result := make([]*Flag, 0, len(flags))
	for _, f := range flags {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
