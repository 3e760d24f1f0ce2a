package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type command struct {
	name, desc string
	main       func(args []string)
}

var commands map[string]*command
var order []string
var pad int

func init() { commands = make(map[string]*command) }

func Register(name, desc string, main func(args []string)) {
	if _, ok := commands[name]; ok {
		panic("Duplicate command " + name)
	}
	if len(name) > pad {
		pad = len(name)
	}
	commands[name] = &command{name, desc, main}
	order = append(order, name)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fstr := fmt.Sprintf("%%-%ds | %%s\n", pad)
	for _, name := range order {
		cmd := commands[name]
		fmt.Fprintf(w, fstr, cmd.name, cmd.desc)
	}
	fmt.Fprintf(w, "\nExample: %s dis -arch x86_64 -detail 55488b05b8130000\n\n", os.Args[0])
}

// Dispatch runs the command named by argv[1] and reports whether it exists.
func Dispatch(argv []string) bool {
	if len(argv) < 2 {
		return false
	}
	cmd, ok := commands[argv[1]]
	if !ok {
		return false
	}
	args := append([]string{strings.Join(argv[:2], " ")}, argv[2:]...)
	cmd.main(args)
	return true
}

func Main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}
	if !Dispatch(os.Args) {
		fmt.Fprintf(os.Stderr, "Command '%s' not found.\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(1)
	}
}
