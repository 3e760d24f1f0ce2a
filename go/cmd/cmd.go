package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"

	"github.com/lunixbochs/safecs/go/arch"
	"github.com/lunixbochs/safecs/go/cpu"
	"github.com/lunixbochs/safecs/go/cs"
	"github.com/lunixbochs/safecs/go/models"
)

// DisCmd holds the flags and configuration shared by the disassembly commands.
type DisCmd struct {
	Config *models.Config
	Arch   *models.Arch
	Flags  *flag.FlagSet

	// NoInput skips reading code from the arguments.
	NoInput bool
	// ExtraUsage is appended to the usage line, after [options].
	ExtraUsage string

	Out io.Writer
	Err io.Writer
	// Dirs is where the config file is loaded from and saved to.
	Dirs configdir.ConfigDir
	// Terminal selects color output when neither the config nor -color sets it.
	Terminal bool

	color bool
	file  *string
	check *bool
	save  *bool
}

func NewDisCmd(name string) *DisCmd {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &DisCmd{
		Flags:    fs,
		Out:      colorable.NewColorableStdout(),
		Err:      os.Stderr,
		Dirs:     models.ConfigDirs(),
		Terminal: isTerminal(os.Stdout),
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Parse loads the config file, applies flags from argv[1:] on top of it and
// resolves the arch.
func (c *DisCmd) Parse(argv []string) error {
	config, err := models.LoadConfig(c.Dirs)
	if err != nil {
		return err
	}
	fs := c.Flags
	fs.StringVar(&config.Arch, "arch", config.Arch, "architecture ("+strings.Join(arch.Names(), ", ")+")")
	fs.Uint64Var(&config.Base, "base", config.Base, "address of the first byte")
	fs.IntVar(&config.Count, "count", config.Count, "stop after this many instructions (0 decodes everything)")
	fs.BoolVar(&config.Detail, "detail", config.Detail, "print groups, implicit registers and operands")
	fs.BoolVar(&config.Skipdata, "skipdata", config.Skipdata, "emit undecodable bytes as data and keep going")
	fs.StringVar(&config.Syntax, "syntax", config.Syntax, "x86 syntax (intel, att, masm, noregname)")
	fs.BoolVar(&config.Bytes, "bytes", config.Bytes, "show instruction bytes")
	color := fs.Bool("color", config.UseColor(c.Terminal), "colorize output")
	fs.BoolVar(&config.JSON, "json", config.JSON, "print one JSON object per instruction")
	fs.BoolVar(&config.Verbose, "v", config.Verbose, "verbose engine logging")
	c.file = fs.String("f", "", "read code from file")
	c.check = fs.Bool("check", false, "cross-check the listing against the capstr binding")
	c.save = fs.Bool("save", false, "save the resulting settings as the default config")
	fs.Usage = func() {
		fmt.Fprintf(c.Err, "Usage: %s [options] %s\n\nOptions:\n", argv[0], c.ExtraUsage)
		var flags []*flag.Flag
		fs.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })
		models.PrintFlags(c.Err, flags)
	}
	fs.Parse(argv[1:])
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "color" {
			config.Color = color
		}
	})
	c.Config = config
	c.color = config.UseColor(c.Terminal)
	if c.NoInput && (fs.NArg() > 0 || *c.file != "") {
		fs.Usage()
		return errors.Errorf("%s takes no input arguments", argv[0])
	}

	if config.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "failed to create logger")
		}
		cs.SetLogger(logger)
	}
	if c.Arch, err = arch.GetArch(config.Arch); err != nil {
		return err
	}
	if *c.save {
		saved := *config
		saved.Verbose = false
		if err := saved.Save(c.Dirs); err != nil {
			return err
		}
	}
	return nil
}

// Input returns the code to decode: the -f file, stdin for "-", or the
// remaining arguments as hex.
func (c *DisCmd) Input() ([]byte, error) {
	args := c.Flags.Args()
	switch {
	case *c.file != "":
		code, err := os.ReadFile(*c.file)
		return code, errors.Wrap(err, "failed to read input")
	case len(args) == 1 && args[0] == "-":
		code, err := io.ReadAll(os.Stdin)
		return code, errors.Wrap(err, "failed to read stdin")
	case len(args) > 0:
		return models.ParseHex(strings.Join(args, ""))
	}
	c.Flags.Usage()
	return nil, errors.New("no input")
}

func (c *DisCmd) Capstone() (*cpu.Capstone, error) {
	syntax, err := cs.ParseSyntax(c.Config.Syntax)
	if err != nil {
		return nil, err
	}
	return cpu.NewCapstone(c.Arch, c.Config.Detail, c.Config.Skipdata, syntax), nil
}

func (c *DisCmd) Check(dis *cpu.Capstone, code []byte) error {
	if !*c.check {
		return nil
	}
	if err := cpu.CrossCheck(dis, cpu.NewCapstr(c.Arch), code, c.Config.Base); err != nil {
		return errors.Wrap(err, "capstr cross-check failed")
	}
	fmt.Fprintln(c.Err, "capstr cross-check passed")
	return nil
}

func (c *DisCmd) Listing() models.Listing {
	return models.Listing{Bytes: c.Config.Bytes, Color: c.color}
}

// Print writes one decoded instruction in the configured output format.
func (c *DisCmd) Print(e *cs.Engine, ins cs.Instruction) error {
	if c.Config.JSON {
		return errors.WithStack(json.NewEncoder(c.Out).Encode(ins))
	}
	fmt.Fprintln(c.Out, c.Listing().Format([]models.Ins{cpu.Wrap(ins)}))
	if c.Config.Detail {
		PrintDetail(c.Out, e, ins)
	}
	return nil
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError prints an error, and a stacktrace if available.
func (c *DisCmd) PrintError(err error) {
	PrintError(c.Err, err)
}

func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(w, "Error: %s\n", err)
	if kind := cs.KindOf(err); kind != cs.KindNone {
		fmt.Fprintf(w, "Kind: %s\n", kind)
	}
	var st stackTracer
	if !errors.As(err, &st) {
		return
	}
	// parse full path and method name for each stack frame
	var frames [][]string
	for _, f := range st.StackTrace() {
		fullpath := ""
		fileline := fmt.Sprintf("%s:%d", f, f)
		method := fmt.Sprintf("%n", f)

		frame := fmt.Sprintf("%+s", f)
		tmp := strings.SplitN(frame, "\n", 3)
		if len(tmp) == 2 {
			pathsplit := strings.Split(tmp[0], "/")
			method = pathsplit[len(pathsplit)-1]
			fullpath = strings.TrimSpace(tmp[1])
		}
		frames = append(frames, []string{fullpath, fileline, method})
		if method == "main.main" {
			break
		}
	}
	// calculate column widths
	widths := make([]int, 3)
	for _, f := range frames {
		for i, s := range f {
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}
	for _, f := range frames {
		for i := 0; i < 2; i++ {
			if widths[i] > 0 {
				pad := strings.Repeat(" ", widths[i]-len(f[i]))
				fmt.Fprintf(w, "%s%s | ", f[i], pad)
			}
		}
		fmt.Fprintf(w, "%s()\n", f[2])
	}
}
