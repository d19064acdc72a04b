// Screwtape CLI - runs Screwtape programs from a file, inline source, or a
// screwtape.toml run manifest.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/screwtape/interp"
	"github.com/chazu/screwtape/manifest"
)

func main() {
	expr := flag.String("e", "", "Inline program source (instead of a file argument)")
	tapeFlag := flag.String("tape", "", "Initial tape cells, comma separated (e.g. '5,2')")
	maxSteps := flag.Int("max-steps", 0, "Abort after this many commands (0 = unlimited)")
	timeout := flag.Duration("timeout", 0, "Abort after this wall-clock duration (0 = no timeout)")
	trace := flag.Bool("trace", false, "Log every dispatched command")
	list := flag.Bool("list", false, "Print a program listing instead of running")
	dumpTape := flag.Bool("dump-tape", false, "Print the final tape after running")
	manifestDir := flag.String("manifest", "", "Directory containing screwtape.toml (default: search upward from .)")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: screwtape [options] [program-file]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a Screwtape program and prints its output.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  screwtape hello.st                # Run a program file\n")
		fmt.Fprintf(os.Stderr, "  screwtape -e '+++[>+<-]' -dump-tape\n")
		fmt.Fprintf(os.Stderr, "  screwtape -list hello.st          # Show the loop structure\n")
		fmt.Fprintf(os.Stderr, "  screwtape -max-steps 1000000 hello.st\n")
		fmt.Fprintf(os.Stderr, "  screwtape                         # Run per ./screwtape.toml\n")
	}
	flag.Parse()

	opts := runOptions{
		expr:        *expr,
		file:        flag.Arg(0),
		tape:        *tapeFlag,
		maxSteps:    *maxSteps,
		timeout:     *timeout,
		trace:       *trace,
		list:        *list,
		dumpTape:    *dumpTape,
		manifestDir: *manifestDir,
		verbose:     *verbose,
	}
	flag.Visit(func(f *flag.Flag) {
		if opts.setFlags == nil {
			opts.setFlags = make(map[string]bool)
		}
		opts.setFlags[f.Name] = true
	})

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runOptions is the merged view of flags and manifest settings.
type runOptions struct {
	expr        string
	file        string
	tape        string
	maxSteps    int
	timeout     time.Duration
	trace       bool
	list        bool
	dumpTape    bool
	manifestDir string
	verbose     bool

	setFlags map[string]bool // flags explicitly given on the command line
}

func (o *runOptions) flagSet(name string) bool {
	return o.setFlags[name]
}

func run(opts runOptions) error {
	program, cells, err := resolveProgram(&opts)
	if err != nil {
		return err
	}

	verbosity := 0
	if opts.verbose {
		verbosity = 1
	}
	if opts.trace {
		verbosity = 2 // trace logs at debug level
	}
	commonlog.Configure(verbosity, nil)

	if opts.list {
		listing, err := interp.Listing(program)
		if err != nil {
			return err
		}
		fmt.Print(listing)
		return nil
	}

	in := interp.New()
	in.MaxSteps = opts.maxSteps
	in.Trace = opts.trace
	if len(cells) > 0 {
		if err := in.SetTape(cells); err != nil {
			return err
		}
	}

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	out, err := in.ExecuteContext(ctx, program)
	if err != nil {
		return err
	}
	fmt.Print(out)

	if opts.dumpTape {
		fmt.Printf("\nTape: %v\n", in.Tape())
	}
	return nil
}

// resolveProgram determines the program text and initial tape cells from the
// flags, falling back to a screwtape.toml manifest when no program was given
// on the command line. Manifest settings fill in any option whose flag was
// not explicitly set.
func resolveProgram(opts *runOptions) (string, []int, error) {
	if opts.expr != "" && opts.file != "" {
		return "", nil, fmt.Errorf("-e and a program file are mutually exclusive")
	}

	cells, err := parseTape(opts.tape)
	if err != nil {
		return "", nil, err
	}

	if opts.expr != "" {
		return opts.expr, cells, nil
	}
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", nil, fmt.Errorf("cannot read program %s: %w", opts.file, err)
		}
		return string(data), cells, nil
	}

	// No program on the command line: consult the manifest.
	var m *manifest.Manifest
	if opts.manifestDir != "" {
		m, err = manifest.Load(opts.manifestDir)
	} else {
		m, err = manifest.FindAndLoad(".")
	}
	if err != nil {
		return "", nil, err
	}
	if m == nil {
		return "", nil, fmt.Errorf("no program given and no screwtape.toml found (see -h)")
	}

	program, err := m.ProgramText()
	if err != nil {
		return "", nil, err
	}

	if len(cells) == 0 {
		cells = m.Tape.Cells
	}
	if !opts.flagSet("max-steps") {
		opts.maxSteps = m.Limits.MaxSteps
	}
	if !opts.flagSet("timeout") {
		d, err := m.TimeoutDuration()
		if err != nil {
			return "", nil, err
		}
		opts.timeout = d
	}
	if !opts.flagSet("trace") {
		opts.trace = m.Run.Trace
	}
	if !opts.flagSet("dump-tape") {
		opts.dumpTape = m.Run.DumpTape
	}

	return program, cells, nil
}
