// launch-localsystem starts a program as NT AUTHORITY\SYSTEM by borrowing
// the token of winlogon.exe. Run it from an elevated console.
//
// Usage:
//
//	launch-localsystem [flags] <program> [args...]
//
// Exit code 0 means the program was started; 1 means anything else,
// including a missing argument.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/crafted-tech/localsystem"
	"github.com/crafted-tech/localsystem/platform"
)

const programName = "launch-localsystem"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, platform.New()))
}

type cliOptions struct {
	help    bool
	version bool
	lang    string
	noColor bool
	verbose bool
	logFile bool
}

func run(args []string, stdout, stderr io.Writer, sys localsystem.System) int {
	var opts cliOptions

	flagSet := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	// Everything after the program path belongs to the program.
	flagSet.SetInterspersed(false)
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show this help")
	flagSet.BoolVar(&opts.version, "version", false, "print version information")
	flagSet.StringVar(&opts.lang, "lang", "", "message language (en, ru)")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "trace each step to stderr")
	flagSet.BoolVar(&opts.logFile, "log", false, "trace each step to a log file in the temp directory")

	parseErr := flagSet.Parse(args)

	localsystem.SetLanguage(pickLanguage(opts.lang))
	renderer, restore := newRenderer(stdout, opts.noColor)
	defer restore()

	if parseErr != nil {
		fmt.Fprintln(stdout, localsystem.TF("usage.bad_flag", parseErr))
		fmt.Fprintln(stdout)
		printUsage(stdout, renderer, flagSet)
		return 1
	}
	if opts.help {
		printUsage(stdout, renderer, flagSet)
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", programName, localsystem.VersionInfo())
		return 0
	}
	if flagSet.NArg() == 0 {
		printUsage(stdout, renderer, flagSet)
		return 1
	}

	logger, closeLog, err := newLogger(opts, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer closeLog()

	runner := localsystem.New(sys,
		localsystem.WithOutput(stdout),
		localsystem.WithStyles(localsystem.DefaultStyles(renderer)),
		localsystem.WithLogger(logger),
	)
	if _, err := runner.Run(flagSet.Args()); err != nil {
		var failure *localsystem.Failure
		if errors.As(err, &failure) {
			logger.Debug("launch failed", "step", failure.Step, "state", failure.State)
		}
		return 1
	}
	return 0
}

// pickLanguage chooses the message language: the --lang flag, then the
// POSIX locale variables, then the Windows UI language, then English.
func pickLanguage(flag string) string {
	candidates := []string{
		flag,
		os.Getenv("LC_ALL"),
		os.Getenv("LC_MESSAGES"),
		os.Getenv("LANG"),
		platform.UserLanguage(),
	}
	for _, c := range candidates {
		if lang := localsystem.MatchLanguage(c); lang != "" {
			return lang
		}
	}
	return "en"
}

// newRenderer returns a lipgloss renderer for w. Color is dropped when
// asked to, when NO_COLOR is set, or when w is not a terminal. On Windows
// the console is switched to VT processing until restore is called.
func newRenderer(w io.Writer, noColor bool) (*lipgloss.Renderer, func()) {
	output := termenv.NewOutput(w)
	renderer := lipgloss.NewRenderer(w)

	restore := func() {}
	if noColor || output.EnvNoColor() {
		renderer.SetColorProfile(termenv.Ascii)
	} else if reset, err := termenv.EnableVirtualTerminalProcessing(output); err == nil {
		restore = func() { _ = reset() }
	}
	return renderer, restore
}

// newLogger builds the step-trace logger. --log wins over --verbose; with
// neither, the trace is discarded.
func newLogger(opts cliOptions, stderr io.Writer) (*slog.Logger, func(), error) {
	handlerOpts := &slog.HandlerOptions{Level: slog.LevelDebug}

	switch {
	case opts.logFile:
		f, err := createLogFile(programName)
		if err != nil {
			return nil, nil, err
		}
		fmt.Fprintf(stderr, "trace: %s\n", f.Name())
		return slog.New(slog.NewJSONHandler(f, handlerOpts)), func() { f.Close() }, nil
	case opts.verbose:
		return slog.New(slog.NewTextHandler(stderr, handlerOpts)), func() {}, nil
	default:
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
}
