package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/tinyrange/hidpi"
)

const usage = `hidpi - report display scale factors

USAGE:
  hidpi [flags] [surface ...]

Each surface is a native window or screen handle (HWND on Windows, NSWindow
or NSScreen pointer on macOS) in decimal or 0x-prefixed hex.

FLAGS:
  -enable        Declare the process DPI aware before querying
  -format FMT    Output format: text or yaml
  -config PATH   Read defaults from a YAML file
  -v             Enable debug logging

EXAMPLES:
  hidpi                      Show the desktop scale
  hidpi -enable 0x1a0b2c     Show the scale of one window after enabling awareness
  hidpi -format yaml         Print the report as YAML
`

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hidpi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	enable := fs.Bool("enable", false, "declare the process DPI aware before querying")
	format := fs.String("format", "", "output format: text or yaml (default: text on a terminal, yaml otherwise)")
	configPath := fs.String("config", "", "path to a YAML config file")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Installed before the config is read so its debug lines show up with -v.
	var level slog.LevelVar
	if *verbose {
		level.Set(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: &level})))

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["enable"] {
		*enable = cfg.Enable
	}
	if !set["v"] && cfg.Verbose {
		level.Set(slog.LevelDebug)
	}
	if *format == "" {
		*format = cfg.Format
	}
	if *format == "" {
		*format = formatYAML
		if isTerminal(stdout) {
			*format = formatText
		}
	}
	if err := validateFormat(*format); err != nil {
		return err
	}

	surfaceArgs := append(cfg.Surfaces, fs.Args()...)
	surfaces := make([]hidpi.Surface, 0, len(surfaceArgs))
	for _, arg := range surfaceArgs {
		s, err := parseSurface(arg)
		if err != nil {
			return err
		}
		surfaces = append(surfaces, s)
	}

	scaler, err := hidpi.Probe()
	if err != nil {
		return fmt.Errorf("probe display scaling: %w", err)
	}
	strategy := strategyName(scaler)
	slog.Debug("probed display scaling", "strategy", strategy)

	if *enable {
		scaler.EnableDPI()
		slog.Debug("enabled DPI awareness", "strategy", strategy)
	}

	return writeReport(stdout, buildReport(scaler, *enable, surfaces), *format)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "hidpi: %v\n", err)
		os.Exit(1)
	}
}
