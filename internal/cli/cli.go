// Package cli runs the searchlist binary: flags, config, items, the program.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"searchlist/internal/config"
	"searchlist/internal/source"
	"searchlist/internal/ui"
)

const logFileName = "searchlist.log"

// Exit codes
const (
	ExitConfirmed = 0
	ExitCanceled  = 1
	ExitUsage     = 2
)

// Options holds the command line flags
type Options struct {
	ConfigPath  string
	File        string
	MaxHeight   int
	NoScrollbar bool
	NoQuery     bool
	Size        string
	Summary     bool

	set map[string]bool
}

// ParseFlags parses args, not including the program name
func ParseFlags(args []string, output io.Writer) (Options, error) {
	var o Options
	fs := flag.NewFlagSet("searchlist", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.ConfigPath, "config", "", "Config file (default: user config dir)")
	fs.StringVar(&o.File, "file", "", "Read items from file instead of stdin")
	fs.IntVar(&o.MaxHeight, "max-height", 0, "Maximum number of visible rows")
	fs.BoolVar(&o.NoScrollbar, "no-scrollbar", false, "Hide the scrollbar")
	fs.BoolVar(&o.NoQuery, "no-query", false, "Hide the search input")
	fs.StringVar(&o.Size, "size", "", "List size: small, medium or large")
	fs.BoolVar(&o.Summary, "summary", false, "Show a summary until the first search")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// LoadConfig loads -config, or the default config file when it exists
func (o Options) LoadConfig() (*config.Config, error) {
	if o.ConfigPath != "" {
		svc := config.NewConfigServiceAt(o.ConfigPath)
		return svc.LoadFromPath(svc.Path())
	}
	return config.NewConfigService().Load()
}

// Apply overrides cfg with the flags given on the command line
func (o Options) Apply(cfg *config.Config) error {
	if o.set["max-height"] {
		cfg.List.MaxHeight = o.MaxHeight
	}
	if o.set["no-scrollbar"] {
		cfg.List.Scrollbar = !o.NoScrollbar
	}
	if o.set["no-query"] {
		cfg.List.Query = !o.NoQuery
	}
	if o.set["size"] {
		cfg.List.Size = o.Size
	}
	return cfg.Validate()
}

// ReadItems reads the items from -file, or from stdin
func (o Options) ReadItems(stdin io.Reader) ([]string, error) {
	if o.File == "" {
		return source.ReadLines(stdin)
	}
	f, err := os.Open(o.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open items: %w", err)
	}
	defer f.Close()
	return source.ReadLines(f)
}

// Run runs the binary and returns its exit code. The list draws on stderr;
// the confirmed item goes to stdout.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		prev := log.Writer()
		log.SetOutput(logFile)
		defer log.SetOutput(prev)
	}

	opts, err := ParseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitConfirmed
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	cfg, err := opts.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return ExitUsage
	}
	if err := opts.Apply(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	items, err := opts.ReadItems(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCanceled
	}
	log.Printf("Read %d items", len(items))

	var srcOpts []source.Option
	if opts.Summary {
		srcOpts = append(srcOpts, source.WithSummary())
	}
	model, err := ui.NewModel(cfg, source.NewLines(items, srcOpts...))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(stderr),
		tea.WithContext(ctx),
	}
	if opts.File == "" {
		// stdin carries the items, keys come from the terminal
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ExitCanceled
		}
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return ExitCanceled
	}

	item, ok := model.Result()
	if !ok {
		return ExitCanceled
	}
	fmt.Fprintln(stdout, item)
	return ExitConfirmed
}
