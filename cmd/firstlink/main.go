package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/firstlink"
	"github.com/fwojciec/firstlink/crawl"
	"github.com/fwojciec/firstlink/goquery"
	flhttp "github.com/fwojciec/firstlink/http"
	flslog "github.com/fwojciec/firstlink/slog"
)

// usageExitCode is returned for help and invalid arguments.
const usageExitCode = 2

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports errors on stderr itself.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if firstlink.ErrorCode(err) == firstlink.EUSAGE {
			os.Exit(usageExitCode)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Crawl configuration. The start URL is overridden by --start-link.
	Config crawl.Config

	// Fetcher used for page retrieval. Defaults to an HTTP fetcher.
	Fetcher firstlink.Fetcher

	// LogLevel is the minimum level of diagnostic logs written to stderr.
	LogLevel slog.Level
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config:   crawl.DefaultConfig(),
		LogLevel: slog.LevelWarn,
	}
}

// Run executes the CLI with the given arguments.
// Help and argument errors print usage and return an EUSAGE error.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("firstlink"),
		kong.Description("Follow the first link of encyclopedia articles until reaching Philosophy"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to create parser: %v\n", err)
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if wantsHelp(args) {
		_, _ = parser.Parse([]string{"--help"})
		return firstlink.Errorf(firstlink.EUSAGE, "help requested")
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = parser.Parse([]string{"--help"})
		return firstlink.Errorf(firstlink.EUSAGE, "%v", err)
	}

	cfg := m.Config
	if cli.StartLink != "" {
		cfg.StartURL = cli.StartLink
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: m.LogLevel}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = flhttp.NewFetcher()
	}
	defer fetcher.Close()

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Crawler: &crawl.Crawler{
			Fetcher: flslog.NewLoggingFetcher(fetcher, logger),
			Parser:  flslog.NewLoggingParser(goquery.NewParser(), logger),
		},
	}

	cmd := &FollowCmd{Config: cfg}
	return cmd.Run(deps)
}

// wantsHelp reports whether a help flag appears in flag position.
// The argument after a start link flag is its value and is skipped.
func wantsHelp(args []string) bool {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--":
			return false
		case "-h", "--help":
			return true
		case "-s", "--start-link", "--start_link":
			i++
		}
	}
	return false
}
