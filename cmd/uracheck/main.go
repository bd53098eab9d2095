package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ysaito/uracheck"
	"github.com/ysaito/uracheck/anthropic"
	"github.com/ysaito/uracheck/goquery"
	"github.com/ysaito/uracheck/lru"
	uraslog "github.com/ysaito/uracheck/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Analyzer overrides the API-backed relevance analyzer when non-nil.
	// Used by end-to-end tests.
	Analyzer uracheck.RelevanceAnalyzer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("uracheck"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'uracheck --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire the extractor registry, with logging when requested
	var registry uracheck.ExtractorRegistry = goquery.NewRegistry()
	if cli.Verbose {
		registry = uraslog.NewLoggingRegistry(registry, logger)
	}
	deps.Registry = registry

	// Wire the relevance analyzer for the resultpage command
	if cmd == "resultpage" {
		analyzer := m.Analyzer
		if analyzer == nil {
			apiKey := os.Getenv("ANTHROPIC_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "ANTHROPIC_API_KEY environment variable not set. Get an API key at https://console.anthropic.com/")
				return fmt.Errorf("ANTHROPIC_API_KEY not set")
			}
			analyzer = anthropic.NewAnalyzer(apiKey, os.Getenv("URACHECK_MODEL"))
		}

		analyzer = lru.NewCachingAnalyzer(analyzer, lru.NewCache(lru.DefaultSize, lru.DefaultTTL))
		if cli.Verbose {
			analyzer = uraslog.NewLoggingAnalyzer(analyzer, logger)
		}
		deps.Analyzer = analyzer
	}

	return kongCtx.Run(deps)
}
