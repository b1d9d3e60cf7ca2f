package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alateas/vybory"
	"github.com/alateas/vybory/cache"
	"github.com/alateas/vybory/crawl"
	"github.com/alateas/vybory/goquery"
	vyboryhttp "github.com/alateas/vybory/http"
	vyboryslog "github.com/alateas/vybory/slog"
	"github.com/alecthomas/kong"
	"github.com/google/uuid"
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
	// Fetcher replaces the HTTP fetcher when set. Used for end-to-end testing.
	Fetcher vybory.Fetcher

	// RunID stamps every output record. Generated when empty.
	RunID string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vybory"),
		kong.Description("Extract election results from the election-commission archive"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"base_url":   vybory.DefaultBaseURL,
			"user_agent": vyboryhttp.DefaultUserAgent,
			"rate":       fmt.Sprint(crawl.DefaultRequestsPerSecond),
			"max_depth":  fmt.Sprint(crawl.DefaultMaxDepth),
			"charset":    vyboryhttp.DefaultCharset,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vybory --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	runID := m.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	deps.Logger = deps.Logger.With("run", runID)
	deps.Output = NewRecordWriter(stdout, runID)

	var fetcher vybory.Fetcher = m.Fetcher
	if fetcher == nil {
		opts := []vyboryhttp.Option{
			vyboryhttp.WithTimeout(cli.Timeout),
			vyboryhttp.WithUserAgent(cli.UserAgent),
		}
		if cli.Charset == AutoCharset {
			opts = append(opts, vyboryhttp.WithDetectCharset())
		} else {
			opts = append(opts, vyboryhttp.WithCharset(cli.Charset))
		}
		fetcher = vyboryhttp.NewFetcher(opts...)
	}
	fetcher = cache.NewFetcher(vyboryslog.NewLoggingFetcher(fetcher, deps.Logger))
	defer fetcher.Close()

	deps.BaseURL = cli.BaseURL
	deps.Fetcher = fetcher
	deps.Parser = vyboryslog.NewLoggingParser(goquery.NewParser(), deps.Logger)
	deps.RateLimiter = crawl.NewDomainLimiter(cli.Rate)

	return kongCtx.Run(deps)
}
