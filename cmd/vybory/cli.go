package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alateas/vybory"
	"github.com/alateas/vybory/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Output      *RecordWriter
	BaseURL     string
	Fetcher     vybory.Fetcher
	Parser      vybory.PageParser
	RateLimiter vybory.DomainLimiter
}

// Walker returns a walker for elections of kind.
func (d *Dependencies) Walker(kind vybory.ElectionKind) *crawl.Walker {
	return &crawl.Walker{
		Fetcher:     d.Fetcher,
		Parser:      d.Parser,
		RateLimiter: d.RateLimiter,
		Kind:        kind,
	}
}

// AutoCharset selects encoding detection instead of a fixed charset.
const AutoCharset = "auto"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `short:"t" default:"10s" env:"VYBORY_TIMEOUT" help:"Fetch timeout per page"`
	Rate      float64       `default:"${rate}" env:"VYBORY_RATE" help:"Requests per second per host (0 disables limiting)"`
	BaseURL   string        `name:"base-url" default:"${base_url}" env:"VYBORY_BASE_URL" help:"Archive root URL"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" env:"VYBORY_USER_AGENT" help:"User-Agent header sent with requests"`
	Charset   string        `default:"${charset}" env:"VYBORY_CHARSET" help:"Page encoding, or \"auto\" to detect it from headers and <meta>"`
	Verbose   bool          `short:"v" env:"VYBORY_VERBOSE" help:"Log fetches and parses to stderr"`

	Summary    SummaryCmd    `cmd:"" help:"Print the country-level totals of an election"`
	Regions    RegionsCmd    `cmd:"" help:"Print the results of every region"`
	Expand     ExpandCmd     `cmd:"" help:"Print the areas one level below a page"`
	Walk       WalkCmd       `cmd:"" help:"Walk the area hierarchy and print every area"`
	Candidates CandidatesCmd `cmd:"" help:"List the registered candidates"`
}

// ElectionFlags select an election either by kind and year or by the URL
// of its landing page.
type ElectionFlags struct {
	Kind string `short:"k" default:"president" enum:"president,duma" env:"VYBORY_KIND" help:"Election kind (president, duma)"`
	Year int    `short:"y" env:"VYBORY_YEAR" help:"Election year"`
	URL  string `short:"u" name:"url" help:"Election landing page URL; overrides --year"`
}

// Locate returns the selected election kind and landing page URL.
func (f *ElectionFlags) Locate(baseURL string) (vybory.ElectionKind, string, error) {
	kind, err := vybory.LookupElectionKind(f.Kind)
	if err != nil {
		return vybory.ElectionKind{}, "", err
	}
	if f.URL != "" {
		return kind, f.URL, nil
	}
	if f.Year == 0 {
		return vybory.ElectionKind{}, "", vybory.Errorf(vybory.EINVALID, "--year or --url is required (%s years: %v)", kind.Name, kind.Years())
	}
	u, err := kind.ElectionURL(baseURL, f.Year)
	if err != nil {
		return vybory.ElectionKind{}, "", err
	}
	return kind, u, nil
}

// OpenElection locates the selected election and opens it.
func (f *ElectionFlags) OpenElection(deps *Dependencies) (*crawl.Election, error) {
	kind, electionURL, err := f.Locate(deps.BaseURL)
	if err != nil {
		return nil, err
	}
	return deps.Walker(kind).Open(deps.Ctx, electionURL)
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	ElectionFlags `embed:""`
}

// RegionsCmd is the "regions" subcommand.
type RegionsCmd struct {
	ElectionFlags `embed:""`
}

// ExpandCmd is the "expand" subcommand.
type ExpandCmd struct {
	ElectionFlags `embed:""`

	Page     string `arg:"" help:"URL of the area page to expand"`
	Indirect bool   `short:"i" help:"Page is a landing page; follow its link to the data page first"`
}

// WalkCmd is the "walk" subcommand.
type WalkCmd struct {
	ElectionFlags `embed:""`

	Depth    int  `short:"d" default:"${max_depth}" help:"Number of levels below the country to visit (at least 1)"`
	FailFast bool `name:"fail-fast" help:"Stop at the first area that fails instead of reporting it"`
}

// CandidatesCmd is the "candidates" subcommand.
type CandidatesCmd struct {
	ElectionFlags `embed:""`
}
