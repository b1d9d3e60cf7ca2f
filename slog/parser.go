package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/alateas/vybory"
)

// Ensure LoggingParser implements vybory.PageParser.
var _ vybory.PageParser = (*LoggingParser)(nil)

// LoggingParser wraps a PageParser with debug logging.
type LoggingParser struct {
	next   vybory.PageParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next vybory.PageParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs which page structures
// were found.
func (p *LoggingParser) Parse(html string, url string) (page vybory.Page, err error) {
	defer func(begin time.Time) {
		if !p.logger.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if page != nil {
			_, breakdown := page.BreakdownTable()
			_, results := page.ResultsTable()
			attrs = append(attrs, "breakdown", breakdown, "results", results)
		}
		p.logger.Debug("parse", attrs...)
	}(time.Now())
	return p.next.Parse(html, url)
}
