package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/firstlink"
)

// Ensure LoggingParser implements firstlink.ArticleParser.
var _ firstlink.ArticleParser = (*LoggingParser)(nil)

// LoggingParser wraps an ArticleParser and logs every parse.
type LoggingParser struct {
	next   firstlink.ArticleParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next firstlink.ArticleParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(html string) (article firstlink.Article, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		p.logger.Log(context.Background(), level, "parse",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}
