package main

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/firstlink"
	"github.com/fwojciec/firstlink/crawl"
)

// Run executes the follow command, printing one line per visited page and
// one line for the terminal state.
func (c *FollowCmd) Run(deps *Dependencies) error {
	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressVisiting:
			fmt.Fprintf(deps.Stdout, "visiting link: %s\n", e.URL)
		case crawl.ProgressAtTarget:
			fmt.Fprintf(deps.Stdout, "at %s!\n", articleName(e.URL))
		case crawl.ProgressDeadEnd:
			fmt.Fprintf(deps.Stdout, "at dead end. current url: %s\n", e.URL)
		}
	}

	if _, err := deps.Crawler.Run(deps.Ctx, c.Config, progress); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", firstlink.ErrorMessage(err))
		return err
	}
	return nil
}

// articleName returns the lower-cased article title of an article URL,
// e.g. "philosophy" for ".../wiki/Philosophy".
func articleName(rawURL string) string {
	name := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		name = path.Base(u.Path)
	}
	return strings.ToLower(strings.ReplaceAll(name, "_", " "))
}
