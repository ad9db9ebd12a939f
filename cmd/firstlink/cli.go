package main

import (
	"context"
	"io"

	"github.com/fwojciec/firstlink/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	StartLink string `short:"s" name:"start-link" aliases:"start_link" placeholder:"URL" help:"Article URL to start from (default: a random article)"`
}

// FollowCmd follows first links from the start page.
type FollowCmd struct {
	Config crawl.Config
}
