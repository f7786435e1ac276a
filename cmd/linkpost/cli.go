package main

import (
	"time"

	"github.com/fwojciec/linkpost"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL             string        `arg:"" optional:"" help:"Blog post URL (prompted for when omitted)"`
	APIKey          string        `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model           string        `short:"m" default:"gemini-2.5-flash" help:"Gemini model"`
	Output          string        `short:"o" default:"output_summaries" help:"Directory for saved posts"`
	FetchTimeout    time.Duration `name:"fetch-timeout" default:"15s" help:"Article fetch timeout"`
	GenerateTimeout time.Duration `name:"generate-timeout" default:"60s" help:"Post generation timeout"`
	UserAgent       string        `name:"user-agent" help:"User-Agent sent when fetching the article"`
	Render          bool          `short:"r" help:"Render the article in headless Chrome before extracting"`
	Verbose         bool          `short:"v" help:"Log each step to stderr"`
	BaseURL         string        `name:"base-url" env:"GEMINI_BASE_URL" hidden:"" help:"Gemini API endpoint override"`
}

// Config converts parsed flags into a linkpost.Config.
func (c *CLI) Config() linkpost.Config {
	cfg := linkpost.DefaultConfig()
	cfg.APIKey = c.APIKey
	cfg.Model = c.Model
	cfg.OutputDir = c.Output
	cfg.FetchTimeout = c.FetchTimeout
	cfg.GenerateTimeout = c.GenerateTimeout
	cfg.Render = c.Render
	cfg.BaseURL = c.BaseURL
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	return cfg
}
