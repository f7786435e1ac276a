package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkpost"
	"github.com/fwojciec/linkpost/fs"
	"github.com/fwojciec/linkpost/gemini"
	"github.com/fwojciec/linkpost/goquery"
	lphttp "github.com/fwojciec/linkpost/http"
	"github.com/fwojciec/linkpost/pipeline"
	"github.com/fwojciec/linkpost/rod"
	lpslog "github.com/fwojciec/linkpost/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the environment before flags are parsed.
	// Empty skips loading.
	EnvFile string

	// ConfigPaths are YAML files supplying flag defaults.
	ConfigPaths []string

	// Now stamps generated posts. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile:     ".env",
		ConfigPaths: ConfigPaths,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := loadEnv(m.EnvFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkpost"),
		kong.Description("Turn a blog post into a LinkedIn post with Gemini"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAML, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		if linkpost.ErrorCode(err) == linkpost.ECONFIG {
			fmt.Fprintln(stderr, "FATAL ERROR: GEMINI_API_KEY environment variable not found.")
			fmt.Fprintln(stderr, "Please set it in your .env file or your environment.")
		}
		return err
	}

	url := cli.URL
	if url == "" {
		url, err = promptURL(stdin, stdout)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, rule)
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		if cfg.Render {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		}
		return fmt.Errorf("failed to start fetcher: %w", err)
	}
	defer fetcher.Close()

	client, err := gemini.NewClient(ctx, cfg.APIKey, cfg.BaseURL)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	p := &pipeline.Pipeline{
		Extractor: lpslog.NewLoggingExtractor(&pipeline.Extractor{
			Fetcher: lpslog.NewLoggingFetcher(fetcher, logger),
			Cleaner: lpslog.NewLoggingCleaner(goquery.NewCleaner(), logger),
		}, logger),
		Composer: lpslog.NewLoggingComposer(
			gemini.NewComposer(client.Models, cfg.Model, gemini.WithTimeout(cfg.GenerateTimeout)),
			logger,
		),
		Writer: lpslog.NewLoggingPostWriter(fs.NewWriter(cfg.OutputDir), logger),
		Now:    m.Now,
	}

	console := NewConsole(stdout)
	out, err := p.Run(ctx, url, console.Progress)
	if out != nil && out.State == pipeline.StateDone {
		console.Result(out, cfg.OutputDir, err)
	}
	return err
}

func newFetcher(cfg linkpost.Config) (linkpost.Fetcher, error) {
	if cfg.Render {
		return rod.NewFetcher(
			rod.WithFetchTimeout(cfg.FetchTimeout),
			rod.WithUserAgent(cfg.UserAgent),
		)
	}
	return lphttp.NewFetcher(
		lphttp.WithTimeout(cfg.FetchTimeout),
		lphttp.WithUserAgent(cfg.UserAgent),
	), nil
}

// promptURL asks for the article URL on stdin.
func promptURL(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprint(stdout, "Please enter the blog link (URL) you want to summarize: ")
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read URL: %w", err)
	}
	url := strings.TrimSpace(line)
	if url == "" {
		return "", linkpost.Errorf(linkpost.EINVALID, "URL required")
	}
	return url, nil
}
