// Package rod implements linkpost.Fetcher with a headless Chrome browser for
// pages that only produce their article text after JavaScript runs.
package rod

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fwojciec/linkpost"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Ensure Fetcher implements linkpost.Fetcher at compile time.
var _ linkpost.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using a stealth-patched browser page per
// request. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout   time.Duration
	userAgent string

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds navigation plus page load. Defaults to
// linkpost.DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher launches a headless Chrome browser. Close must be called when
// the Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   linkpost.DefaultFetchTimeout,
		userAgent: linkpost.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, linkpost.Errorf(linkpost.ECONFIG, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, linkpost.Errorf(linkpost.ECONFIG, "connecting to browser: %v", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to url and returns the serialized DOM once the page has
// loaded. A non-2xx status on the main document is reported as EHTTPSTATUS.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	browser, err := f.current()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, classify(err, url)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := stealth.Page(browser)
	if err != nil {
		return nil, linkpost.Errorf(linkpost.ENETWORK, "opening page: %v", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return nil, classify(err, url)
	}

	var status int
	waitDocument := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(url); err != nil {
		return nil, classify(err, url)
	}
	waitDocument()
	if err := ctx.Err(); err != nil {
		return nil, classify(err, url)
	}
	if status < 200 || status > 299 {
		return nil, linkpost.Errorf(linkpost.EHTTPSTATUS, "HTTP %d for %s", status, url)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, classify(err, url)
	}
	html, err := page.HTML()
	if err != nil {
		return nil, classify(err, url)
	}
	return []byte(html), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 once closed.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

func (f *Fetcher) current() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, linkpost.Errorf(linkpost.EINVALID, "fetcher is closed")
	}
	return f.browser, nil
}

func classify(err error, url string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return linkpost.Errorf(linkpost.ETIMEOUT, "timed out fetching %s", url)
	}
	return linkpost.Errorf(linkpost.ENETWORK, "fetching %s: %v", url, err)
}
