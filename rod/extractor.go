// Package rod implements outlet extraction using Chrome browser automation.
package rod

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
	"github.com/wkleong/outletmap"
	"github.com/wkleong/outletmap/goquery"
)

// DefaultURL is the public store locator listing page.
const DefaultURL = "https://subway.com.my/find-a-subway"

// DefaultWait bounds the wait for the listing container to render.
const DefaultWait = 15 * time.Second

// containerSelector matches the listing container the locator renders
// client-side.
const containerSelector = "#fp_locationlist"

// Ensure Extractor implements outletmap.Extractor at compile time.
var _ outletmap.Extractor = (*Extractor)(nil)

// Extractor retrieves outlet listings by driving a headless Chrome session.
// One Extractor owns one browser; Extract must not be called concurrently
// against the same Extractor. Concurrent runs require independent
// Extractors.
type Extractor struct {
	browser *rod.Browser
	url     string
	wait    time.Duration
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithURL overrides the listing page URL. Used in tests to point the
// extractor at a local fixture server.
func WithURL(url string) Option {
	return func(e *Extractor) {
		e.url = url
	}
}

// WithWait overrides the bounded wait for the listing container.
func WithWait(d time.Duration) Option {
	return func(e *Extractor) {
		e.wait = d
	}
}

// NewExtractor creates a new Extractor that launches a headless Chrome
// browser. Close must be called when the Extractor is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewExtractor(opts ...Option) (*Extractor, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	e := &Extractor{
		browser: browser,
		url:     DefaultURL,
		wait:    DefaultWait,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Extract loads the listing page, waits for the listing container, parses
// every listing node, and returns outlets whose address contains
// regionFilter as a case-sensitive substring, in source order.
//
// The browser page is released on every exit path.
func (e *Extractor) Extract(ctx context.Context, regionFilter string) ([]*outletmap.Outlet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// stealth.Page avoids the locator's headless-browser detection.
	page, err := stealth.Page(e.browser)
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(e.url); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", e.url, err)
	}

	// The listing is rendered client-side. Bounded wait: if the container
	// never appears the whole run fails, but no partial records are lost
	// because none were produced yet.
	container, err := page.Timeout(e.wait).Element(containerSelector)
	if err != nil {
		return nil, outletmap.Errorf(outletmap.ETIMEOUT,
			"listing container %q did not render within %s", containerSelector, e.wait)
	}

	html, err := container.HTML()
	if err != nil {
		return nil, fmt.Errorf("reading listing container: %w", err)
	}

	outlets, err := goquery.ParseOutlets(html)
	if err != nil {
		return nil, err
	}

	var filtered []*outletmap.Outlet
	for _, o := range outlets {
		if strings.Contains(o.Address, regionFilter) {
			filtered = append(filtered, o)
		}
	}

	return filtered, nil
}

// Close releases browser resources.
func (e *Extractor) Close() error {
	return e.browser.Close()
}
