// Package browser wraps the playwright driver behind the small surface
// the scrapers need: headless pages with a rotating user agent.
package browser

import (
	"fmt"
	"time"

	useragent "github.com/EDDYCJY/fake-useragent"
	"github.com/playwright-community/playwright-go"
)

type Session struct {
	pw        *playwright.Playwright
	browser   playwright.Browser
	timeout   time.Duration
	userAgent string
}

// NewSession launches a headless Firefox shared by every page of a run.
// Image loading is disabled and the locale pinned to en-US so scraped
// text is not language-dependent.
func NewSession(timeout time.Duration, userAgent string) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	b, err := pw.Firefox.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		FirefoxUserPrefs: map[string]interface{}{
			"permissions.default.image": 2,
			"intl.accept_languages":     "en-US,en",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Session{
		pw:        pw,
		browser:   b,
		timeout:   timeout,
		userAgent: userAgent,
	}, nil
}

// NewPage opens a page in a fresh browser context with its own user
// agent. The returned cleanup closes both the page and its context.
func (s *Session) NewPage() (playwright.Page, func(), error) {
	ctx, err := s.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(s.pageUserAgent()),
		Locale:    playwright.String("en-US"),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(float64(s.timeout.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(s.timeout.Milliseconds()))

	cleanup := func() {
		page.Close()
		ctx.Close()
	}
	return page, cleanup, nil
}

func (s *Session) pageUserAgent() string {
	if s.userAgent != "" {
		return s.userAgent
	}
	return useragent.Firefox()
}

func (s *Session) Close() {
	if s.browser != nil {
		s.browser.Close()
	}
	if s.pw != nil {
		s.pw.Stop()
	}
}
