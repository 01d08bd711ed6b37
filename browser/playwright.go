package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

const defaultTimeout = 15 * time.Second

// Playwright launches Chromium sessions through playwright-go.
type Playwright struct {
	// Timeout bounds element lookups and navigation. Zero means the
	// default of 15s.
	Timeout time.Duration
}

type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	timeout float64 // milliseconds
}

func (l Playwright) Launch(opts LaunchOptions) (Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, err
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, err
	}

	page, err := b.NewPage()
	if err != nil {
		pw.Stop()
		return nil, err
	}

	timeout := l.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &playwrightSession{
		pw:      pw,
		browser: b,
		page:    page,
		timeout: float64(timeout.Milliseconds()),
	}, nil
}

func (s *playwrightSession) Navigate(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(s.timeout),
	})
	return err
}

// locate waits for the selector to be visible so that a missing element
// surfaces as an error instead of an indefinite hang.
func (s *playwrightSession) locate(selector string) (playwright.Locator, error) {
	loc := s.page.Locator(selector)
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(s.timeout),
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *playwrightSession) Fill(selector, value string) error {
	loc, err := s.locate(selector)
	if err != nil {
		return err
	}
	if err := loc.Fill(value); err != nil {
		return err
	}
	// Tab commits the value so the page's change handlers fire.
	return loc.Press("Tab")
}

func (s *playwrightSession) SelectByText(selector string, labels []string) error {
	loc, err := s.locate(selector)
	if err != nil {
		return err
	}
	_, err = loc.SelectOption(playwright.SelectOptionValues{Labels: &labels})
	return err
}

func (s *playwrightSession) Click(selector string) error {
	loc, err := s.locate(selector)
	if err != nil {
		return err
	}
	return loc.Click()
}

func (s *playwrightSession) Close() error {
	if err := s.browser.Close(); err != nil {
		return err
	}
	return s.pw.Stop()
}
