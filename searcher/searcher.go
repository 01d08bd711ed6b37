// Package searcher drives the case lookup site through its date-range search
// form, then hands the browser to the operator. The scripted part ends once
// the form is populated; solving the CAPTCHA and running the actual search
// stay manual.
package searcher

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mazen160/go-random"

	"courtsearch/browser"
)

type Searcher struct {
	cfg      Config
	launcher browser.Launcher
	out      io.Writer
	sleep    func(time.Duration)
}

func New(cfg Config, launcher browser.Launcher, out io.Writer) *Searcher {
	return &Searcher{
		cfg:      cfg,
		launcher: launcher,
		out:      out,
		sleep:    time.Sleep,
	}
}

// Run executes the scripted sequence: launch a visible session, navigate to
// the lookup site, refine the search form and fill the date range. The
// returned session is live and is never closed here, even on failure past
// launch; the operator owns the window from this point on.
func (s *Searcher) Run(dates DateRange) (browser.Session, error) {
	sess, err := s.launcher.Launch(browser.LaunchOptions{Headless: false})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionLaunch, err)
	}

	if err := sess.Navigate(s.cfg.URL); err != nil {
		return sess, fmt.Errorf("%w: %s: %v", ErrNavigation, s.cfg.URL, err)
	}

	if err := s.refineSearch(sess); err != nil {
		return sess, err
	}

	start, end := dates.Format()
	if err := sess.Fill(SelDateBegin, start); err != nil {
		return sess, fmt.Errorf("%w: start date input: %v", ErrElementNotFound, err)
	}
	s.pause()

	if err := sess.Fill(SelDateEnd, end); err != nil {
		return sess, fmt.Errorf("%w: end date input: %v", ErrElementNotFound, err)
	}
	s.pause()

	if err := s.refineAdvanced(sess); err != nil {
		return sess, err
	}

	return sess, nil
}

// refineSearch applies the coarse selections that are available before the
// Case Type tab is active, then switches to that tab. Order matters: the
// division and location lists repopulate after the department is chosen.
func (s *Searcher) refineSearch(sess browser.Session) error {
	selections := []struct {
		name     string
		selector string
		labels   []string
	}{
		{"court department", SelCourtDepartment, s.cfg.CourtDepartments},
		{"court division", SelCourtDivision, s.cfg.CourtDivisions},
		{"court location", SelCourtLocation, s.cfg.CourtLocations},
		{"results per page", SelPageSize, []string{s.cfg.ResultsPerPage}},
	}

	for _, sel := range selections {
		if err := sess.SelectByText(sel.selector, sel.labels); err != nil {
			return fmt.Errorf("%w: %s dropdown: %v", ErrElementNotFound, sel.name, err)
		}
		s.pause()
	}

	if err := sess.Click(SelCaseTypeTab); err != nil {
		return fmt.Errorf("%w: case type tab: %v", ErrElementNotFound, err)
	}
	s.pause()

	return nil
}

// refineAdvanced applies the Case Type tab selections that sit below the
// date inputs. The search submit itself is deliberately never clicked.
func (s *Searcher) refineAdvanced(sess browser.Session) error {
	selections := []struct {
		name     string
		selector string
		labels   []string
	}{
		{"case type", SelCaseType, s.cfg.CaseTypes},
		{"city", SelCity, s.cfg.Cities},
		{"case status", SelStatus, s.cfg.Statuses},
		{"party type", SelPartyType, s.cfg.PartyTypes},
	}

	for _, sel := range selections {
		if err := sess.SelectByText(sel.selector, sel.labels); err != nil {
			return fmt.Errorf("%w: %s dropdown: %v", ErrElementNotFound, sel.name, err)
		}
		s.pause()
	}

	return nil
}

// RenderPlan prints the populated search setup so the operator can eyeball
// it before taking over.
func (s *Searcher) RenderPlan(dates DateRange) {
	start, end := dates.Format()

	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Start date", start},
		{"End date", end},
		{"Department", strings.Join(s.cfg.CourtDepartments, ", ")},
		{"Division", strings.Join(s.cfg.CourtDivisions, ", ")},
		{"Location", strings.Join(s.cfg.CourtLocations, ", ")},
		{"Case types", strings.Join(s.cfg.CaseTypes, ", ")},
		{"Cities", strings.Join(s.cfg.Cities, ", ")},
		{"Statuses", strings.Join(s.cfg.Statuses, ", ")},
		{"Party types", strings.Join(s.cfg.PartyTypes, ", ")},
		{"Per page", s.cfg.ResultsPerPage},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// pause sleeps for a jittered interval between form interactions so the
// driven session does not hammer the site at machine speed.
func (s *Searcher) pause() {
	minMs := int(s.cfg.MinSleepSec * 1000)
	maxMs := minMs + int(s.cfg.MinSleepSec*s.cfg.JitterFactor*1000)
	if maxMs <= minMs {
		s.sleep(time.Duration(minMs) * time.Millisecond)
		return
	}

	ms, err := random.IntRange(minMs, maxMs+1)
	if err != nil {
		ms = minMs
	}
	s.sleep(time.Duration(ms) * time.Millisecond)
}
