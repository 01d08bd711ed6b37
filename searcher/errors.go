package searcher

import "errors"

// Every failure mode is fatal; the run aborts and the operator retries from
// scratch. Errors are matched with errors.Is after wrapping with step context.
var (
	ErrInputFormat     = errors.New("date input does not match mm/dd/yyyy")
	ErrSessionLaunch   = errors.New("browser session could not be started")
	ErrNavigation      = errors.New("page navigation failed")
	ErrElementNotFound = errors.New("expected page element not found")
)
