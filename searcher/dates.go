package searcher

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// DateLayout is the only accepted input format; the search form expects the
// same rendering back.
const DateLayout = "01/02/2006"

// DateRange is the operator-supplied filing date span. No ordering is
// enforced: a start after the end is passed through for the site to accept
// or reject.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Format renders both dates the way the form wants them.
func (r DateRange) Format() (start, end string) {
	return r.Start.Format(DateLayout), r.End.Format(DateLayout)
}

// ParseDate parses a mm/dd/yyyy string into a calendar date. Anything that
// does not match the layout, including out-of-range months or days, fails
// with ErrInputFormat rather than being corrected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInputFormat, s)
	}
	return t, nil
}

// PromptDateRange asks the operator for the start and end dates, one line
// each. The first bad input aborts the run.
func PromptDateRange(in io.Reader, out io.Writer) (DateRange, error) {
	scanner := bufio.NewScanner(in)

	start, err := promptDate(scanner, out, "Start date (mm/dd/yyyy): ")
	if err != nil {
		return DateRange{}, err
	}
	end, err := promptDate(scanner, out, "End date (mm/dd/yyyy): ")
	if err != nil {
		return DateRange{}, err
	}

	return DateRange{Start: start, End: end}, nil
}

func promptDate(scanner *bufio.Scanner, out io.Writer, prompt string) (time.Time, error) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return time.Time{}, err
		}
		return time.Time{}, fmt.Errorf("%w: no input", ErrInputFormat)
	}
	return ParseDate(scanner.Text())
}
