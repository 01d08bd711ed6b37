// Package browser abstracts the browser engine behind the small set of
// operations the search workflow needs. Anything that can launch a visible
// window, navigate, set field values, select options and click satisfies it.
package browser

// LaunchOptions controls how a session is started. The workflow always runs
// with Headless false since a human has to interact with the window later.
type LaunchOptions struct {
	Headless bool
}

// Launcher starts browser sessions.
type Launcher interface {
	Launch(opts LaunchOptions) (Session, error)
}

// Session is a live browser window with a single open page. Selector
// arguments use the engine's selector syntax.
//
// Close exists for the interactive console; the search workflow never calls
// it, the session deliberately outlives the scripted steps.
type Session interface {
	Navigate(url string) error
	Fill(selector, value string) error
	SelectByText(selector string, labels []string) error
	Click(selector string) error
	Close() error
}
