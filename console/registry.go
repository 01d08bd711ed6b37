package console

import (
	"strconv"
	"strings"

	"courtsearch/browser"
)

// Kind is the coercion rule applied to a prompted argument.
type Kind string

const (
	KindString Kind = "str"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
)

// Param is a single argument a command prompts for.
type Param struct {
	Name string
	Kind Kind
}

// Command is a registry entry: a verb, its prompted parameters and the
// action run against the live session.
type Command struct {
	Name   string
	Params []Param
	Run    func(sess browser.Session, args []string) error
}

var registry = map[string]Command{
	"OPEN_URL": {
		Name:   "OPEN_URL",
		Params: []Param{{Name: "url", Kind: KindString}},
		Run: func(sess browser.Session, args []string) error {
			url := args[0]
			// a fully qualified URL is required, default the scheme
			if url != "" && !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
				url = "https://" + url
			}
			return sess.Navigate(url)
		},
	},
	"FILL": {
		Name: "FILL",
		Params: []Param{
			{Name: "selector", Kind: KindString},
			{Name: "value", Kind: KindString},
		},
		Run: func(sess browser.Session, args []string) error {
			return sess.Fill(args[0], args[1])
		},
	},
	"CLICK": {
		Name:   "CLICK",
		Params: []Param{{Name: "selector", Kind: KindString}},
		Run: func(sess browser.Session, args []string) error {
			return sess.Click(args[0])
		},
	},
}

// coerce validates user input against the parameter kind. The value is kept
// as the raw string; commands parse what they need.
func coerce(s string, kind Kind) (string, error) {
	switch kind {
	case KindString:
		return s, nil
	case KindFloat:
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return "", err
		}
		return s, nil
	case KindBool:
		switch strings.ToLower(s) {
		case "true", "false":
			return strings.ToLower(s), nil
		}
		return "", strconv.ErrSyntax
	}
	return s, nil
}
