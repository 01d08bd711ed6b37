// Package console is a small interactive loop for driving a live browser
// session by hand: look up a typed verb, prompt for its arguments, run it.
// Useful for poking at the site when the scripted workflow is not enough.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"courtsearch/browser"
)

// maxInvalid is how many unknown commands in a row are tolerated before the
// console gives up and shuts the session down.
const maxInvalid = 2

// Loop reads commands until the operator quits (EXIT, CLOSE or BREAK), too
// many unknown commands arrive in a row, or input is exhausted. Quitting
// closes the session; this is the one place that ever does.
func Loop(sess browser.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	invalid := 0

	for {
		fmt.Fprint(out, "Command: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return sess.Close()
		}

		verb := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		switch verb {
		case "EXIT", "CLOSE", "BREAK":
			return sess.Close()
		}

		cmd, ok := registry[verb]
		if !ok {
			invalid++
			if invalid > maxInvalid {
				fmt.Fprintln(out, "Invalid command, shutting down.")
				return sess.Close()
			}
			fmt.Fprintln(out, "Invalid command, please retry...")
			continue
		}
		invalid = 0

		args, err := promptArgs(scanner, out, cmd)
		if err != nil {
			fmt.Fprintf(out, "bad argument: %v\n", err)
			continue
		}

		if err := cmd.Run(sess, args); err != nil {
			fmt.Fprintf(out, "command failed: %v\n", err)
		}
	}
}

// promptArgs asks for each declared parameter. A value that fails coercion
// gets a single retry before the command is abandoned.
func promptArgs(scanner *bufio.Scanner, out io.Writer, cmd Command) ([]string, error) {
	args := make([]string, 0, len(cmd.Params))

	for _, p := range cmd.Params {
		value, err := promptOne(scanner, out, p)
		if err != nil {
			fmt.Fprintf(out, "expected a %s, please retry...\n", p.Kind)
			value, err = promptOne(scanner, out, p)
			if err != nil {
				return nil, err
			}
		}
		args = append(args, value)
	}

	return args, nil
}

func promptOne(scanner *bufio.Scanner, out io.Writer, p Param) (string, error) {
	fmt.Fprintf(out, "%s (%s): ", p.Name, p.Kind)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return coerce(strings.TrimSpace(scanner.Text()), p.Kind)
}
