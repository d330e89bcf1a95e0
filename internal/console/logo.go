package console

import (
	"fmt"
	"io"
)

const clearScreen = "\x1b[H\x1b[2J"

const logo = `
  _____ _                _              ___            _   _
 |_   _| |_  ___ __ _ __| |_ ___ _ _   / __| ___ __ _ | |_(_)_ _  __ _
   | | | ' \/ -_) _' / _|  _/ -_) '_|  \__ \/ -_) _' ||  _| | ' \/ _' |
   |_| |_||_\___\__,_\__|\__\___|_|    |___/\___\__,_| \__|_|_||_\__, |
                                                                 |___/
`

// header clears the screen (when enabled) and prints the banner and the
// title of the current screen.
func (c *Console) header(title string) {
	if c.clear {
		fmt.Fprint(c.out, clearScreen)
	}
	fmt.Fprint(c.out, logo)
	fmt.Fprintf(c.out, "\n%s:\n\n", title)
}

// printLines writes each line followed by a newline.
func printLines(w io.Writer, lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
