package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/iliyamo/theater-seating/internal/model"
)

// readLine returns the next line of input without its line ending.  A
// final line without a newline is returned normally; io.EOF is returned
// once nothing is left.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseInt reads the first whitespace-separated field of line as an
// integer.  Anything after it is ignored.
func parseInt(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseSeat reads "row column" (e.g. "2 5") into a 1-based Seat.  A comma
// between the numbers is accepted.  Fields after the second are ignored.
func parseSeat(line string) (model.Seat, bool) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) < 2 {
		return model.Seat{}, false
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Seat{}, false
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Seat{}, false
	}
	return model.Seat{Row: row, Column: col}, true
}

// confirmed reports whether line starts with y or Y.
func confirmed(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && (line[0] == 'y' || line[0] == 'Y')
}
