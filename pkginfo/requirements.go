package pkginfo

import (
	"bufio"
	"io"
	"strings"
)

// CommentPrefix starts a line in a requirements file that is ignored.
const CommentPrefix = "#"

// ReadRequirements reads one requirement per line from r.  Surrounding whitespace is trimmed,
// and blank lines and comment lines are dropped.  Order is preserved.
func ReadRequirements(r io.Reader) ([]string, error) {
	var (
		requirements []string
		scanner      = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		requirements = append(requirements, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return requirements, nil
}
