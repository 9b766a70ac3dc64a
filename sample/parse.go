package sample

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// delimiters accepted between the x and y fields of a data row: any
// mix of spaces, tabs, commas and semicolons, the common export
// formats of thermodynamic-integration pipelines.
const delimiters = " \t,;"

// ParseReader reads delimited (x, y) rows from r into a Set.
//
// Row grammar:
//   - empty lines and lines whose first non-blank byte is '#' are skipped
//   - every other line must split into at least two fields on any of
//     space, tab, ',' or ';' (runs of delimiters collapse); fields past
//     the second are ignored (data files often carry extra columns)
//   - fields are parsed with strconv.ParseFloat (locale-independent)
//
// Errors are reported with the 1-based line number and wrap ErrBadRow,
// ErrBadField or the underlying reader error.
//
// Complexity: O(total input) time, O(n) space for n parsed rows.
func ParseReader(r io.Reader) (Set, error) {
	var (
		set  Set
		line int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue // comment or blank row
		}

		fields := strings.FieldsFunc(text, func(c rune) bool {
			return strings.ContainsRune(delimiters, c)
		})
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: %w", line, ErrBadRow)
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, fields[0], ErrBadField)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, fields[1], ErrBadField)
		}

		set = append(set, Sample{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sample: read: %w", err)
	}

	return set, nil
}

// ParseFile opens path and parses it with ParseReader.
func ParseFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sample: open %s: %w", path, err)
	}
	defer f.Close()

	return ParseReader(f)
}
