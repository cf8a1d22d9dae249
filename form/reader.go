// SPDX-License-Identifier: MIT

package form

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// commentMark starts a comment that runs to the end of the line.
const commentMark = "#"

// ReadSystem reads one equation per line: the coefficients followed by the
// right-hand side. Cells are separated by whitespace, ',' or '|', so
// "2 1 | 3" and "2,1,3" are the same row. Blank lines and comments are
// skipped. Cells are returned unparsed; see ParseSystem.
//
// Errors:
//   - ErrInvalidInput when there are no rows, a row has fewer than two cells,
//     or rows differ in length.
//   - read errors from r.
func ReadSystem(r io.Reader) ([][]string, []string, error) {
	var (
		a    [][]string
		b    []string
		want int
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if k := strings.Index(text, commentMark); k >= 0 {
			text = text[:k]
		}
		cells := strings.FieldsFunc(text, isSeparator)
		if len(cells) == 0 {
			continue
		}
		if len(cells) < 2 {
			return nil, nil, fmt.Errorf("line %d: need coefficients and a right-hand side: %w", line, ErrInvalidInput)
		}
		if want == 0 {
			want = len(cells)
		} else if len(cells) != want {
			return nil, nil, fmt.Errorf("line %d: %d cells, want %d: %w", line, len(cells), want, ErrInvalidInput)
		}
		a = append(a, cells[:len(cells)-1])
		b = append(b, cells[len(cells)-1])
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read system: %w", err)
	}
	if len(a) == 0 {
		return nil, nil, fmt.Errorf("no equations: %w", ErrInvalidInput)
	}

	return a, b, nil
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == '|'
}
