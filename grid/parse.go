package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrRaggedRows = errors.New("grid: rows have different lengths")

// Char is a grid cell holding a single character. It prints as the
// character rather than its code point.
type Char rune

func (c Char) String() string { return string(rune(c)) }

// Parse builds a grid from newline separated rows, mapping each rune through
// cell. The first line becomes the highest Y.
func Parse[T any](text string, cell func(rune) T) (*Grid[T], error) {
	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	width := -1
	var data []T
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		n := utf8.RuneCountInString(line)
		if width < 0 {
			width = n
			data = make([]T, 0, width*len(lines))
		} else if n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, n, width)
		}
		for _, r := range line {
			data = append(data, cell(r))
		}
	}
	return New(data, width)
}

// Chars parses text into a grid of characters.
func Chars(text string) (*Grid[Char], error) {
	return Parse(text, func(r rune) Char { return Char(r) })
}
