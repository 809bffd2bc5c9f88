package grid

import (
	"fmt"
	"strings"
)

// Parse reads one grid row per line, one ASCII digit per cell.
// The Elevation alphabet accepts '0'..'9'; the Cost alphabet accepts '1'..'9'.
// Windows line endings and trailing blank lines are tolerated.
//
// Every failure wraps ErrMalformedInput and names the offending line/column:
// an unexpected character, a line whose length differs from the first one,
// empty input, or dimensions that disagree with WithDimensions.
func Parse(text string, alphabet Alphabet, opts ...ParseOption) (*Grid, error) {
	var cfg parseOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	lines := splitLines(text)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(lines[0]), len(lines)
	if err := cfg.check(w, h); err != nil {
		return nil, err
	}

	lo := alphabet.minDigit()
	cells := make([]uint8, 0, w*h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, y+1, len(line), w)
		}
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch < '0'+lo || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: unexpected %q for %s grid",
					ErrMalformedInput, y+1, x+1, ch, alphabet)
			}
			cells = append(cells, ch-'0')
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// ParseHeightmap reads the letter elevation format: 'a'..'z' map to 0..25,
// 'S' marks the start (elevation of 'a') and 'E' the end (elevation of 'z').
// Exactly one S and one E are required.
func ParseHeightmap(text string, opts ...ParseOption) (*Grid, Landmarks, error) {
	var cfg parseOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	var lm Landmarks

	lines := splitLines(text)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, lm, ErrEmptyGrid
	}
	w, h := len(lines[0]), len(lines)
	if err := cfg.check(w, h); err != nil {
		return nil, lm, err
	}

	var seenStart, seenEnd bool
	cells := make([]uint8, 0, w*h)
	for y, line := range lines {
		if len(line) != w {
			return nil, lm, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, y+1, len(line), w)
		}
		for x := 0; x < len(line); x++ {
			p := Position{X: x, Y: y}
			var v uint8
			switch ch := line[x]; {
			case ch == 'S':
				if seenStart {
					return nil, lm, fmt.Errorf("%w: second start marker at %v", ErrMalformedInput, p)
				}
				seenStart, lm.Start = true, p
			case ch == 'E':
				if seenEnd {
					return nil, lm, fmt.Errorf("%w: second end marker at %v", ErrMalformedInput, p)
				}
				seenEnd, lm.End = true, p
				v = 'z' - 'a'
			case ch >= 'a' && ch <= 'z':
				v = ch - 'a'
			default:
				return nil, lm, fmt.Errorf("%w: line %d column %d: unexpected %q in heightmap",
					ErrMalformedInput, y+1, x+1, ch)
			}
			if v == 0 {
				lm.Lowest = append(lm.Lowest, p)
			}
			cells = append(cells, v)
		}
	}
	if !seenStart {
		return nil, lm, fmt.Errorf("%w: start marker 'S' not found", ErrMalformedInput)
	}
	if !seenEnd {
		return nil, lm, fmt.Errorf("%w: end marker 'E' not found", ErrMalformedInput)
	}

	return &Grid{width: w, height: h, cells: cells}, lm, nil
}

// check compares parsed dimensions against WithDimensions.
func (o parseOptions) check(w, h int) error {
	if o.width > 0 && o.width != w {
		return fmt.Errorf("%w: width %d, want %d", ErrMalformedInput, w, o.width)
	}
	if o.height > 0 && o.height != h {
		return fmt.Errorf("%w: height %d, want %d", ErrMalformedInput, h, o.height)
	}
	return nil
}

// splitLines drops trailing blank lines and carriage returns.
func splitLines(text string) []string {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
