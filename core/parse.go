// This file implements parsing of the textual point format: one point
// per line, three base-10 non-negative integers joined by commas.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadPoint indicates a coordinate line that is not three base-10
// non-negative integers joined by commas.
var ErrBadPoint = errors.New("core: malformed point")

// ParsePoint parses a single "x,y,z" coordinate triple. Surrounding
// whitespace on the line and on each field is trimmed; anything else
// malformed returns an error wrapping ErrBadPoint.
func ParsePoint(s string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: want 3 comma-separated coordinates, got %d in %q", ErrBadPoint, len(fields), s)
	}

	var coords [3]uint64
	for i, field := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w: coordinate %d of %q is not a non-negative integer", ErrBadPoint, i+1, s)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ParsePoints parses one point per line and returns them in input
// order. Blank lines (including a trailing newline) are skipped.
//
// The first malformed line aborts the whole parse with an error naming
// its 1-based line number and wrapping ErrBadPoint — construction must
// never start from partially parsed input.
func ParsePoints(s string) ([]Point, error) {
	lines := strings.Split(s, "\n")
	points := make([]Point, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		points = append(points, p)
	}

	return points, nil
}
