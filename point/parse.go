// SPDX-License-Identifier: MIT

package point

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldsPerLine is the number of comma-separated coordinates on one line.
const fieldsPerLine = 3

// Parse reads one "x,y,z" point per line from r.
//
// Rules:
//   - Leading and trailing whitespace on a line is ignored ("\r\n" works).
//   - Blank lines are accepted only at the end of the input.
//   - Each field must be a base-10 integer in [0, MaxCoordinate].
//
// Error Conditions:
//   - ErrMalformedLine      : wrong field count, non-integer field, or a blank
//     line followed by more points. Wrapped with the 1-based line number.
//   - ErrNegativeCoordinate : a field parsed but is below zero.
//   - ErrCoordinateRange    : a field is above MaxCoordinate or does not fit an int.
//   - any error returned by r.
//
// Complexity: O(len(input)).
func Parse(r io.Reader) (*Set, error) {
	var (
		points    []Point
		blankLine int // first blank line seen, 0 if none yet
		lineNo    int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if blankLine == 0 {
				blankLine = lineNo
			}
			continue
		}
		if blankLine != 0 {
			return nil, fmt.Errorf("line %d: blank line inside point list: %w", blankLine, ErrMalformedLine)
		}

		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return New(points)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Set, error) {
	return Parse(strings.NewReader(s))
}

// parseLine decodes a single trimmed, non-empty "x,y,z" line.
func parseLine(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldsPerLine {
		return Point{}, fmt.Errorf("%q has %d fields, want %d: %w", line, len(fields), fieldsPerLine, ErrMalformedLine)
	}

	var coords [fieldsPerLine]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		switch {
		case errors.Is(err, strconv.ErrRange):
			err = ErrCoordinateRange
		case err != nil:
			err = ErrMalformedLine
		default:
			err = checkCoordinate(v)
		}
		if err != nil {
			return Point{}, fmt.Errorf("%q field %d: %w", line, i+1, err)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
