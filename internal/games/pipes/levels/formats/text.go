package formats

import (
	"bufio"
	"bytes"
	"errors"
	"strconv"
	"strings"
)

// Level is a parsed level definition, not yet turned into a board.
type Level struct {
	ID     int
	Name   string
	Height int
	Width  int
	Rows   [][]Token
}

// ParseText parses the plain text format: a "<height> <width>" line followed
// by height rows of width whitespace-separated tokens. Blank lines are
// ignored.
func ParseText(data []byte) (Level, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0

	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			if line := strings.TrimSpace(sc.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return Level{}, formatErr(0, CodeBadDimensions, "missing dimension line")
	}
	h, w, err := parseDimensions(header)
	if err != nil {
		return Level{}, withLine(err, lineNo)
	}

	lvl := Level{Height: h, Width: w, Rows: make([][]Token, 0, h)}
	for len(lvl.Rows) < h {
		line, ok := next()
		if !ok {
			return Level{}, formatErr(lineNo, CodeBadRow, "expected %d rows, got %d", h, len(lvl.Rows))
		}
		row, err := parseRow(strings.Fields(line), w)
		if err != nil {
			return Level{}, withLine(err, lineNo)
		}
		lvl.Rows = append(lvl.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return Level{}, err
	}
	if extra, ok := next(); ok {
		return Level{}, formatErr(lineNo, CodeBadRow, "unexpected trailing row %q", extra)
	}
	return lvl, nil
}

func parseDimensions(line string) (h, w int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, formatErr(0, CodeBadDimensions, "want \"<height> <width>\", got %q", line)
	}
	h, errH := strconv.Atoi(fields[0])
	w, errW := strconv.Atoi(fields[1])
	if errH != nil || errW != nil || h <= 0 || w <= 0 {
		return 0, 0, formatErr(0, CodeBadDimensions, "dimensions must be positive integers, got %q", line)
	}
	return h, w, nil
}

func parseRow(fields []string, w int) ([]Token, error) {
	if len(fields) != w {
		return nil, formatErr(0, CodeBadRow, "want %d tokens, got %d", w, len(fields))
	}
	row := make([]Token, w)
	for i, f := range fields {
		t, err := ParseToken(f)
		if err != nil {
			return nil, err
		}
		row[i] = t
	}
	return row, nil
}

// withLine fills in the line number of a FormatError.
func withLine(err error, line int) error {
	var fe FormatError
	if errors.As(err, &fe) && fe.Line == 0 {
		fe.Line = line
		return fe
	}
	return err
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".p", ".yaml", ".yml"}
}
