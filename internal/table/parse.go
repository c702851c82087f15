package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Delimiter separates cells in a table line.
const Delimiter = ";"

// Parse reads a semicolon-delimited table.
//
// Carriage returns are dropped. Lines that are blank after trimming are skipped entirely.
// The first remaining line is the header; empty header names are removed, which shifts
// the following names left. Every other line becomes a Row holding one trimmed value per
// header name ("" when the line has fewer cells). Input may carry a UTF-8 or UTF-16 BOM.
func Parse(r io.Reader) ([]Row, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	sc := bufio.NewScanner(decoded)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header []string
	rows := make([]Row, 0, 256)
	for sc.Scan() {
		rawLine := strings.ReplaceAll(sc.Text(), "\r", "")
		if strings.TrimSpace(rawLine) == "" {
			continue
		}

		cols := strings.Split(rawLine, Delimiter)
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}

		if header == nil {
			header = make([]string, 0, len(cols))
			for _, name := range cols {
				if name != "" {
					header = append(header, name)
				}
			}
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(cols) {
				row[name] = cols[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}

	return rows, nil
}

// ParseString is Parse over an in-memory table.
func ParseString(s string) ([]Row, error) {
	return Parse(strings.NewReader(s))
}
