package table

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON is returned when a JSON table export is not well-formed.
	ErrInvalidJSON = errors.New("invalid JSON table")

	// ErrNotArray is returned when the JSON document is not an array of rows.
	ErrNotArray = errors.New("JSON table is not an array")
)

// ParseJSON reads a table exported as a JSON array of objects.
// Scalar fields are stringified and trimmed; nested values are kept as raw JSON.
// Elements that are not objects are skipped.
func ParseJSON(data []byte) ([]Row, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, ErrNotArray
	}

	elems := doc.Array()
	rows := make([]Row, 0, len(elems))
	for _, elem := range elems {
		if !elem.IsObject() {
			continue
		}
		row := make(Row)
		elem.ForEach(func(key, value gjson.Result) bool {
			if value.IsObject() || value.IsArray() {
				row[key.String()] = value.Raw
			} else {
				row[key.String()] = strings.TrimSpace(value.String())
			}
			return true
		})
		rows = append(rows, row)
	}

	return rows, nil
}
