// Package table reads the reference tables (items, recipes, flowers, variations)
// into rows of column→value strings.
package table

// Row maps a header column to its trimmed cell value.
type Row map[string]string

// Get returns the value of column key, "" if absent.
func (r Row) Get(key string) string {
	return r[key]
}
