package catalog

import (
	"github.com/udisondev/slotview/internal/constants"
	"github.com/udisondev/slotview/internal/table"
)

// Record is one row of a reference table, keyed by its 16-bit id.
type Record struct {
	id     uint16
	fields table.Row
}

// ID returns the record id.
func (r *Record) ID() uint16 { return r.id }

// IName returns the internal asset name ("iName" column).
func (r *Record) IName() string { return r.fields["iName"] }

// Field returns the value of an arbitrary column, "" if absent.
func (r *Record) Field(key string) string { return r.fields[key] }

// DisplayName returns the name for lang, falling back to Simplified Chinese, then English.
// Returns "" if r is nil or every candidate column is empty.
func (r *Record) DisplayName(lang string) string {
	if r == nil {
		return ""
	}
	for _, key := range [...]string{lang, constants.LangSimplifiedChinese, constants.LangEnglish} {
		if v := r.fields[key]; v != "" {
			return v
		}
	}
	return ""
}
