// Package records implements the domain record layer (C5): typed views
// over catalog files. Positional records (Stats, UnitBuy, EnemyStats)
// share the canonical-width IntRow machinery below, as do Talent,
// NyankoPictureBook and Stage_option; header-keyed tabular records
// (StageName, Map_option) are implemented with github.com/gocarina/gocsv
// struct-tag mapping instead, and Localizable is plain key/value text.
package records

import (
	"strconv"
	"strings"

	"github.com/tdmod/tdmod/bdata"
)

// IntRow is a fixed-width slot-indexed integer row: the shape every
// positional record (Stats, UnitBuy, EnemyStats) shares. Reading always
// zero-extends a short row to Width; writing always emits exactly Width
// columns, so a record that only ever touches its first few slots still
// round-trips the trailing zeros other tooling expects.
type IntRow struct {
	Width int
	slots []int
}

// NewIntRow builds a row of the given canonical width, zero-filled.
func NewIntRow(width int) *IntRow {
	return &IntRow{Width: width, slots: make([]int, width)}
}

// ParseIntRow reads a row from its delimited text form, zero-extending to
// width regardless of how many fields the line actually had. A width of 0
// or less means "no fixed width" — the row grows to however many fields
// the line actually has, used by variable-length records like Talent.
func ParseIntRow(line string, delim bdata.Delimiter, width int) (*IntRow, error) {
	if strings.TrimSpace(line) == "" {
		return NewIntRow(maxInt(width, 0)), nil
	}
	fields := strings.Split(line, string(rune(delim)))
	effWidth := width
	if effWidth < len(fields) {
		effWidth = len(fields)
	}
	row := NewIntRow(effWidth)
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		row.slots[i] = v
	}
	return row, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Len returns the row's current slot count (>= Width).
func (r *IntRow) Len() int { return len(r.slots) }

// Get returns the value at slot i, or 0 if i is out of range (matching the
// always-zero-extended read semantics).
func (r *IntRow) Get(i int) int {
	if i < 0 || i >= len(r.slots) {
		return 0
	}
	return r.slots[i]
}

// Set writes the value at slot i, growing the row if i is beyond the
// current canonical width (a FEB import can carry trailing fields newer
// than this build knows about; they are preserved, not dropped).
func (r *IntRow) Set(i, v int) {
	if i >= len(r.slots) {
		grown := make([]int, i+1)
		copy(grown, r.slots)
		r.slots = grown
		if r.Width < len(r.slots) {
			r.Width = len(r.slots)
		}
	}
	r.slots[i] = v
}

// GetBool reads slot i as a 0/1 boolean flag.
func (r *IntRow) GetBool(i int) bool { return r.Get(i) != 0 }

// SetBool writes a 0/1 boolean flag at slot i.
func (r *IntRow) SetBool(i int, v bool) {
	n := 0
	if v {
		n = 1
	}
	r.Set(i, n)
}

// String renders the row at its full canonical width, delimiter-joined.
func (r *IntRow) String(delim bdata.Delimiter) string {
	width := r.Width
	if len(r.slots) > width {
		width = len(r.slots)
	}
	fields := make([]string, width)
	for i := 0; i < width; i++ {
		fields[i] = strconv.Itoa(r.Get(i))
	}
	return strings.Join(fields, string(rune(delim)))
}

// Equal reports whether two rows hold the same values at every slot up to
// the wider of the two canonical widths.
func (r *IntRow) Equal(o *IntRow) bool {
	width := r.Width
	if o.Width > width {
		width = o.Width
	}
	for i := 0; i < width; i++ {
		if r.Get(i) != o.Get(i) {
			return false
		}
	}
	return true
}

// Clone deep-copies the row.
func (r *IntRow) Clone() *IntRow {
	out := &IntRow{Width: r.Width, slots: make([]int, len(r.slots))}
	copy(out.slots, r.slots)
	return out
}
