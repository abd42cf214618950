package records

import "github.com/tdmod/tdmod/bdata"

// Talent is a per-unit skill-tree record: a cat id plus an arbitrary-width
// row of (ability_id, min, max, text_id)-shaped integer groups. Unlike
// Stats/UnitBuy its width is not fixed game-wide — different units unlock
// different numbers of talents — so it carries whatever width its source
// line had rather than zero-padding to a canonical size.
type Talent struct {
	CatID int
	Row   *IntRow
}

// ReadTalent parses "cat_id,<raw talent fields...>" into a Talent.
func ReadTalent(line string, delim bdata.Delimiter) (*Talent, error) {
	row, err := ParseIntRow(line, delim, 0)
	if err != nil {
		return nil, err
	}
	if row.Len() == 0 {
		return &Talent{Row: NewIntRow(0)}, nil
	}
	catID := row.Get(0)
	rest := NewIntRow(row.Width - 1)
	for i := 1; i < row.Width; i++ {
		rest.Set(i-1, row.Get(i))
	}
	return &Talent{CatID: catID, Row: rest}, nil
}

// Write renders "cat_id,<raw talent fields...>".
func (t *Talent) Write(delim bdata.Delimiter) string {
	full := NewIntRow(t.Row.Width + 1)
	full.Set(0, t.CatID)
	for i := 0; i < t.Row.Width; i++ {
		full.Set(i+1, t.Row.Get(i))
	}
	return full.String(delim)
}

// Merge applies the same three-way slot merge as Stats.Merge.
func (t *Talent) Merge(base, incoming *Talent) {
	width := t.Row.Width
	if base.Row.Width > width {
		width = base.Row.Width
	}
	if incoming.Row.Width > width {
		width = incoming.Row.Width
	}
	for i := 0; i < width; i++ {
		if incoming.Row.Get(i) != base.Row.Get(i) {
			t.Row.Set(i, incoming.Row.Get(i))
		}
	}
}
