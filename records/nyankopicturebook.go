package records

import "github.com/tdmod/tdmod/bdata"

// nyankoPictureBookWidth covers obtainable/limited/total_forms/unknown
// plus four display-scale slots and trailing reserved fields.
const nyankoPictureBookWidth = 12

const (
	slotNPBObtainable = 0
	slotNPBLimited    = 1
	slotNPBTotalForms = 2
	slotNPBScale0     = 4
	slotNPBScale1     = 5
	slotNPBScale2     = 6
	slotNPBScale3     = 7
)

// NyankoPictureBook is the per-unit obtainability/display-order record:
// whether the unit appears in the in-game picture book, whether it's
// limited, and its icon display scale at each form.
type NyankoPictureBook struct {
	CatID int
	Row   *IntRow
}

// ReadNyankoPictureBook parses "cat_id,<raw picture book fields...>".
func ReadNyankoPictureBook(line string, delim bdata.Delimiter) (*NyankoPictureBook, error) {
	row, err := ParseIntRow(line, delim, nyankoPictureBookWidth+1)
	if err != nil {
		return nil, err
	}
	catID := row.Get(0)
	rest := NewIntRow(nyankoPictureBookWidth)
	for i := 0; i < nyankoPictureBookWidth; i++ {
		rest.Set(i, row.Get(i+1))
	}
	return &NyankoPictureBook{CatID: catID, Row: rest}, nil
}

// Write renders "cat_id,<raw picture book fields...>".
func (n *NyankoPictureBook) Write(delim bdata.Delimiter) string {
	full := NewIntRow(nyankoPictureBookWidth + 1)
	full.Set(0, n.CatID)
	for i := 0; i < nyankoPictureBookWidth; i++ {
		full.Set(i+1, n.Row.Get(i))
	}
	return full.String(delim)
}

// Merge applies the same three-way slot merge as Stats.Merge.
func (n *NyankoPictureBook) Merge(base, incoming *NyankoPictureBook) {
	for i := 0; i < nyankoPictureBookWidth; i++ {
		if incoming.Row.Get(i) != base.Row.Get(i) {
			n.Row.Set(i, incoming.Row.Get(i))
		}
	}
}

func (n *NyankoPictureBook) Obtainable() bool     { return n.Row.GetBool(slotNPBObtainable) }
func (n *NyankoPictureBook) SetObtainable(v bool)  { n.Row.SetBool(slotNPBObtainable, v) }
func (n *NyankoPictureBook) Limited() bool         { return n.Row.GetBool(slotNPBLimited) }
func (n *NyankoPictureBook) SetLimited(v bool)     { n.Row.SetBool(slotNPBLimited, v) }
func (n *NyankoPictureBook) TotalForms() int       { return n.Row.Get(slotNPBTotalForms) }
func (n *NyankoPictureBook) SetTotalForms(v int)   { n.Row.Set(slotNPBTotalForms, v) }

// Scales returns the four per-form display-scale values.
func (n *NyankoPictureBook) Scales() [4]int {
	return [4]int{
		n.Row.Get(slotNPBScale0), n.Row.Get(slotNPBScale1),
		n.Row.Get(slotNPBScale2), n.Row.Get(slotNPBScale3),
	}
}

// SetScales overwrites the four per-form display-scale values.
func (n *NyankoPictureBook) SetScales(s [4]int) {
	n.Row.Set(slotNPBScale0, s[0])
	n.Row.Set(slotNPBScale1, s[1])
	n.Row.Set(slotNPBScale2, s[2])
	n.Row.Set(slotNPBScale3, s[3])
}
