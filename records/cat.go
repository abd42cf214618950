package records

import (
	"fmt"

	"github.com/tdmod/tdmod/bdata"
)

// Form is one evolution stage of a unit: its stat row and the display
// name carried alongside it. Animation and sprite data live in the
// catalog/pack layer, addressed separately by filename.
type Form struct {
	Stats *Stats
	Name  string
}

// Cat aggregates everything this toolkit models about one unit: its
// per-form stats, shop/evolution data, optional talent tree, and picture
// book entry. Talent is nil for units that never got a talent tree.
type Cat struct {
	CatID             int
	Forms             []*Form
	UnitBuy           *UnitBuy
	Talent            *Talent
	NyankoPictureBook *NyankoPictureBook
	EvolveText        []string
}

// NewCat builds an empty Cat with no forms; its UnitBuy and picture book
// entry both start obtainable.
func NewCat(catID int) *Cat {
	c := &Cat{CatID: catID, UnitBuy: NewUnitBuy(), NyankoPictureBook: &NyankoPictureBook{CatID: catID, Row: NewIntRow(nyankoPictureBookWidth)}}
	c.NyankoPictureBook.SetObtainable(c.UnitBuy.IsObtainable())
	return c
}

// IsObtainable reports whether the unit can currently be obtained, per
// UnitBuy's game_version sentinel.
func (c *Cat) IsObtainable() bool { return c.UnitBuy.IsObtainable() }

// SetObtainable toggles obtainability across both records that encode it:
// UnitBuy.game_version and NyankoPictureBook.obtainable must always agree
// (game_version == -1 <=> obtainable == false), so this is the only
// correct way to flip obtainability — UnitBuy.SetObtainable and
// NyankoPictureBook.SetObtainable on their own only touch one half of it.
func (c *Cat) SetObtainable(obtainable bool) {
	c.UnitBuy.SetObtainable(obtainable)
	if c.NyankoPictureBook != nil {
		c.NyankoPictureBook.SetObtainable(obtainable)
	}
}

// StatFileName is the stat CSV filename for a unit, one-indexed and
// zero-padded to three digits (unitID 0 -> "unit001.csv").
func StatFileName(catID int) string {
	return fmt.Sprintf("unit%s.csv", bdata.NewPaddedInt(catID+1, 3).String())
}

// ExplanationFileName is the localized description CSV filename for a
// unit and language.
func ExplanationFileName(catID int, language string) string {
	return fmt.Sprintf("Unit_Explanation%d_%s.csv", catID+1, language)
}

// Merge combines three versions of a Cat the same way every underlying
// record merges: where incoming differs from base, incoming wins, else
// the target keeps its own current value. Forms are merged pairwise by
// index; a form present in incoming but missing from the target is
// appended rather than dropped.
func (c *Cat) Merge(base, incoming *Cat) {
	c.UnitBuy.Merge(base.UnitBuy, incoming.UnitBuy)

	for i, form := range c.Forms {
		var baseForm, incomingForm *Form
		if i < len(base.Forms) {
			baseForm = base.Forms[i]
		}
		if i < len(incoming.Forms) {
			incomingForm = incoming.Forms[i]
		}
		if baseForm == nil || incomingForm == nil {
			continue
		}
		form.Stats.Merge(baseForm.Stats, incomingForm.Stats)
		if incomingForm.Name != baseForm.Name {
			form.Name = incomingForm.Name
		}
	}
	for i := len(c.Forms); i < len(incoming.Forms); i++ {
		c.Forms = append(c.Forms, incoming.Forms[i])
	}

	if c.Talent != nil && base.Talent != nil && incoming.Talent != nil {
		c.Talent.Merge(base.Talent, incoming.Talent)
	} else if c.Talent == nil && incoming.Talent != nil {
		c.Talent = incoming.Talent
	}

	if c.NyankoPictureBook != nil && base.NyankoPictureBook != nil && incoming.NyankoPictureBook != nil {
		c.NyankoPictureBook.Merge(base.NyankoPictureBook, incoming.NyankoPictureBook)
	}
}
