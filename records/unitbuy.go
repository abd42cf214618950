package records

import "github.com/tdmod/tdmod/bdata"

// unitBuyWidth is the canonical UnitBuy row width: 63 slots covering
// upgrade costs, rarity, gacha rarity, and evolution requirements.
const unitBuyWidth = 63

const (
	slotStageUnlock    = 0
	slotPurchaseCost   = 1
	slotUpgradeCostLo  = 2  // inclusive
	slotUpgradeCostHi  = 11 // inclusive
	slotUnlockSource   = 12
	slotRarity         = 13
	slotPositionOrder  = 14
	slotChapterUnlock  = 15
	slotSellPrice      = 16
	slotGachaRarity    = 17
	slotTrueFormID     = 23
	slotEvolveCost     = 27
	slotEvolveCount    = 56
	slotGameVersion    = 57
	slotNPSellPrice    = 58
)

// unobtainableGameVersion is the sentinel UnitBuy writes to slot 57 to
// mark a unit unobtainable; any other value means obtainable.
const unobtainableGameVersion = -1

// UnitBuy is the fixed-width 63-slot per-unit row covering upgrade costs,
// rarity, gacha rarity, and the obtainability sentinel
// (game_version == -1 <=> unobtainable).
type UnitBuy struct {
	Row *IntRow
}

// NewUnitBuy builds an all-zero UnitBuy row.
func NewUnitBuy() *UnitBuy {
	return &UnitBuy{Row: NewIntRow(unitBuyWidth)}
}

// ReadUnitBuy parses one delimited CSV line into a UnitBuy row.
func ReadUnitBuy(line string, delim bdata.Delimiter) (*UnitBuy, error) {
	row, err := ParseIntRow(line, delim, unitBuyWidth)
	if err != nil {
		return nil, err
	}
	return &UnitBuy{Row: row}, nil
}

// Write renders the row back to its canonical delimited form.
func (u *UnitBuy) Write(delim bdata.Delimiter) string { return u.Row.String(delim) }

// Clone deep-copies the row.
func (u *UnitBuy) Clone() *UnitBuy { return &UnitBuy{Row: u.Row.Clone()} }

// Merge applies the same three-way slot merge as Stats.Merge.
func (u *UnitBuy) Merge(base, incoming *UnitBuy) {
	width := unitBuyWidth
	if base.Row.Width > width {
		width = base.Row.Width
	}
	if incoming.Row.Width > width {
		width = incoming.Row.Width
	}
	for i := 0; i < width; i++ {
		if incoming.Row.Get(i) != base.Row.Get(i) {
			u.Row.Set(i, incoming.Row.Get(i))
		}
	}
}

func (u *UnitBuy) StageUnlock() int       { return u.Row.Get(slotStageUnlock) }
func (u *UnitBuy) SetStageUnlock(v int)   { u.Row.Set(slotStageUnlock, v) }
func (u *UnitBuy) PurchaseCost() int      { return u.Row.Get(slotPurchaseCost) }
func (u *UnitBuy) SetPurchaseCost(v int)  { u.Row.Set(slotPurchaseCost, v) }
func (u *UnitBuy) Rarity() int            { return u.Row.Get(slotRarity) }
func (u *UnitBuy) SetRarity(v int)        { u.Row.Set(slotRarity, v) }
func (u *UnitBuy) GachaRarity() int       { return u.Row.Get(slotGachaRarity) }
func (u *UnitBuy) SetGachaRarity(v int)   { u.Row.Set(slotGachaRarity, v) }
func (u *UnitBuy) SellPrice() int         { return u.Row.Get(slotSellPrice) }
func (u *UnitBuy) SetSellPrice(v int)     { u.Row.Set(slotSellPrice, v) }
func (u *UnitBuy) TrueFormID() int        { return u.Row.Get(slotTrueFormID) }
func (u *UnitBuy) SetTrueFormID(v int)    { u.Row.Set(slotTrueFormID, v) }
func (u *UnitBuy) EvolveCost() int        { return u.Row.Get(slotEvolveCost) }
func (u *UnitBuy) SetEvolveCost(v int)    { u.Row.Set(slotEvolveCost, v) }

// UpgradeCosts returns the 10 per-level upgrade cost slots (2..11).
func (u *UnitBuy) UpgradeCosts() []int {
	out := make([]int, slotUpgradeCostHi-slotUpgradeCostLo+1)
	for i := range out {
		out[i] = u.Row.Get(slotUpgradeCostLo + i)
	}
	return out
}

// SetUpgradeCosts overwrites as many of the 10 upgrade-cost slots as costs
// supplies, leaving the rest untouched.
func (u *UnitBuy) SetUpgradeCosts(costs []int) {
	for i, c := range costs {
		if slotUpgradeCostLo+i > slotUpgradeCostHi {
			break
		}
		u.Row.Set(slotUpgradeCostLo+i, c)
	}
}

// IsObtainable reports whether this unit can be obtained (slot 57 is not
// the -1 sentinel).
func (u *UnitBuy) IsObtainable() bool {
	return u.Row.Get(slotGameVersion) != unobtainableGameVersion
}

// SetObtainable toggles obtainability. Making a unit obtainable again from
// the sentinel resets its game_version to 0 (matching the source's
// behavior: "becomes available as of version 0" rather than guessing a
// real version number).
func (u *UnitBuy) SetObtainable(obtainable bool) {
	if !obtainable {
		u.Row.Set(slotGameVersion, unobtainableGameVersion)
		return
	}
	if u.Row.Get(slotGameVersion) == unobtainableGameVersion {
		u.Row.Set(slotGameVersion, 0)
	}
}

func (u *UnitBuy) Slot(i int) int       { return u.Row.Get(i) }
func (u *UnitBuy) SetSlot(i int, v int) { u.Row.Set(i, v) }
