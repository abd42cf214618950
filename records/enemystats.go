package records

import "github.com/tdmod/tdmod/bdata"

// enemyStatsWidth is the canonical enemy stats row width. Enemies share
// core fields with unit Stats (hp, kbs, speed, attack, range) but carry a
// distinct tail of enemy-only status-effect slots (freeze/slow/weaken/
// curse/wave/surge/dodge/savage_blow), so they are not reused as unit
// Stats rows despite the family resemblance.
const enemyStatsWidth = 38

const (
	slotEnemyHP               = 0
	slotEnemyKBs              = 1
	slotEnemySpeed            = 2
	slotEnemyAttack1          = 3
	slotEnemyRange            = 4
	slotEnemyCost             = 5
	slotEnemyCollisionStart   = 6
	slotEnemyCollisionWidth   = 7
	slotEnemyUnused           = 8
	slotEnemyAreaAttack       = 9
	slotEnemyKnockback        = 10
	slotEnemyFreeze           = 11
	slotEnemySlow             = 12
	slotEnemyCrit             = 13
	slotEnemyBaseDestroyer    = 14
	slotEnemyWave             = 15
	slotEnemyWeaken           = 16
	slotEnemyStrengthen       = 17
	slotEnemyIsMetal          = 18
	slotEnemyWaveImmunity     = 19
	slotEnemyWaveBlocker      = 20
	slotEnemyKnockbackImmune  = 21
	slotEnemyFreezeImmune     = 22
	slotEnemySlowImmune       = 23
	slotEnemyWeakenImmune     = 24
	slotEnemyAttackState      = 25
	slotEnemyTimeBeforeDeath  = 26
	slotEnemyAttack2          = 27
	slotEnemyAttack3          = 28
	slotEnemySpawnAnim        = 29
	slotEnemySoulAnim         = 30
	slotEnemyWarp             = 31
	slotEnemyWarpBlocker      = 32
	slotEnemySavageBlow       = 33
	slotEnemyDodge            = 34
	slotEnemySurge            = 35
	slotEnemySurgeImmunity    = 36
	slotEnemyCurse            = 37
)

// EnemyStats is the fixed-width enemy stat row: the same IntRow machinery
// as Stats, with its own slot map for the enemy-only status effects
// (wave/surge/curse/dodge/savage-blow) that unit Stats doesn't carry.
type EnemyStats struct {
	Row *IntRow
}

// NewEnemyStats builds an all-zero EnemyStats row.
func NewEnemyStats() *EnemyStats {
	return &EnemyStats{Row: NewIntRow(enemyStatsWidth)}
}

// ReadEnemyStats parses one delimited CSV line into an EnemyStats row.
func ReadEnemyStats(line string, delim bdata.Delimiter) (*EnemyStats, error) {
	row, err := ParseIntRow(line, delim, enemyStatsWidth)
	if err != nil {
		return nil, err
	}
	return &EnemyStats{Row: row}, nil
}

// Write renders the row back to its canonical delimited form.
func (e *EnemyStats) Write(delim bdata.Delimiter) string { return e.Row.String(delim) }

// Clone deep-copies the row.
func (e *EnemyStats) Clone() *EnemyStats { return &EnemyStats{Row: e.Row.Clone()} }

// Merge applies the same three-way slot merge as Stats.Merge.
func (e *EnemyStats) Merge(base, incoming *EnemyStats) {
	width := enemyStatsWidth
	if base.Row.Width > width {
		width = base.Row.Width
	}
	if incoming.Row.Width > width {
		width = incoming.Row.Width
	}
	for i := 0; i < width; i++ {
		if incoming.Row.Get(i) != base.Row.Get(i) {
			e.Row.Set(i, incoming.Row.Get(i))
		}
	}
}

func (e *EnemyStats) HP() int          { return e.Row.Get(slotEnemyHP) }
func (e *EnemyStats) SetHP(v int)      { e.Row.Set(slotEnemyHP, v) }
func (e *EnemyStats) KBs() int         { return e.Row.Get(slotEnemyKBs) }
func (e *EnemyStats) SetKBs(v int)     { e.Row.Set(slotEnemyKBs, v) }
func (e *EnemyStats) Speed() int       { return e.Row.Get(slotEnemySpeed) }
func (e *EnemyStats) SetSpeed(v int)   { e.Row.Set(slotEnemySpeed, v) }
func (e *EnemyStats) Attack1() int     { return e.Row.Get(slotEnemyAttack1) }
func (e *EnemyStats) SetAttack1(v int) { e.Row.Set(slotEnemyAttack1, v) }
func (e *EnemyStats) MoneyDrop() int   { return e.Row.Get(slotEnemyCost) * 2 }
func (e *EnemyStats) SetMoneyDrop(v int) { e.Row.Set(slotEnemyCost, v/2) }

func (e *EnemyStats) IsMetal() bool          { return e.Row.GetBool(slotEnemyIsMetal) }
func (e *EnemyStats) SetIsMetal(v bool)      { e.Row.SetBool(slotEnemyIsMetal, v) }
func (e *EnemyStats) BaseDestroyer() bool    { return e.Row.GetBool(slotEnemyBaseDestroyer) }
func (e *EnemyStats) SetBaseDestroyer(v bool) { e.Row.SetBool(slotEnemyBaseDestroyer, v) }
func (e *EnemyStats) WaveImmunity() bool     { return e.Row.GetBool(slotEnemyWaveImmunity) }
func (e *EnemyStats) SetWaveImmunity(v bool) { e.Row.SetBool(slotEnemyWaveImmunity, v) }
func (e *EnemyStats) WaveBlocker() bool      { return e.Row.GetBool(slotEnemyWaveBlocker) }
func (e *EnemyStats) SetWaveBlocker(v bool)  { e.Row.SetBool(slotEnemyWaveBlocker, v) }
func (e *EnemyStats) KnockbackImmunity() bool      { return e.Row.GetBool(slotEnemyKnockbackImmune) }
func (e *EnemyStats) SetKnockbackImmunity(v bool)  { e.Row.SetBool(slotEnemyKnockbackImmune, v) }
func (e *EnemyStats) FreezeImmunity() bool   { return e.Row.GetBool(slotEnemyFreezeImmune) }
func (e *EnemyStats) SetFreezeImmunity(v bool) { e.Row.SetBool(slotEnemyFreezeImmune, v) }
func (e *EnemyStats) SlowImmunity() bool     { return e.Row.GetBool(slotEnemySlowImmune) }
func (e *EnemyStats) SetSlowImmunity(v bool) { e.Row.SetBool(slotEnemySlowImmune, v) }
func (e *EnemyStats) WeakenImmunity() bool   { return e.Row.GetBool(slotEnemyWeakenImmune) }
func (e *EnemyStats) SetWeakenImmunity(v bool) { e.Row.SetBool(slotEnemyWeakenImmune, v) }
func (e *EnemyStats) WarpBlocker() bool      { return e.Row.GetBool(slotEnemyWarpBlocker) }
func (e *EnemyStats) SetWarpBlocker(v bool)  { e.Row.SetBool(slotEnemyWarpBlocker, v) }
func (e *EnemyStats) SurgeImmunity() bool    { return e.Row.GetBool(slotEnemySurgeImmunity) }
func (e *EnemyStats) SetSurgeImmunity(v bool) { e.Row.SetBool(slotEnemySurgeImmunity, v) }

// Slot and SetSlot give raw access to any index, including the
// probability/duration paired slots (knockback, freeze, slow, weaken,
// wave, crit, savage_blow, dodge, surge, curse) that aren't given named
// accessors since this toolkit's mod surface doesn't edit them directly.
func (e *EnemyStats) Slot(i int) int       { return e.Row.Get(i) }
func (e *EnemyStats) SetSlot(i int, v int) { e.Row.Set(i, v) }
