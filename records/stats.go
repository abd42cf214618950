package records

import "github.com/tdmod/tdmod/bdata"

// statsWidth is the canonical unit stats row width: 108 integer
// slots, always present on write even when only a handful are non-zero.
const statsWidth = 108

// Stats slot indices for the fields this toolkit exposes named accessors
// for. The remaining slots (attack sub-fields, animation model ids,
// long-distance attack geometry, and other scaled unit-frame values) are
// still carried byte-for-byte through Slot/SetSlot; they are not given
// named accessors because nothing in this toolkit's mod surface edits
// them directly.
const (
	slotHP                = 0
	slotKBs               = 1
	slotSpeed             = 2
	slotAttack1Damage     = 3
	slotAttackInterval    = 4
	slotRange             = 5
	slotCost              = 6
	slotRechargeTime      = 7
	slotTargetRed         = 10
	slotAreaAttack        = 12
	slotTargetFloating    = 16
	slotTargetBlack       = 17
	slotTargetMetal       = 18
	slotTargetTraitless   = 19
	slotTargetAngel       = 20
	slotTargetAlien       = 21
	slotTargetZombie      = 22
	slotStrong            = 23
	slotKnockbackProb     = 24
	slotResistant         = 29
	slotMassiveDamage     = 30
	slotCritProb          = 31
	slotZombieKiller      = 52
	slotWitchKiller       = 53
	slotTargetWitch       = 54
	slotWarpBlocker       = 75
	slotTargetEva         = 76
	slotEvaKiller         = 77
	slotTargetRelic       = 78
	slotCurseImmunity     = 79
	slotInsanelyTough     = 80
	slotInsaneDamage      = 81
	slotToxicImmunity     = 90
	slotSurgeImmunity     = 91
	slotTargetAku         = 96
	slotCollossusSlayer   = 97
	slotSoulStrike        = 98
	slotBehemothSlayer    = 105
	slotBehemothDodgeProb = 106
	slotBehemothDodgeTime = 107
)

// Stats is the fixed-width 108-slot unit stat row (traits, damage,
// foreswing, status-effect probability/duration pairs, surge/warp/dodge/
// curse specs). Reader and writer always mirror the same slot map;
// missing trailing slots default to zero on load and are always emitted
// on save.
type Stats struct {
	Row *IntRow
}

// NewStats builds an all-zero Stats row.
func NewStats() *Stats {
	return &Stats{Row: NewIntRow(statsWidth)}
}

// ReadStats parses one delimited CSV line into a Stats row.
func ReadStats(line string, delim bdata.Delimiter) (*Stats, error) {
	row, err := ParseIntRow(line, delim, statsWidth)
	if err != nil {
		return nil, err
	}
	return &Stats{Row: row}, nil
}

// Write renders the row back to its canonical delimited form.
func (s *Stats) Write(delim bdata.Delimiter) string { return s.Row.String(delim) }

// Clone deep-copies the stats row.
func (s *Stats) Clone() *Stats { return &Stats{Row: s.Row.Clone()} }

// Merge applies a three-way merge against base: for every slot where
// incoming differs from base, incoming wins; otherwise s's own current
// value is kept. This is the overlay engine's per-record merge rule
// applied at slot granularity.
func (s *Stats) Merge(base, incoming *Stats) {
	width := statsWidth
	if base.Row.Width > width {
		width = base.Row.Width
	}
	if incoming.Row.Width > width {
		width = incoming.Row.Width
	}
	for i := 0; i < width; i++ {
		if incoming.Row.Get(i) != base.Row.Get(i) {
			s.Row.Set(i, incoming.Row.Get(i))
		}
	}
}

func (s *Stats) HP() int      { return s.Row.Get(slotHP) }
func (s *Stats) SetHP(v int)  { s.Row.Set(slotHP, v) }
func (s *Stats) KBs() int     { return s.Row.Get(slotKBs) }
func (s *Stats) SetKBs(v int) { s.Row.Set(slotKBs, v) }
func (s *Stats) Cost() int    { return s.Row.Get(slotCost) }
func (s *Stats) SetCost(v int) { s.Row.Set(slotCost, v) }

// Attack1Damage is attack_1's base damage (index 3).
func (s *Stats) Attack1Damage() int     { return s.Row.Get(slotAttack1Damage) }
func (s *Stats) SetAttack1Damage(v int) { s.Row.Set(slotAttack1Damage, v) }

func (s *Stats) TargetRed() bool        { return s.Row.GetBool(slotTargetRed) }
func (s *Stats) SetTargetRed(v bool)    { s.Row.SetBool(slotTargetRed, v) }
func (s *Stats) TargetFloating() bool   { return s.Row.GetBool(slotTargetFloating) }
func (s *Stats) SetTargetFloating(v bool) { s.Row.SetBool(slotTargetFloating, v) }
func (s *Stats) TargetBlack() bool      { return s.Row.GetBool(slotTargetBlack) }
func (s *Stats) SetTargetBlack(v bool)  { s.Row.SetBool(slotTargetBlack, v) }
func (s *Stats) TargetMetal() bool      { return s.Row.GetBool(slotTargetMetal) }
func (s *Stats) SetTargetMetal(v bool)  { s.Row.SetBool(slotTargetMetal, v) }
func (s *Stats) TargetTraitless() bool     { return s.Row.GetBool(slotTargetTraitless) }
func (s *Stats) SetTargetTraitless(v bool) { s.Row.SetBool(slotTargetTraitless, v) }
func (s *Stats) TargetAngel() bool      { return s.Row.GetBool(slotTargetAngel) }
func (s *Stats) SetTargetAngel(v bool)  { s.Row.SetBool(slotTargetAngel, v) }
func (s *Stats) TargetAlien() bool      { return s.Row.GetBool(slotTargetAlien) }
func (s *Stats) SetTargetAlien(v bool)  { s.Row.SetBool(slotTargetAlien, v) }
func (s *Stats) TargetZombie() bool     { return s.Row.GetBool(slotTargetZombie) }
func (s *Stats) SetTargetZombie(v bool) { s.Row.SetBool(slotTargetZombie, v) }
func (s *Stats) TargetAku() bool        { return s.Row.GetBool(slotTargetAku) }
func (s *Stats) SetTargetAku(v bool)    { s.Row.SetBool(slotTargetAku, v) }
func (s *Stats) TargetRelic() bool      { return s.Row.GetBool(slotTargetRelic) }
func (s *Stats) SetTargetRelic(v bool)  { s.Row.SetBool(slotTargetRelic, v) }
func (s *Stats) TargetEva() bool        { return s.Row.GetBool(slotTargetEva) }
func (s *Stats) SetTargetEva(v bool)    { s.Row.SetBool(slotTargetEva, v) }
func (s *Stats) TargetWitch() bool      { return s.Row.GetBool(slotTargetWitch) }
func (s *Stats) SetTargetWitch(v bool)  { s.Row.SetBool(slotTargetWitch, v) }

func (s *Stats) AreaAttack() bool     { return s.Row.GetBool(slotAreaAttack) }
func (s *Stats) SetAreaAttack(v bool) { s.Row.SetBool(slotAreaAttack, v) }
func (s *Stats) Strong() bool         { return s.Row.GetBool(slotStrong) }
func (s *Stats) SetStrong(v bool)     { s.Row.SetBool(slotStrong, v) }
func (s *Stats) Resistant() bool      { return s.Row.GetBool(slotResistant) }
func (s *Stats) SetResistant(v bool)  { s.Row.SetBool(slotResistant, v) }
func (s *Stats) MassiveDamage() bool       { return s.Row.GetBool(slotMassiveDamage) }
func (s *Stats) SetMassiveDamage(v bool)   { s.Row.SetBool(slotMassiveDamage, v) }
func (s *Stats) InsaneDamage() bool        { return s.Row.GetBool(slotInsaneDamage) }
func (s *Stats) SetInsaneDamage(v bool)    { s.Row.SetBool(slotInsaneDamage, v) }
func (s *Stats) InsanelyTough() bool       { return s.Row.GetBool(slotInsanelyTough) }
func (s *Stats) SetInsanelyTough(v bool)   { s.Row.SetBool(slotInsanelyTough, v) }
func (s *Stats) CurseImmunity() bool       { return s.Row.GetBool(slotCurseImmunity) }
func (s *Stats) SetCurseImmunity(v bool)   { s.Row.SetBool(slotCurseImmunity, v) }
func (s *Stats) ToxicImmunity() bool       { return s.Row.GetBool(slotToxicImmunity) }
func (s *Stats) SetToxicImmunity(v bool)   { s.Row.SetBool(slotToxicImmunity, v) }
func (s *Stats) SurgeImmunity() bool       { return s.Row.GetBool(slotSurgeImmunity) }
func (s *Stats) SetSurgeImmunity(v bool)   { s.Row.SetBool(slotSurgeImmunity, v) }
func (s *Stats) WarpBlocker() bool         { return s.Row.GetBool(slotWarpBlocker) }
func (s *Stats) SetWarpBlocker(v bool)     { s.Row.SetBool(slotWarpBlocker, v) }
func (s *Stats) EvaKiller() bool           { return s.Row.GetBool(slotEvaKiller) }
func (s *Stats) SetEvaKiller(v bool)       { s.Row.SetBool(slotEvaKiller, v) }
func (s *Stats) ZombieKiller() bool        { return s.Row.GetBool(slotZombieKiller) }
func (s *Stats) SetZombieKiller(v bool)    { s.Row.SetBool(slotZombieKiller, v) }
func (s *Stats) WitchKiller() bool         { return s.Row.GetBool(slotWitchKiller) }
func (s *Stats) SetWitchKiller(v bool)     { s.Row.SetBool(slotWitchKiller, v) }
func (s *Stats) CollossusSlayer() bool     { return s.Row.GetBool(slotCollossusSlayer) }
func (s *Stats) SetCollossusSlayer(v bool) { s.Row.SetBool(slotCollossusSlayer, v) }
func (s *Stats) SoulStrike() bool          { return s.Row.GetBool(slotSoulStrike) }
func (s *Stats) SetSoulStrike(v bool)      { s.Row.SetBool(slotSoulStrike, v) }
func (s *Stats) BehemothSlayer() bool      { return s.Row.GetBool(slotBehemothSlayer) }
func (s *Stats) SetBehemothSlayer(v bool)  { s.Row.SetBool(slotBehemothSlayer, v) }

// BehemothDodgeProb and BehemothDodgeDuration are the dodge-on-hit
// probability (percent) and duration (frames) against behemoth attacks.
func (s *Stats) BehemothDodgeProb() int          { return s.Row.Get(slotBehemothDodgeProb) }
func (s *Stats) SetBehemothDodgeProb(v int)      { s.Row.Set(slotBehemothDodgeProb, v) }
func (s *Stats) BehemothDodgeDuration() int      { return s.Row.Get(slotBehemothDodgeTime) }
func (s *Stats) SetBehemothDodgeDuration(v int)  { s.Row.Set(slotBehemothDodgeTime, v) }

func (s *Stats) KnockbackProb() int     { return s.Row.Get(slotKnockbackProb) }
func (s *Stats) SetKnockbackProb(v int) { s.Row.Set(slotKnockbackProb, v) }
func (s *Stats) CritProb() int         { return s.Row.Get(slotCritProb) }
func (s *Stats) SetCritProb(v int)     { s.Row.Set(slotCritProb, v) }

// Slot and SetSlot give raw access to any index, including slots without a
// named accessor above.
func (s *Stats) Slot(i int) int         { return s.Row.Get(i) }
func (s *Stats) SetSlot(i int, v int)   { s.Row.Set(i, v) }
