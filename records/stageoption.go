package records

import "github.com/tdmod/tdmod/bdata"

// stageOptionWidth is the Stage_option.csv row width: map id plus eight
// deployment-restriction fields, all integers, no header row.
const stageOptionWidth = 9

const (
	slotSOMapID          = 0
	slotSOSupport        = 1
	slotSOStageIndex     = 2
	slotSORarityLimit    = 3
	slotSODeployLimit    = 4
	slotSORowLimit       = 5
	slotSOCostLimitLower = 6
	slotSOCostLimitUpper = 7
	slotSOCatGroupID     = 8
)

// StageOption is one per-stage deployment-restriction row (support unit
// allowance, rarity/cost/deploy limits, restricted cat group).
type StageOption struct {
	Row *IntRow
}

// NewStageOption builds an all-zero StageOption row.
func NewStageOption() *StageOption {
	return &StageOption{Row: NewIntRow(stageOptionWidth)}
}

// ReadStageOption parses one comma-delimited Stage_option.csv line.
func ReadStageOption(line string, delim bdata.Delimiter) (*StageOption, error) {
	row, err := ParseIntRow(line, delim, stageOptionWidth)
	if err != nil {
		return nil, err
	}
	return &StageOption{Row: row}, nil
}

// Write renders the row back to its canonical delimited form.
func (s *StageOption) Write(delim bdata.Delimiter) string { return s.Row.String(delim) }

// Clone deep-copies the row.
func (s *StageOption) Clone() *StageOption { return &StageOption{Row: s.Row.Clone()} }

// Merge applies the same three-way slot merge as Stats.Merge.
func (s *StageOption) Merge(base, incoming *StageOption) {
	for i := 0; i < stageOptionWidth; i++ {
		if incoming.Row.Get(i) != base.Row.Get(i) {
			s.Row.Set(i, incoming.Row.Get(i))
		}
	}
}

func (s *StageOption) MapID() int           { return s.Row.Get(slotSOMapID) }
func (s *StageOption) SetMapID(v int)       { s.Row.Set(slotSOMapID, v) }
func (s *StageOption) Support() int         { return s.Row.Get(slotSOSupport) }
func (s *StageOption) SetSupport(v int)     { s.Row.Set(slotSOSupport, v) }
func (s *StageOption) StageIndex() int      { return s.Row.Get(slotSOStageIndex) }
func (s *StageOption) SetStageIndex(v int)  { s.Row.Set(slotSOStageIndex, v) }
func (s *StageOption) RarityLimit() int     { return s.Row.Get(slotSORarityLimit) }
func (s *StageOption) SetRarityLimit(v int) { s.Row.Set(slotSORarityLimit, v) }
func (s *StageOption) DeployLimit() int     { return s.Row.Get(slotSODeployLimit) }
func (s *StageOption) SetDeployLimit(v int) { s.Row.Set(slotSODeployLimit, v) }
func (s *StageOption) RowLimit() int        { return s.Row.Get(slotSORowLimit) }
func (s *StageOption) SetRowLimit(v int)    { s.Row.Set(slotSORowLimit, v) }
func (s *StageOption) CostLimitLower() int  { return s.Row.Get(slotSOCostLimitLower) }
func (s *StageOption) SetCostLimitLower(v int) { s.Row.Set(slotSOCostLimitLower, v) }
func (s *StageOption) CostLimitUpper() int  { return s.Row.Get(slotSOCostLimitUpper) }
func (s *StageOption) SetCostLimitUpper(v int) { s.Row.Set(slotSOCostLimitUpper, v) }
func (s *StageOption) CatGroupID() int      { return s.Row.Get(slotSOCatGroupID) }
func (s *StageOption) SetCatGroupID(v int)  { s.Row.Set(slotSOCatGroupID, v) }
