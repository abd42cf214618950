package records

import "github.com/gocarina/gocsv"

// MapOption is one row of Map_option.csv: per-stage star/reset/difficulty
// display configuration. Unlike the positional records above this table
// is header-keyed and mixes int, bool, and string columns, so it's parsed
// with gocsv's struct-tag mapping instead of the shared IntRow machinery.
type MapOption struct {
	StageID         int    `csv:"stage_id"`
	NumberOfStars   int    `csv:"number_of_stars"`
	StarMult1       int    `csv:"star_mult_1"`
	StarMult2       int    `csv:"star_mult_2"`
	StarMult3       int    `csv:"star_mult_3"`
	StarMult4       int    `csv:"star_mult_4"`
	GuerrillaSet    int    `csv:"guerrilla_set"`
	ResetType       int    `csv:"reset_type"`
	OneTimeDisplay  bool   `csv:"one_time_display"`
	DisplayOrder    int    `csv:"display_order"`
	Interval        int    `csv:"interval"`
	ChallengeFlag   bool   `csv:"challenge_flag"`
	DifficultyMask  int    `csv:"difficulty_mask"`
	HideAfterClear  bool   `csv:"hide_after_clear"`
	MapComment      string `csv:"map_comment"`
}

// ReadMapOptions parses a full Map_option.csv (including its header row)
// into one MapOption per stage.
func ReadMapOptions(data []byte) ([]*MapOption, error) {
	var out []*MapOption
	if err := gocsv.UnmarshalBytes(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteMapOptions renders a slice of MapOption back to CSV bytes, header
// row included.
func WriteMapOptions(options []*MapOption) ([]byte, error) {
	return gocsv.MarshalBytes(&options)
}

// MergeMapOption applies the same three-way override rule as the
// positional records: fields where incoming differs from base take
// incoming's value, everything else keeps the current row.
func MergeMapOption(current, base, incoming *MapOption) *MapOption {
	out := *current
	if incoming.NumberOfStars != base.NumberOfStars {
		out.NumberOfStars = incoming.NumberOfStars
	}
	if incoming.StarMult1 != base.StarMult1 {
		out.StarMult1 = incoming.StarMult1
	}
	if incoming.StarMult2 != base.StarMult2 {
		out.StarMult2 = incoming.StarMult2
	}
	if incoming.StarMult3 != base.StarMult3 {
		out.StarMult3 = incoming.StarMult3
	}
	if incoming.StarMult4 != base.StarMult4 {
		out.StarMult4 = incoming.StarMult4
	}
	if incoming.GuerrillaSet != base.GuerrillaSet {
		out.GuerrillaSet = incoming.GuerrillaSet
	}
	if incoming.ResetType != base.ResetType {
		out.ResetType = incoming.ResetType
	}
	if incoming.OneTimeDisplay != base.OneTimeDisplay {
		out.OneTimeDisplay = incoming.OneTimeDisplay
	}
	if incoming.DisplayOrder != base.DisplayOrder {
		out.DisplayOrder = incoming.DisplayOrder
	}
	if incoming.Interval != base.Interval {
		out.Interval = incoming.Interval
	}
	if incoming.ChallengeFlag != base.ChallengeFlag {
		out.ChallengeFlag = incoming.ChallengeFlag
	}
	if incoming.DifficultyMask != base.DifficultyMask {
		out.DifficultyMask = incoming.DifficultyMask
	}
	if incoming.HideAfterClear != base.HideAfterClear {
		out.HideAfterClear = incoming.HideAfterClear
	}
	if incoming.MapComment != base.MapComment {
		out.MapComment = incoming.MapComment
	}
	return &out
}

// Partition returns the category this stage id falls under.
func (m *MapOption) Partition() (MapIndexType, bool) {
	return FromIndex(m.StageID)
}
