package records

import "github.com/gocarina/gocsv"

// StageName is one entry of a stage-name table: the display name for a
// given stage within a map, indexed by stage_index within its map.
type StageName struct {
	StageID    int    `csv:"stage_id"`
	StageIndex int    `csv:"stage_index"`
	Name       string `csv:"name"`
}

// ReadStageNames parses a header-keyed stage-name CSV.
func ReadStageNames(data []byte) ([]*StageName, error) {
	var out []*StageName
	if err := gocsv.UnmarshalBytes(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteStageNames renders a slice of StageName back to CSV bytes.
func WriteStageNames(names []*StageName) ([]byte, error) {
	return gocsv.MarshalBytes(&names)
}

// MergeStageName overrides current's name with incoming's whenever
// incoming differs from base, the same override rule the positional
// records apply at slot granularity.
func MergeStageName(current, base, incoming *StageName) *StageName {
	out := *current
	if incoming.Name != base.Name {
		out.Name = incoming.Name
	}
	return &out
}
