package records

import (
	"fmt"
	"sort"
)

// MapIndexType partitions the stage-id space into named categories (main
// story chapters, collab events, towers, gauntlets, ...). Each marker is
// the first stage id in its category; a stage's category is whichever
// marker is the largest one not greater than its id.
type MapIndexType int

const (
	MapSOL             MapIndexType = 0
	MapRegularEvent    MapIndexType = 1000
	MapCollab          MapIndexType = 2000
	MapStory           MapIndexType = 3000
	MapExtra           MapIndexType = 4000
	MapDojoCatclaw     MapIndexType = 6000
	MapTower           MapIndexType = 7000
	MapChallenge       MapIndexType = 12000
	MapUncanny         MapIndexType = 13000
	MapDrink           MapIndexType = 14000
	MapLegendQuest     MapIndexType = 16000
	MapOutbreaksEOC    MapIndexType = 20000
	MapOutbreaksITF    MapIndexType = 21000
	MapOutbreaksCOTC   MapIndexType = 22000
	MapFilibuster      MapIndexType = 23000
	MapGauntlet        MapIndexType = 24000
	MapEngima          MapIndexType = 25000
	MapCollabGauntlet  MapIndexType = 27000
	MapBehemoth        MapIndexType = 31000
)

var mapIndexNames = map[MapIndexType]string{
	MapSOL:            "SOL",
	MapRegularEvent:   "RegularEvent",
	MapCollab:         "Collab",
	MapStory:          "Story",
	MapExtra:          "Extra",
	MapDojoCatclaw:    "DojoCatclaw",
	MapTower:          "Tower",
	MapChallenge:      "Challenge",
	MapUncanny:        "Uncanny",
	MapDrink:          "Drink",
	MapLegendQuest:    "LegendQuest",
	MapOutbreaksEOC:   "OutbreaksEOC",
	MapOutbreaksITF:   "OutbreaksITF",
	MapOutbreaksCOTC:  "OutbreaksCOTC",
	MapFilibuster:     "Filibuster",
	MapGauntlet:       "Gauntlet",
	MapEngima:         "Engima",
	MapCollabGauntlet: "CollabGauntlet",
	MapBehemoth:       "Behemoth",
}

// allMapIndexTypes returns every marker sorted ascending by value.
func allMapIndexTypes() []MapIndexType {
	out := make([]MapIndexType, 0, len(mapIndexNames))
	for k := range mapIndexNames {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns the partition's name (e.g. "LegendQuest").
func (m MapIndexType) String() string {
	if name, ok := mapIndexNames[m]; ok {
		return name
	}
	return "Unknown"
}

// FromIndex returns the partition a stage id belongs to: the largest
// marker not greater than index. A negative index has no partition.
func FromIndex(index int) (MapIndexType, bool) {
	if index < 0 {
		return 0, false
	}
	types := allMapIndexTypes()
	var best MapIndexType
	found := false
	for _, t := range types {
		if int(t) <= index {
			best = t
			found = true
			continue
		}
		break
	}
	return best, found
}

// StageFileName builds the representative filename template for a stage's
// map data within its partition, e.g. "stageDataStory0_000.csv" for a
// Story-partition stage. The original format cross-references three
// parallel per-partition enums (map/stage-data/stage-name) that all share
// the same member name per category; this toolkit collapses that to a
// single partition-name template since the record model here only needs
// one representative filename shape per category, not the full historical
// enum surface.
func (m MapIndexType) StageFileName(chapter, stage int) string {
	return fmt.Sprintf("stageData%s%d_%03d.csv", m.String(), chapter, stage)
}
