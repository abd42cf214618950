package records

import "testing"

func TestFromIndexExactMarker(t *testing.T) {
	mt, ok := FromIndex(3000)
	if !ok || mt != MapStory {
		t.Fatalf("want Story at exact marker, got %v ok=%v", mt, ok)
	}
}

func TestFromIndexBetweenMarkers(t *testing.T) {
	mt, ok := FromIndex(3250)
	if !ok || mt != MapStory {
		t.Fatalf("want Story between 3000 and 4000, got %v ok=%v", mt, ok)
	}
}

func TestFromIndexAtFirstMarker(t *testing.T) {
	// SOL (0) is the lowest marker; anything from 0 up resolves to it or
	// a higher one, but a negative id has no partition at all.
	mt, ok := FromIndex(0)
	if !ok || mt != MapSOL {
		t.Fatalf("want SOL at 0, got %v ok=%v", mt, ok)
	}
}

func TestFromIndexNegativeHasNoPartition(t *testing.T) {
	_, ok := FromIndex(-1)
	if ok {
		t.Fatal("want no partition for a negative stage id")
	}
}

func TestFromIndexLastMarker(t *testing.T) {
	mt, ok := FromIndex(40000)
	if !ok || mt != MapBehemoth {
		t.Fatalf("want Behemoth beyond the last marker, got %v ok=%v", mt, ok)
	}
}

func TestStageFileNameShape(t *testing.T) {
	name := MapStory.StageFileName(0, 5)
	want := "stageDataStory0_005.csv"
	if name != want {
		t.Fatalf("want %q, got %q", want, name)
	}
}
