package records

import "testing"

const sampleStageNamesCSV = "stage_id,stage_index,name\n3000,0,Floating Garden\n3000,1,Somewhat Nostalgic Street\n"

func TestReadStageNames(t *testing.T) {
	names, err := ReadStageNames([]byte(sampleStageNamesCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("want 2 rows, got %d", len(names))
	}
	if names[0].Name != "Floating Garden" {
		t.Fatalf("unexpected name: %q", names[0].Name)
	}
}

func TestWriteStageNamesRoundTrip(t *testing.T) {
	names, err := ReadStageNames([]byte(sampleStageNamesCSV))
	if err != nil {
		t.Fatal(err)
	}
	out, err := WriteStageNames(names)
	if err != nil {
		t.Fatal(err)
	}
	roundTripped, err := ReadStageNames(out)
	if err != nil {
		t.Fatal(err)
	}
	if roundTripped[1].Name != "Somewhat Nostalgic Street" {
		t.Fatalf("name lost on round trip: %+v", roundTripped[1])
	}
}

func TestMergeStageNameIncomingWins(t *testing.T) {
	base := &StageName{Name: "Old Name"}
	incoming := &StageName{Name: "New Name"}
	current := &StageName{Name: "Old Name"}

	merged := MergeStageName(current, base, incoming)
	if merged.Name != "New Name" {
		t.Fatalf("want incoming's name to win, got %q", merged.Name)
	}
}

func TestMergeStageNamePreservesLocalEdit(t *testing.T) {
	base := &StageName{Name: "Old Name"}
	incoming := &StageName{Name: "Old Name"} // unchanged from base
	current := &StageName{Name: "Locally Renamed"}

	merged := MergeStageName(current, base, incoming)
	if merged.Name != "Locally Renamed" {
		t.Fatalf("want local edit preserved when incoming matches base, got %q", merged.Name)
	}
}
