package records

import (
	"testing"

	"github.com/tdmod/tdmod/bdata"
)

func TestStatsReadWriteRoundTrip(t *testing.T) {
	s := NewStats()
	s.SetHP(1000)
	s.SetCost(300)
	s.SetTargetRed(true)
	s.SetBehemothDodgeProb(50)
	s.SetBehemothDodgeDuration(120)

	line := s.Write(bdata.Comma)
	again, err := ReadStats(line, bdata.Comma)
	if err != nil {
		t.Fatal(err)
	}
	if again.HP() != 1000 || again.Cost() != 300 {
		t.Fatalf("round trip lost scalar fields: %+v", again)
	}
	if !again.TargetRed() {
		t.Fatal("want target_red true after round trip")
	}
	if again.BehemothDodgeProb() != 50 || again.BehemothDodgeDuration() != 120 {
		t.Fatalf("behemoth dodge fields lost: prob=%d dur=%d", again.BehemothDodgeProb(), again.BehemothDodgeDuration())
	}
}

func TestStatsMergeIncomingWinsOnDiff(t *testing.T) {
	base := NewStats()
	base.SetHP(100)

	incoming := NewStats()
	incoming.SetHP(200)

	current := NewStats()
	current.SetHP(150) // diverged from base independently

	current.Merge(base, incoming)
	if current.HP() != 200 {
		t.Fatalf("want incoming's HP to win, got %d", current.HP())
	}
}

func TestStatsMergeKeepsCurrentWhenIncomingMatchesBase(t *testing.T) {
	base := NewStats()
	base.SetCost(300)

	incoming := NewStats()
	incoming.SetCost(300) // unchanged from base

	current := NewStats()
	current.SetCost(999) // local edit

	current.Merge(base, incoming)
	if current.Cost() != 999 {
		t.Fatalf("want local edit preserved when incoming matches base, got %d", current.Cost())
	}
}

func TestStatsTraitFlagsIndependent(t *testing.T) {
	s := NewStats()
	s.SetTargetAngel(true)
	s.SetTargetAlien(true)
	if !s.TargetAngel() || !s.TargetAlien() {
		t.Fatal("want both flags set")
	}
	if s.TargetZombie() {
		t.Fatal("want unrelated flag to remain false")
	}
}

func TestStatsCloneIndependent(t *testing.T) {
	s := NewStats()
	s.SetHP(500)
	clone := s.Clone()
	clone.SetHP(1)
	if s.HP() != 500 {
		t.Fatalf("clone mutation leaked, got %d", s.HP())
	}
}
