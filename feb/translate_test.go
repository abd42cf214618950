package feb

import "testing"

func TestCheckAbility(t *testing.T) {
	abi := 1<<0 | 1<<16
	if !checkAbility(abi, 0) {
		t.Error("bit 0 should be set")
	}
	if !checkAbility(abi, 16) {
		t.Error("bit 16 should be set")
	}
	if checkAbility(abi, 2) {
		t.Error("bit 2 should not be set")
	}
}

func TestGetTraitByID(t *testing.T) {
	traits := []struct {
		ID int `json:"id"`
	}{{ID: 0}, {ID: 3}, {ID: 9}}
	if !getTraitByID(traits, 3) {
		t.Error("want trait 3 present")
	}
	if getTraitByID(traits, 4) {
		t.Error("want trait 4 absent")
	}
}

func TestInsaneDamageLastWriteWins(t *testing.T) {
	// Only bit 2 set: final value should be false, since bit 16's write
	// (false here) happens last and overwrites bit 2's true.
	du := statsJSON{Abi: 1 << 2}
	stats := formToStats(du)
	if stats.InsaneDamage() {
		t.Error("insane_damage should reflect bit 16, not bit 2, when they disagree")
	}

	du2 := statsJSON{Abi: 1<<2 | 1<<16}
	stats2 := formToStats(du2)
	if !stats2.InsaneDamage() {
		t.Error("insane_damage should be true when bit 16 is set")
	}
}

func TestTargetWitchAndWitchKillerShareBit10(t *testing.T) {
	du := statsJSON{Abi: 1 << 10}
	stats := formToStats(du)
	if !stats.TargetWitch() || !stats.WitchKiller() {
		t.Error("target_witch and witch_killer should both derive from ability bit 10")
	}
}

func TestBehemothFieldsShareBSTHUNTProc(t *testing.T) {
	du := statsJSON{Rep: struct {
		Proc map[string]procJSON `json:"proc"`
	}{Proc: map[string]procJSON{"BSTHUNT": {Prob: 30, Time: 90}}}}
	stats := formToStats(du)
	if !stats.BehemothSlayer() {
		t.Error("want behemoth_slayer true when BSTHUNT prob is non-zero")
	}
	if stats.BehemothDodgeProb() != 30 {
		t.Errorf("BehemothDodgeProb() = %d, want 30", stats.BehemothDodgeProb())
	}
	if stats.BehemothDodgeDuration() != 90 {
		t.Errorf("BehemothDodgeDuration() = %d, want 90", stats.BehemothDodgeDuration())
	}
}

func TestParseUnitDir(t *testing.T) {
	cases := []struct {
		dir           string
		catID, form   int
		ok            bool
	}{
		{"000_f", 0, 0, true},
		{"014_c", 14, 1, true},
		{"014_s", 14, 2, true},
		{"014_u", 14, 3, true},
		{"bad", 0, 0, false},
		{"014_x", 0, 0, false},
	}
	for _, c := range cases {
		catID, form, ok := parseUnitDir(c.dir)
		if ok != c.ok {
			t.Errorf("parseUnitDir(%q) ok = %v, want %v", c.dir, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if catID != c.catID || form != c.form {
			t.Errorf("parseUnitDir(%q) = (%d,%d), want (%d,%d)", c.dir, catID, form, c.catID, c.form)
		}
	}
}

func TestSplitBR(t *testing.T) {
	got := splitBR("line one<br>line two<br>line three")
	want := []string{"line one", "line two", "line three"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnitsGroupsFormsByCatID(t *testing.T) {
	b := &Bundle{Pack: packJSON{}}
	b.Pack.Units.Data = append(b.Pack.Units.Data, struct {
		Val unitJSON `json:"val"`
	}{Val: unitJSON{Forms: []formJSON{
		{Anim: struct {
			ID string `json:"id"`
		}{ID: "000_f"}},
		{Anim: struct {
			ID string `json:"id"`
		}{ID: "000_c"}},
	}}})

	cats := b.Units()
	cat, ok := cats[0]
	if !ok {
		t.Fatal("want cat id 0 present")
	}
	if len(cat.Forms) != 2 {
		t.Fatalf("want 2 forms, got %d", len(cat.Forms))
	}
}
