package mod

import (
	"testing"

	"github.com/tdmod/tdmod/bdata"
	"github.com/tdmod/tdmod/catalog"
	"github.com/tdmod/tdmod/country"
	"github.com/tdmod/tdmod/pack"
	"github.com/tdmod/tdmod/records"
)

func gv() country.Version { return country.Version{Major: 11, Minor: 0, Patch: 0} }

func newTestPacks(t *testing.T, files map[string]string) *catalog.Packs {
	t.Helper()
	p := catalog.New(country.EN, gv())
	pf := pack.NewPackFile("DataLocal", country.EN, gv())
	for name, content := range files {
		pf.SetFile(name, bdata.FromString(content))
	}
	p.AddPack(pf)
	return p
}

func TestApplyStatEditOverridesTargetSlot(t *testing.T) {
	base := records.NewStats()
	base.SetHP(100)
	packs := newTestPacks(t, map[string]string{
		records.StatFileName(0): base.Write(bdata.Comma),
	})

	m := &Manifest{
		Stats: []StatEdit{{CatID: 0, Form: 0, Fields: map[string]string{"hp": "250"}}},
	}

	if err := m.Apply(packs, bdata.Comma); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	raw, err := packs.GetRaw(records.StatFileName(0), false)
	if err != nil {
		t.Fatalf("GetRaw failed: %v", err)
	}
	stats, err := records.ReadStats(raw.String(), bdata.Comma)
	if err != nil {
		t.Fatalf("ReadStats failed: %v", err)
	}
	if stats.HP() != 250 {
		t.Errorf("HP = %d, want 250", stats.HP())
	}
}

func TestApplyUnitBuyEditGrowsFileToCatID(t *testing.T) {
	packs := newTestPacks(t, map[string]string{
		"unitbuy.csv": records.NewUnitBuy().Write(bdata.Comma),
	})

	m := &Manifest{
		UnitBuy: []UnitBuyEdit{{CatID: 2, Fields: map[string]string{"rarity": "3"}}},
	}
	if err := m.Apply(packs, bdata.Comma); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	raw, err := packs.GetRaw("unitbuy.csv", false)
	if err != nil {
		t.Fatalf("GetRaw failed: %v", err)
	}
	lines, err := readLines(packs, "unitbuy.csv")
	if err != nil {
		t.Fatalf("readLines failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("want 3 rows after growing to cat_id 2, got %d: %q", len(lines), raw.String())
	}
	ub, err := records.ReadUnitBuy(lines[2], bdata.Comma)
	if err != nil {
		t.Fatalf("ReadUnitBuy failed: %v", err)
	}
	if ub.Rarity() != 3 {
		t.Errorf("Rarity = %d, want 3", ub.Rarity())
	}
}

func TestApplyLocalizableEditPreservesOtherKeys(t *testing.T) {
	packs := newTestPacks(t, map[string]string{
		"localizable.tsv": "greeting\thello\nfarewell\tbye\n",
	})
	m := &Manifest{
		Localizable: []LocalizableEdit{{Key: "greeting", Value: "hi"}},
	}
	if err := m.Apply(packs, bdata.Comma); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	raw, err := packs.GetRaw("localizable.tsv", false)
	if err != nil {
		t.Fatalf("GetRaw failed: %v", err)
	}
	l := records.ReadLocalizable(raw.String())
	if v, _ := l.Get("greeting"); v != "hi" {
		t.Errorf("greeting = %q, want hi", v)
	}
	if v, _ := l.Get("farewell"); v != "bye" {
		t.Errorf("farewell should be untouched, got %q", v)
	}
}

func TestApplyStageEditCreatesNewRow(t *testing.T) {
	out, err := records.WriteMapOptions(nil)
	if err != nil {
		t.Fatalf("WriteMapOptions failed: %v", err)
	}
	packs := newTestPacks(t, map[string]string{
		"Map_option.csv": string(out),
	})
	m := &Manifest{
		Stage: []StageEdit{{StageID: 5, Fields: map[string]string{"number_of_stars": "3"}}},
	}
	if err := m.Apply(packs, bdata.Comma); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	raw, err := packs.GetRaw("Map_option.csv", false)
	if err != nil {
		t.Fatalf("GetRaw failed: %v", err)
	}
	options, err := records.ReadMapOptions(raw.Bytes())
	if err != nil {
		t.Fatalf("ReadMapOptions failed: %v", err)
	}
	if len(options) != 1 || options[0].StageID != 5 || options[0].NumberOfStars != 3 {
		t.Fatalf("options = %+v", options)
	}
}

func TestApplyStatEditRejectsUnknownField(t *testing.T) {
	base := records.NewStats()
	packs := newTestPacks(t, map[string]string{
		records.StatFileName(0): base.Write(bdata.Comma),
	})
	m := &Manifest{
		Stats: []StatEdit{{CatID: 0, Form: 0, Fields: map[string]string{"not_a_real_field": "1"}}},
	}
	if err := m.Apply(packs, bdata.Comma); err == nil {
		t.Fatal("want error for unknown stats field")
	}
}
