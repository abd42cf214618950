package mod

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tdmod/tdmod/bdata"
	"github.com/tdmod/tdmod/catalog"
	"github.com/tdmod/tdmod/records"
)

// statSlots maps the field names a manifest may use in a StatEdit.Fields
// map to the Stats row slot they write. Kept as an explicit table rather
// than reflection over the named accessors in records/stats.go, so a
// manifest author's typo surfaces as an "unknown field" error instead of
// silently landing on the wrong slot.
var statSlots = map[string]int{
	"hp":                  0,
	"kbs":                 1,
	"speed":               2,
	"attack_1_damage":     3,
	"attack_interval":     4,
	"range":               5,
	"cost":                6,
	"recharge_time":       7,
	"target_red":          10,
	"area_attack":         12,
	"target_floating":     16,
	"target_black":        17,
	"target_metal":        18,
	"target_traitless":    19,
	"target_angel":        20,
	"target_alien":        21,
	"target_zombie":       22,
	"strong":              23,
	"knockback_prob":      24,
	"resistant":           29,
	"massive_damage":      30,
	"crit_prob":           31,
	"zombie_killer":       52,
	"witch_killer":        53,
	"target_witch":        54,
	"warp_blocker":        75,
	"target_eva":          76,
	"eva_killer":          77,
	"target_relic":        78,
	"curse_immunity":      79,
	"insanely_tough":      80,
	"insane_damage":       81,
	"toxic_immunity":      90,
	"surge_immunity":      91,
	"target_aku":          96,
	"collossus_slayer":    97,
	"soul_strike":         98,
	"behemoth_slayer":     105,
	"behemoth_dodge_prob": 106,
	"behemoth_dodge_time": 107,
}

// unitBuySlots is the UnitBuy counterpart of statSlots.
var unitBuySlots = map[string]int{
	"stage_unlock":  0,
	"purchase_cost": 1,
	"rarity":        13,
	"gacha_rarity":  17,
	"sell_price":    16,
	"true_form_id":  23,
	"evolve_cost":   27,
}

// stageFields are the MapOption struct fields a StageEdit may set,
// matched case-insensitively against Fields keys.
var stageFields = map[string]func(*records.MapOption, int){
	"number_of_stars":  func(m *records.MapOption, v int) { m.NumberOfStars = v },
	"star_mult_1":      func(m *records.MapOption, v int) { m.StarMult1 = v },
	"star_mult_2":      func(m *records.MapOption, v int) { m.StarMult2 = v },
	"star_mult_3":      func(m *records.MapOption, v int) { m.StarMult3 = v },
	"star_mult_4":      func(m *records.MapOption, v int) { m.StarMult4 = v },
	"guerrilla_set":    func(m *records.MapOption, v int) { m.GuerrillaSet = v },
	"reset_type":       func(m *records.MapOption, v int) { m.ResetType = v },
	"one_time_display": func(m *records.MapOption, v int) { m.OneTimeDisplay = v != 0 },
	"display_order":    func(m *records.MapOption, v int) { m.DisplayOrder = v },
	"interval":         func(m *records.MapOption, v int) { m.Interval = v },
	"challenge_flag":   func(m *records.MapOption, v int) { m.ChallengeFlag = v != 0 },
	"difficulty_mask":  func(m *records.MapOption, v int) { m.DifficultyMask = v },
	"hide_after_clear": func(m *records.MapOption, v int) { m.HideAfterClear = v != 0 },
}

// Apply renders the manifest's templated fields and applies every edit
// it describes against packs, in the order the spec fixes: record edits
// first (stats, unit_buy, localizable, stage), then raw asset injects.
// Each edit is a three-way merge against the catalog's own base value, so
// applying the same manifest twice, or two manifests that touch
// different fields of the same record, composes instead of clobbering.
func (m *Manifest) Apply(packs *catalog.Packs, delim bdata.Delimiter) error {
	for _, edit := range m.Stats {
		if err := m.applyStatEdit(packs, delim, edit); err != nil {
			return fmt.Errorf("stats edit cat_id=%d form=%d: %w", edit.CatID, edit.Form, err)
		}
	}
	for _, edit := range m.UnitBuy {
		if err := m.applyUnitBuyEdit(packs, delim, edit); err != nil {
			return fmt.Errorf("unit_buy edit cat_id=%d: %w", edit.CatID, err)
		}
	}
	if len(m.Localizable) > 0 {
		if err := m.applyLocalizableEdits(packs); err != nil {
			return fmt.Errorf("localizable edit: %w", err)
		}
	}
	for _, edit := range m.Stage {
		if err := m.applyStageEdit(packs, edit); err != nil {
			return fmt.Errorf("stage edit stage_id=%d: %w", edit.StageID, err)
		}
	}
	for _, inject := range m.Injects {
		if err := m.applyInject(packs, inject); err != nil {
			return fmt.Errorf("inject %s: %w", inject.Src, err)
		}
	}
	return nil
}

func (m *Manifest) applyStatEdit(packs *catalog.Packs, delim bdata.Delimiter, edit StatEdit) error {
	name := records.StatFileName(edit.CatID)
	lines, err := readLines(packs, name)
	if err != nil {
		return err
	}
	if edit.Form >= len(lines) {
		return fmt.Errorf("form %d out of range (file has %d forms)", edit.Form, len(lines))
	}

	current, err := records.ReadStats(lines[edit.Form], delim)
	if err != nil {
		return err
	}
	base := current.Clone()
	incoming := current.Clone()
	for field, rawValue := range edit.Fields {
		field, err = m.render("stats.field", field)
		if err != nil {
			return err
		}
		rawValue, err = m.render("stats.value", rawValue)
		if err != nil {
			return err
		}
		slot, ok := statSlots[strings.ToLower(field)]
		if !ok {
			return fmt.Errorf("unknown stats field %q", field)
		}
		v, err := strconv.Atoi(strings.TrimSpace(rawValue))
		if err != nil {
			return fmt.Errorf("stats field %q: %w", field, err)
		}
		incoming.Row.Set(slot, v)
	}
	current.Merge(base, incoming)
	lines[edit.Form] = current.Write(delim)
	return writeLines(packs, name, lines)
}

func (m *Manifest) applyUnitBuyEdit(packs *catalog.Packs, delim bdata.Delimiter, edit UnitBuyEdit) error {
	const fileName = "unitbuy.csv"
	lines, err := readLines(packs, fileName)
	if err != nil {
		return err
	}
	for len(lines) <= edit.CatID {
		lines = append(lines, records.NewUnitBuy().Write(delim))
	}

	current, err := records.ReadUnitBuy(lines[edit.CatID], delim)
	if err != nil {
		return err
	}
	base := current.Clone()
	incoming := current.Clone()
	for field, rawValue := range edit.Fields {
		field, err = m.render("unit_buy.field", field)
		if err != nil {
			return err
		}
		rawValue, err = m.render("unit_buy.value", rawValue)
		if err != nil {
			return err
		}
		slot, ok := unitBuySlots[strings.ToLower(field)]
		if !ok {
			return fmt.Errorf("unknown unit_buy field %q", field)
		}
		v, err := strconv.Atoi(strings.TrimSpace(rawValue))
		if err != nil {
			return fmt.Errorf("unit_buy field %q: %w", field, err)
		}
		incoming.SetSlot(slot, v)
	}
	current.Merge(base, incoming)
	lines[edit.CatID] = current.Write(delim)
	return writeLines(packs, fileName, lines)
}

func (m *Manifest) applyLocalizableEdits(packs *catalog.Packs) error {
	const fileName = "localizable.tsv"
	raw, err := packs.GetRaw(fileName, true)
	if err != nil {
		return err
	}
	text := ""
	if raw != nil {
		text = raw.String()
	}
	current := records.ReadLocalizable(text)
	base := current.Clone()
	incoming := current.Clone()
	for _, edit := range m.Localizable {
		key, err := m.render("localizable.key", edit.Key)
		if err != nil {
			return err
		}
		value, err := m.render("localizable.value", edit.Value)
		if err != nil {
			return err
		}
		incoming.Set(key, value)
	}
	current.Merge(base, incoming)
	_, err = packs.SetFile(fileName, bdata.FromString(current.Write()))
	return err
}

func (m *Manifest) applyStageEdit(packs *catalog.Packs, edit StageEdit) error {
	const fileName = "Map_option.csv"
	raw, err := packs.GetRaw(fileName, true)
	if err != nil {
		return err
	}
	var options []*records.MapOption
	if raw != nil {
		options, err = records.ReadMapOptions(raw.Bytes())
		if err != nil {
			return err
		}
	}

	var current *records.MapOption
	for _, o := range options {
		if o.StageID == edit.StageID {
			current = o
			break
		}
	}
	if current == nil {
		current = &records.MapOption{StageID: edit.StageID}
		options = append(options, current)
	}
	base := *current
	incoming := *current
	for field, rawValue := range edit.Fields {
		field, err = m.render("stage.field", field)
		if err != nil {
			return err
		}
		rawValue, err = m.render("stage.value", rawValue)
		if err != nil {
			return err
		}
		setter, ok := stageFields[strings.ToLower(field)]
		if !ok {
			return fmt.Errorf("unknown stage field %q", field)
		}
		v, err := strconv.Atoi(strings.TrimSpace(rawValue))
		if err != nil {
			return fmt.Errorf("stage field %q: %w", field, err)
		}
		setter(&incoming, v)
	}
	merged := records.MergeMapOption(current, &base, &incoming)
	for i, o := range options {
		if o.StageID == edit.StageID {
			options[i] = merged
			break
		}
	}

	out, err := records.WriteMapOptions(options)
	if err != nil {
		return err
	}
	_, err = packs.SetFile(fileName, bdata.New(out))
	return err
}

func (m *Manifest) applyInject(packs *catalog.Packs, inject Inject) error {
	src, err := m.render("inject.src", inject.Src)
	if err != nil {
		return err
	}
	dst, err := m.render("inject.dst", inject.Dst)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(m.resolve(src))
	if err != nil {
		return err
	}

	if inject.Pack != "" {
		pf := packs.Pack(inject.Pack)
		if pf == nil {
			return fmt.Errorf("pack %q not present in catalog", inject.Pack)
		}
		_, err := packs.SetRaw(dst, bdata.New(content), true)
		return err
	}
	_, err = packs.SetFile(dst, bdata.New(content))
	return err
}

func readLines(packs *catalog.Packs, fileName string) ([]string, error) {
	raw, err := packs.GetRaw(fileName, true)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("file %q not found in catalog", fileName)
	}
	text := raw.String()
	if text == "" {
		return nil, nil
	}
	return strings.Split(strings.TrimRight(text, "\n"), "\n"), nil
}

func writeLines(packs *catalog.Packs, fileName string, lines []string) error {
	_, err := packs.SetFile(fileName, bdata.FromString(strings.Join(lines, "\n")))
	return err
}
