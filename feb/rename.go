package feb

import "fmt"

// animSuffixes lists the maanim suffix order BCU writes per form directory:
// walk, idle, attack, then the "kai" (true form) variants.
var animSuffixes = []string{"walk", "idle", "attack", "walk_kai", "idle_kai", "attack_kai"}

// RenamedFiles renames one unit form's animation directory (sprite,
// imgcut, mamodel, and every maanim) to the catalog's canonical names:
// "NNN_f.png", "NNN_f.imgcut", "NNN_f.mamodel", "NNN_fNN.maanim", where
// NNN is the cat id zero-padded to three digits (one-indexed, matching
// StatFileName) and f is the form letter (f/c/s/u).
func RenamedFiles(catID, formIndex int, files []File) ([]File, error) {
	formCodes := "fcsu"
	if formIndex < 0 || formIndex >= len(formCodes) {
		return nil, fmt.Errorf("feb: form index %d out of range", formIndex)
	}
	prefix := fmt.Sprintf("%03d_%c", catID+1, formCodes[formIndex])

	var out []File
	if f := fileByName(files, "sprite.png"); f != nil {
		out = append(out, File{Path: prefix + ".png", Data: f.Data})
	}
	if f := fileByName(files, "imgcut.txt"); f != nil {
		out = append(out, File{Path: prefix + ".imgcut", Data: f.Data})
	}
	if f := fileByName(files, "mamodel.txt"); f != nil {
		out = append(out, File{Path: prefix + ".mamodel", Data: f.Data})
	}
	for i, suffix := range animSuffixes {
		name := suffix + ".maanim"
		f := fileByName(files, name)
		if f == nil {
			continue
		}
		out = append(out, File{Path: fmt.Sprintf("%s%02d.maanim", prefix, i), Data: f.Data})
	}
	return out, nil
}
