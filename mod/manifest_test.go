package mod

import "testing"

func TestLoadYAMLManifest(t *testing.T) {
	content := []byte(`
name: buff-black-cats
version: "1.0.0"
defines:
  multiplier: "2"
stats:
  - cat_id: 0
    form: 0
    fields:
      hp: "{{.multiplier}}00"
`)
	m, err := Load("mymod.yaml", content)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Name != "buff-black-cats" {
		t.Errorf("Name = %q", m.Name)
	}
	if len(m.Stats) != 1 || m.Stats[0].CatID != 0 {
		t.Fatalf("Stats = %+v", m.Stats)
	}
	rendered, err := m.render("test", m.Stats[0].Fields["hp"])
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if rendered != "200" {
		t.Errorf("rendered = %q, want %q", rendered, "200")
	}
}

func TestLoadJSONManifest(t *testing.T) {
	content := []byte(`{"name": "test", "version": "1.0.0", "localizable": [{"key": "k", "value": "v"}]}`)
	m, err := Load("mymod.json", content)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Localizable) != 1 || m.Localizable[0].Key != "k" {
		t.Fatalf("Localizable = %+v", m.Localizable)
	}
}

func TestLoadRejectsMissingRequiredFields(t *testing.T) {
	content := []byte(`version: "1.0.0"`)
	if _, err := Load("bad.yaml", content); err == nil {
		t.Fatal("want error for missing required name field")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	content := []byte(`
name: test
version: "1.0.0"
bogus_field: true
`)
	if _, err := Load("bad.yaml", content); err == nil {
		t.Fatal("want error for unknown manifest field")
	}
}

func TestResolveJoinsRelativeToManifestDir(t *testing.T) {
	m := &Manifest{filePath: "/mods/example/mod.yaml"}
	got := m.resolve("assets/icon.png")
	want := "/mods/example/assets/icon.png"
	if got != want {
		t.Errorf("resolve = %q, want %q", got, want)
	}
}
