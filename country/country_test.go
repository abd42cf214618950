package country

import "testing"

func TestFromCodeKnown(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"en", EN},
		{"jp", JP},
		{"kr", KR},
		{"tw", TW},
	}
	for _, tt := range tests {
		got, ok := FromCode(tt.in)
		if !ok {
			t.Errorf("FromCode(%q) ok = false, want true", tt.in)
		}
		if got != tt.want {
			t.Errorf("FromCode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromCodeUnknown(t *testing.T) {
	if _, ok := FromCode("xx"); ok {
		t.Error("FromCode(\"xx\") ok = true, want false")
	}
	if _, ok := FromCode(""); ok {
		t.Error("FromCode(\"\") ok = true, want false")
	}
}

func TestPatchingCodeRoundTrip(t *testing.T) {
	for _, c := range All() {
		pc := c.PatchingCode()
		got, ok := FromPatchingCode(pc)
		if !ok {
			t.Fatalf("FromPatchingCode(%q) ok = false", pc)
		}
		if got != c {
			t.Errorf("FromPatchingCode(PatchingCode(%v)) = %v, want %v", c, got, c)
		}
	}
	if JP.PatchingCode() != "" {
		t.Errorf("JP.PatchingCode() = %q, want empty", JP.PatchingCode())
	}
}

func TestRequestCode(t *testing.T) {
	if JP.RequestCode() != "ja" {
		t.Errorf("JP.RequestCode() = %q, want ja", JP.RequestCode())
	}
	if EN.RequestCode() != "en" {
		t.Errorf("EN.RequestCode() = %q, want en", EN.RequestCode())
	}
}

func TestFromPackageName(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Code
		ok   bool
	}{
		{"jp.co.ponos.battlecats", JP, true},
		{"jp.co.ponos.battlecatsen", EN, true},
		{"jp.co.ponos.battlecatskr", KR, true},
		{"jp.co.ponos.battlecatstw", TW, true},
	} {
		got, ok := FromPackageName(tt.in)
		if ok != tt.ok {
			t.Errorf("FromPackageName(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("FromPackageName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIndexStable(t *testing.T) {
	for i, c := range All() {
		if c.Index() != i {
			t.Errorf("All()[%d].Index() = %d, want %d", i, c.Index(), i)
		}
	}
}

func TestVersionParseAndCompare(t *testing.T) {
	v1, err := ParseVersion("8.9.0")
	if err != nil {
		t.Fatalf("ParseVersion(8.9.0) error: %v", err)
	}
	v2, err := ParseVersion("8.8.9")
	if err != nil {
		t.Fatalf("ParseVersion(8.8.9) error: %v", err)
	}
	if !v1.AtLeast(v2) {
		t.Errorf("%v.AtLeast(%v) = false, want true", v1, v2)
	}
	if v2.AtLeast(v1) {
		t.Errorf("%v.AtLeast(%v) = true, want false", v2, v1)
	}

	short, err := ParseVersion("11")
	if err != nil {
		t.Fatalf("ParseVersion(11) error: %v", err)
	}
	full, err := ParseVersion("11.0.0")
	if err != nil {
		t.Fatalf("ParseVersion(11.0.0) error: %v", err)
	}
	if short.Compare(full) != 0 {
		t.Errorf("ParseVersion(11) != ParseVersion(11.0.0)")
	}
}

func TestVersionParseInvalid(t *testing.T) {
	if _, err := ParseVersion(""); err == nil {
		t.Error("ParseVersion(\"\") err = nil, want error")
	}
	if _, err := ParseVersion("a.b.c"); err == nil {
		t.Error("ParseVersion(a.b.c) err = nil, want error")
	}
	if _, err := ParseVersion("1.2.3.4"); err == nil {
		t.Error("ParseVersion(1.2.3.4) err = nil, want error")
	}
}
