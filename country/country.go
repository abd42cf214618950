// Package country defines the small closed enumerations that gate crypto
// material, resource delimiters, and per-locale file selection: the country
// a client build targets and the game version that build reports.
package country

import "fmt"

// Code is a closed enumeration of the four shipping storefronts. Unlike the
// source implementation's from_code, which silently falls back to JP on an
// unrecognized string, every constructor here is fallible: a caller that
// mistypes a country code gets an error, not a masked bug.
type Code int

const (
	EN Code = iota
	JP
	KR
	TW
)

var allCodes = [...]Code{EN, JP, KR, TW}

// String returns the two-letter lowercase tag (jp, en, kr, tw).
func (c Code) String() string {
	switch c {
	case EN:
		return "en"
	case JP:
		return "jp"
	case KR:
		return "kr"
	case TW:
		return "tw"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// PatchingCode is the two-letter tag used in patched filenames, where JP is
// represented by the empty string.
func (c Code) PatchingCode() string {
	if c == JP {
		return ""
	}
	return c.String()
}

// RequestCode is the tag used in server request paths, where JP is "ja".
func (c Code) RequestCode() string {
	if c == JP {
		return "ja"
	}
	return c.String()
}

// Language returns the two-letter language suffix associated with this
// country (used to pick the language-suffixed pack in catalog resolution).
func (c Code) Language() string {
	switch c {
	case EN:
		return "en"
	case JP:
		return "ja"
	case KR:
		return "ko"
	case TW:
		return "tw"
	default:
		return "en"
	}
}

// FromCode parses a two-letter country tag. ok is false for any string that
// isn't one of the four known tags; callers must handle the failure rather
// than receiving a silently-wrong default.
func FromCode(code string) (c Code, ok bool) {
	for _, cc := range allCodes {
		if cc.String() == code {
			return cc, true
		}
	}
	return 0, false
}

// FromPatchingCode is the inverse of PatchingCode: "" maps to JP.
func FromPatchingCode(code string) (Code, bool) {
	if code == "" {
		return JP, true
	}
	return FromCode(code)
}

// FromPackageName finds the country whose tag is a suffix of packageName.
// The unsuffixed base package name "jp.co.ponos.battlecats" is JP's.
func FromPackageName(packageName string) (Code, bool) {
	for _, cc := range allCodes {
		tag := cc.String()
		if len(packageName) >= len(tag) && packageName[len(packageName)-len(tag):] == tag {
			return cc, true
		}
	}
	if packageName == "jp.co.ponos.battlecats" {
		return JP, true
	}
	return 0, false
}

// All returns every known country code, in canonical declaration order.
func All() []Code {
	out := make([]Code, len(allCodes))
	copy(out, allCodes[:])
	return out
}

// Index returns this code's position in All(), used by callers that need a
// stable small integer (e.g. array indexing into per-country key tables).
func (c Code) Index() int {
	for i, cc := range allCodes {
		if cc == c {
			return i
		}
	}
	return -1
}

// Version is an ordered (major, minor, patch) client build number. It gates
// protocol choices such as ECB-vs-CBC pack ciphers and whether a catalog
// re-key touches every entry or only dirty ones.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses a dotted version string ("11.3.0"). Missing trailing
// components default to zero ("11" == "11.0.0").
func ParseVersion(s string) (Version, error) {
	var v Version
	parts := [3]*int{&v.Major, &v.Minor, &v.Patch}
	start := 0
	idx := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if idx >= 3 {
				return Version{}, fmt.Errorf("country: version %q has too many components", s)
			}
			n, err := atoi(s[start:i])
			if err != nil {
				return Version{}, fmt.Errorf("country: invalid version %q: %w", s, err)
			}
			*parts[idx] = n
			idx++
			start = i + 1
		}
	}
	if idx == 0 {
		return Version{}, fmt.Errorf("country: empty version string")
	}
	return v, nil
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit component %q", s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than o.
func (v Version) Compare(o Version) int {
	for _, pair := range [][2]int{{v.Major, o.Major}, {v.Minor, o.Minor}, {v.Patch, o.Patch}} {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool { return v.Compare(o) >= 0 }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
