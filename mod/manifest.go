// Package mod implements the overlay/modification engine (C6): a
// declarative manifest of typed record edits applied against a
// catalog.Packs, with the same render-then-apply shape as the teacher's
// manifest.Package/manifest.Repository, and a three-way merge so two
// mods' edits compose instead of clobbering each other.
package mod

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"
)

// Manifest is the declarative description of one mod: variable
// definitions for templating, an ordered list of typed record edits, raw
// asset injections, and embedded foreign bundles to import first.
type Manifest struct {
	// Name identifies the mod; required.
	Name string `json:"name" yaml:"name" validate:"required"`
	// Version is a free-form mod version string; required.
	Version string `json:"version" yaml:"version" validate:"required"`
	// Defines is a map of template variables available to every field
	// below that supports templating (see templateEngine).
	Defines map[string]string `json:"defines" yaml:"defines"`
	// Stats edits the 108-slot unit/enemy stat row of specific units.
	Stats []StatEdit `json:"stats" yaml:"stats" validate:"dive"`
	// UnitBuy edits the shop/evolution row of specific units.
	UnitBuy []UnitBuyEdit `json:"unit_buy" yaml:"unit_buy" validate:"dive"`
	// Localizable edits UI string table entries.
	Localizable []LocalizableEdit `json:"localizable" yaml:"localizable" validate:"dive"`
	// Stage edits per-stage display options (Map_option.csv rows).
	Stage []StageEdit `json:"stage" yaml:"stage" validate:"dive"`
	// Injects lists raw asset files to drop into the catalog verbatim
	// (images, audio, animation files), same shape as manifest.File.
	Injects []Inject `json:"injects" yaml:"injects" validate:"dive"`
	// FEBs lists paths (relative to the manifest) to foreign bundles that
	// belong to this mod. Apply does not read this field; the bundles are
	// not imported by it.
	FEBs []string `json:"febs" yaml:"febs"`

	filePath string
	engine   *templateEngine
}

// StatEdit sets one or more named Stats fields on a unit/form.
type StatEdit struct {
	CatID  int               `json:"cat_id" yaml:"cat_id" validate:"gte=0"`
	Form   int               `json:"form" yaml:"form" validate:"gte=0"`
	Fields map[string]string `json:"fields" yaml:"fields" validate:"required,gt=0"`
}

// UnitBuyEdit sets one or more named UnitBuy fields on a unit.
type UnitBuyEdit struct {
	CatID  int               `json:"cat_id" yaml:"cat_id" validate:"gte=0"`
	Fields map[string]string `json:"fields" yaml:"fields" validate:"required,gt=0"`
}

// LocalizableEdit sets one localized string table entry.
type LocalizableEdit struct {
	Key   string `json:"key" yaml:"key" validate:"required"`
	Value string `json:"value" yaml:"value"`
}

// StageEdit sets one or more named MapOption fields for a stage.
type StageEdit struct {
	StageID int               `json:"stage_id" yaml:"stage_id" validate:"gte=0"`
	Fields  map[string]string `json:"fields" yaml:"fields" validate:"required,gt=0"`
}

// Inject is a raw asset file to add to the catalog, the mod-bundle
// counterpart of manifest.File.
type Inject struct {
	// Src is the path to the source file, relative to the manifest.
	Src string `json:"src" yaml:"src" validate:"required"`
	// Pack, when set, names a pack ("DataLocal", "ImageLocal", ...) that
	// must be present in the catalog, and the raw cache is updated too.
	// Either way the file is placed by catalog.Packs.SetFile's routing,
	// not forced into the named pack.
	Pack string `json:"pack" yaml:"pack"`
	// Dst is the destination filename within the pack.
	Dst string `json:"dst" yaml:"dst" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and parses a manifest from path, dispatching on extension
// (.yaml/.yml vs everything else) exactly like the teacher's unmarshal,
// and validates required fields with go-playground/validator.
func Load(path string, content []byte) (*Manifest, error) {
	var m Manifest
	if err := unmarshal(path, content, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}

	m.filePath = path
	engine, err := newTemplateEngine(m.Defines)
	if err != nil {
		return nil, fmt.Errorf("initializing template engine for %s: %w", path, err)
	}
	m.engine = engine
	return &m, nil
}

// unmarshal parses JSON or YAML based on file extension.
func unmarshal(path string, data []byte, v interface{}) error {
	ext := strings.ToLower(filepath.Ext(path))
	r := bytes.NewReader(data)
	if ext == ".yaml" || ext == ".yml" {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec.Decode(v)
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// resolve joins a relative path against the manifest's own directory.
func (m *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(m.filePath), path)
}

// render runs one field of the manifest through the template engine.
func (m *Manifest) render(name, text string) (string, error) {
	if m.engine == nil {
		return text, nil
	}
	return m.engine.render(name, text)
}
