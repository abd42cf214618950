// Package apkio is the narrow collaborator boundary onto an APK (C8): it
// declares what this toolkit needs to read a catalog's pack/list pairs out
// of an app build, and what it needs to write re-emitted packs back, without
// taking on APK signing, installation, or any other Android packaging
// concern — those stay outside this module, per the explicit out-of-scope
// boundary on runtime/device concerns.
package apkio

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdmod/tdmod/country"
)

// ErrNotImplemented is returned by any Source method this package
// deliberately leaves unimplemented: signing and installing an APK.
var ErrNotImplemented = errors.New("apkio: not implemented")

// PackListPair is one pack's raw (list, pack) ciphertext pair as read
// straight off disk, keyed by the pack's bare name (e.g. "DataLocal").
type PackListPair struct {
	Name     string
	ListData []byte
	PackData []byte
}

// Source is the narrow surface a catalog loader needs against an APK-like
// asset tree: enough to enumerate and read every pack/list pair, know the
// country/version/cipher material they were built with, and write re-
// emitted pack/list pairs back.
type Source interface {
	// PacksLists returns every (list, pack) ciphertext pair found.
	PacksLists() ([]PackListPair, error)
	// CountryCode is the storefront this asset tree was built for.
	CountryCode() country.Code
	// GameVersion is the client version this asset tree reports.
	GameVersion() country.Version
	// Key and IV are the hex-encoded override pair for the modern local
	// pack cipher, or empty to use the country-derived default.
	Key() string
	IV() string
	// WritePackList writes one re-emitted pack's pack/list blobs back.
	WritePackList(name string, packData, listData []byte) error
	// Sign and Install are intentionally out of scope: APK signing and
	// on-device installation are never exercised by this toolkit.
	Sign() error
	Install() error
}

// DirSource is a Source backed by an already-unpacked APK directory tree:
// a flat directory of "<Name>.pack" / "<Name>.list" file pairs, as an APK's
// assets look once extracted with a zip tool. DirSource reads only that
// directory and never opens a zip archive itself (listing an .apk's
// members is ListZipMembers' job); it never repacks or signs one.
type DirSource struct {
	Dir    string
	CC     country.Code
	GV     country.Version
	KeyHex string
	IVHex  string
}

// NewDirSource builds a DirSource rooted at dir, targeting the given
// country/version. key and iv may be empty to use the country default.
func NewDirSource(dir string, cc country.Code, gv country.Version, key, iv string) *DirSource {
	return &DirSource{Dir: dir, CC: cc, GV: gv, KeyHex: key, IVHex: iv}
}

func (s *DirSource) CountryCode() country.Code    { return s.CC }
func (s *DirSource) GameVersion() country.Version { return s.GV }
func (s *DirSource) Key() string                  { return s.KeyHex }
func (s *DirSource) IV() string                   { return s.IVHex }

// PacksLists walks Dir for every ".pack" file with a matching ".list"
// sibling, pairing them by base name.
func (s *DirSource) PacksLists() ([]PackListPair, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("apkio: reading %s: %w", s.Dir, err)
	}
	var out []PackListPair
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pack") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".pack")
		listPath := filepath.Join(s.Dir, name+".list")
		packData, err := os.ReadFile(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("apkio: reading %s: %w", e.Name(), err)
		}
		listData, err := os.ReadFile(listPath)
		if err != nil {
			return nil, fmt.Errorf("apkio: reading %s.list: %w", name, err)
		}
		out = append(out, PackListPair{Name: name, PackData: packData, ListData: listData})
	}
	return out, nil
}

// WritePackList writes a pack's re-emitted blobs back into Dir.
func (s *DirSource) WritePackList(name string, packData, listData []byte) error {
	if err := os.WriteFile(filepath.Join(s.Dir, name+".pack"), packData, 0o644); err != nil {
		return fmt.Errorf("apkio: writing %s.pack: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name+".list"), listData, 0o644); err != nil {
		return fmt.Errorf("apkio: writing %s.list: %w", name, err)
	}
	return nil
}

func (s *DirSource) Sign() error    { return ErrNotImplemented }
func (s *DirSource) Install() error { return ErrNotImplemented }

// ListZipMembers lists the names of every entry in an .apk (a zip archive)
// without extracting it — enough for an inspect command to report what a
// build contains before the caller decides to unpack it into a DirSource.
func ListZipMembers(apkPath string) ([]string, error) {
	zr, err := zip.OpenReader(apkPath)
	if err != nil {
		return nil, fmt.Errorf("apkio: opening %s: %w", apkPath, err)
	}
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// ExtractZipMember copies one named entry out of an .apk into w.
func ExtractZipMember(apkPath, member string, w io.Writer) error {
	zr, err := zip.OpenReader(apkPath)
	if err != nil {
		return fmt.Errorf("apkio: opening %s: %w", apkPath, err)
	}
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name != member {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("apkio: opening member %s: %w", member, err)
		}
		defer rc.Close()
		_, err = io.Copy(w, rc)
		return err
	}
	return fmt.Errorf("apkio: member %q not found in %s", member, apkPath)
}
