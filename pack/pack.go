// Package pack implements the container codec (C3): one encrypted file
// entry (GameFile), one pack of entries with its list+blob framing
// (PackFile), and the list/pack encode-decode pair. Catalog-level
// resolution across many packs lives in package catalog.
package pack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdmod/tdmod/bdata"
	"github.com/tdmod/tdmod/country"
	"github.com/tdmod/tdmod/crypto"
)

// listCipherKey is the fixed 16-byte ASCII key used for the pack's list
// (name, offset, size) table. It is used identically in both directions:
// as the literal ASCII string to decode an existing list, and as
// md5("pack").hexdigest()[:16] (itself ASCII hex, not raw digest bytes) to
// encode one on write. The two forms are the same 16 bytes:
// md5(b"pack").hexdigest() == "b484857901742afc9e9d4e9853596ce2".
const listCipherKey = "b484857901742afc"

func listCipher() *crypto.Cipher {
	return crypto.NewCipher([]byte(listCipherKey), nil, true)
}

// IsServerPack reports whether pack_name names a Server pack: encrypted
// with the legacy ECB key regardless of country.
func IsServerPack(packName string) bool {
	return strings.Contains(packName, "Server")
}

// IsImageDataLocalPack reports whether pack_name is ImageDataLocal, the one
// Local pack stored in plaintext (cipher disabled unless force_server).
func IsImageDataLocalPack(packName string) bool {
	return strings.Contains(strings.ToLower(packName), "imagedatalocal")
}

// IsAnim reports whether file_name is an animation resource routed to
// ImageDataLocal by catalog.Packs.SetFile.
func IsAnim(fileName string) bool {
	for _, ext := range []string{".maanim", ".mamodel", ".imgcut"} {
		if strings.HasSuffix(fileName, ext) {
			return true
		}
	}
	return false
}

// languageSuffixes are the known pack-name language tags;
// ConvertPackNameServerLocal strips the first one found as a "_lang"
// segment.
var languageSuffixes = []string{"en", "ja", "ko", "tw", "de", "es", "fr", "it", "th"}

// ConvertPackNameServerLocal converts a Server (or language-suffixed) pack
// name to its plain Local counterpart: "UnitServer_en" -> "UnitLocal".
func ConvertPackNameServerLocal(packName string) string {
	name := packName
	if IsServerPack(name) {
		name = strings.Replace(name, "Server", "Local", 1)
	}
	for _, lang := range languageSuffixes {
		suffix := "_" + lang
		if strings.Contains(name, suffix) {
			name = strings.Replace(name, suffix, "", 1)
			break
		}
	}
	return name
}

// GameFile is one addressable entry inside a pack: either ciphertext,
// plaintext, or both. Decryption is lazy and write-through cached; once
// observed, the first plaintext value is remembered in originalDec so
// Encrypt can tell whether the content actually changed.
type GameFile struct {
	FileName string
	PackName string
	CC       country.Code
	GV       country.Version
	Key, IV  string

	encData     *bdata.Data
	decData     *bdata.Data
	originalDec *bdata.Data
}

// NewGameFileFromEncrypted constructs a GameFile backed by ciphertext only;
// DecData decrypts lazily on first access.
func NewGameFileFromEncrypted(fileName, packName string, cc country.Code, gv country.Version, key, iv string, enc *bdata.Data) *GameFile {
	return &GameFile{FileName: fileName, PackName: packName, CC: cc, GV: gv, Key: key, IV: iv, encData: enc}
}

// NewGameFileFromDecrypted constructs a GameFile backed by plaintext only
// (freshly injected content with no prior ciphertext).
func NewGameFileFromDecrypted(fileName, packName string, cc country.Code, gv country.Version, dec *bdata.Data) *GameFile {
	return &GameFile{FileName: fileName, PackName: packName, CC: cc, GV: gv, decData: dec, originalDec: dec}
}

func (f *GameFile) cipher(forceServer bool) (*crypto.Cipher, error) {
	return crypto.CipherFromPack(f.CC, IsServerPack(f.PackName), IsImageDataLocalPack(f.PackName), f.GV, forceServer, f.Key, f.IV)
}

// DecData returns the decrypted content, decrypting and caching on first
// call. PKCS#7 unpadding is attempted and silently skipped if the trailing
// bytes don't form valid padding (matching packs whose cipher never
// padded in the first place).
func (f *GameFile) DecData() (*bdata.Data, error) {
	if f.decData != nil {
		return f.decData, nil
	}
	if f.encData == nil {
		return nil, fmt.Errorf("pack: %s/%s has neither enc_data nor dec_data", f.PackName, f.FileName)
	}
	c, err := f.cipher(false)
	if err != nil {
		return nil, err
	}
	data, err := c.Decrypt(f.encData)
	if err != nil {
		return nil, err
	}
	if unpadded, uerr := data.UnpadPKCS7(); uerr == nil {
		data = unpadded
	}
	f.decData = data
	if f.originalDec == nil {
		f.originalDec = data
	}
	return f.decData, nil
}

// SetDecData overwrites the cached plaintext (a mod edit). It does not
// touch originalDec, so Encrypt can still detect the edit.
func (f *GameFile) SetDecData(data *bdata.Data) {
	f.decData = data
}

// Encrypt returns the ciphertext to emit for this entry. If content is
// unchanged from what was first observed, the original ciphertext bytes
// are returned unmodified (byte-for-byte re-encryption is never required
// for untouched entries). A changed ImageDataLocal entry goes through that
// pack's disabled cipher unless forceServer is set, so its padded
// plaintext is emitted as is.
func (f *GameFile) Encrypt(forceServer bool, key, iv string) (*bdata.Data, error) {
	if f.encData != nil {
		if f.decData == nil || f.decData.Equal(f.originalDec) {
			return f.encData, nil
		}
	}
	if f.decData == nil {
		return nil, fmt.Errorf("pack: %s/%s has neither dec_data nor enc_data to encrypt", f.PackName, f.FileName)
	}
	useKey, useIV := f.Key, f.IV
	if key != "" {
		useKey = key
	}
	if iv != "" {
		useIV = iv
	}
	c, err := crypto.CipherFromPack(f.CC, IsServerPack(f.PackName), IsImageDataLocalPack(f.PackName), f.GV, forceServer, useKey, useIV)
	if err != nil {
		return nil, err
	}
	padded := f.decData.PadPKCS7(16)
	return c.Encrypt(padded)
}

// PackFile is an ordered map of file_name -> GameFile plus a pack_name and
// dirty flag. All entries in one PackFile share the same cipher
// parameters, derived from PackName/CC/GV.
type PackFile struct {
	PackName string
	CC       country.Code
	GV       country.Version
	Modified bool

	order []string
	files map[string]*GameFile
}

// NewPackFile constructs an empty PackFile.
func NewPackFile(packName string, cc country.Code, gv country.Version) *PackFile {
	return &PackFile{PackName: packName, CC: cc, GV: gv, files: map[string]*GameFile{}}
}

// AddFile inserts or replaces a file, preserving first-insertion order.
func (p *PackFile) AddFile(f *GameFile) {
	if _, exists := p.files[f.FileName]; !exists {
		p.order = append(p.order, f.FileName)
	}
	p.files[f.FileName] = f
}

// Get returns the named entry, or nil if absent.
func (p *PackFile) Get(fileName string) *GameFile {
	return p.files[fileName]
}

// Files returns every entry in insertion order.
func (p *PackFile) Files() []*GameFile {
	out := make([]*GameFile, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.files[name])
	}
	return out
}

// SetFile creates or updates an entry's plaintext content.
func (p *PackFile) SetFile(fileName string, data *bdata.Data) *GameFile {
	f, ok := p.files[fileName]
	if !ok {
		f = NewGameFileFromDecrypted(fileName, p.PackName, p.CC, p.GV, data)
		p.AddFile(f)
		return f
	}
	f.SetDecData(data)
	return f
}

// parseListCSV splits the decrypted list blob into comma-separated rows,
// matching the list file's fixed (name, offset, size) shape (6.1).
func parseListCSV(dec *bdata.Data) [][]string {
	text := dec.String()
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	return rows
}

// FromPackFile decodes a pack's (list, blob) ciphertext pair into a
// PackFile. Returns an error if the list is truncated relative to its own
// declared file count.
func FromPackFile(encList, encPack *bdata.Data, cc country.Code, packName string, gv country.Version, key, iv string) (*PackFile, error) {
	lc := listCipher()
	decList, err := lc.Decrypt(encList)
	if err != nil {
		return nil, fmt.Errorf("pack: decrypting list for %s: %w", packName, err)
	}
	if unpadded, uerr := decList.UnpadPKCS7(); uerr == nil {
		decList = unpadded
	}
	rows := parseListCSV(decList)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("pack: empty list for %s", packName)
	}
	total, err := strconv.Atoi(rows[0][0])
	if err != nil {
		return nil, fmt.Errorf("pack: invalid list header for %s: %w", packName, err)
	}
	if len(rows)-1 < total {
		return nil, fmt.Errorf("pack: list for %s declares %d files but has %d rows", packName, total, len(rows)-1)
	}
	pf := NewPackFile(packName, cc, gv)
	blob := encPack.Bytes()
	for i := 0; i < total; i++ {
		row := rows[i+1]
		if len(row) < 3 {
			return nil, fmt.Errorf("pack: malformed list row %d for %s", i, packName)
		}
		fileName := row[0]
		start, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("pack: bad offset in list row %d for %s: %w", i, packName, err)
		}
		size, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("pack: bad size in list row %d for %s: %w", i, packName, err)
		}
		if start < 0 || size < 0 || start+size > len(blob) {
			return nil, fmt.Errorf("pack: list row %d for %s out of bounds", i, packName)
		}
		enc := bdata.New(blob[start : start+size])
		pf.AddFile(NewGameFileFromEncrypted(fileName, packName, cc, gv, key, iv, enc))
	}
	return pf, nil
}

// ToPackListFile re-emits this pack as (packName, encPackBlob, encListBlob),
// re-encrypting every entry (Encrypt returns cached ciphertext for anything
// untouched) and rebuilding the list table from the new offsets.
func (p *PackFile) ToPackListFile(key, iv string) (string, *bdata.Data, *bdata.Data, error) {
	files := p.Files()
	rows := [][]string{{strconv.Itoa(len(files))}}
	offset := 0
	parts := make([]*bdata.Data, 0, len(files))
	for _, f := range files {
		enc, err := f.Encrypt(false, key, iv)
		if err != nil {
			return "", nil, nil, fmt.Errorf("pack: encrypting %s/%s: %w", p.PackName, f.FileName, err)
		}
		rows = append(rows, []string{f.FileName, strconv.Itoa(offset), strconv.Itoa(enc.Len())})
		parts = append(parts, enc)
		offset += enc.Len()
	}
	packData := bdata.Concat(parts...)

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}
	listPlain := bdata.FromString(sb.String()).PadPKCS7(16)
	listEnc, err := listCipher().Encrypt(listPlain)
	if err != nil {
		return "", nil, nil, fmt.Errorf("pack: encrypting list for %s: %w", p.PackName, err)
	}
	return p.PackName, packData, listEnc, nil
}
