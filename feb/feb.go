// Package feb implements the foreign-bundle importer (C7): decoding a
// third-party editor's encrypted .feb file into the catalog's own
// record model (Cat/Stats, renamed animation files, composited icons).
package feb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/tdmod/tdmod/bdata"
	"github.com/tdmod/tdmod/crypto"
)

// bundleIV is fixed across every FEB regardless of author or game
// version: md5("battlecatsultimate").
func bundleIV() ([]byte, error) {
	sum, err := crypto.Hash(crypto.MD5, bdata.FromString("battlecatsultimate"), -1)
	if err != nil {
		return nil, err
	}
	return sum.Bytes(), nil
}

// pad16 rounds n up to the next multiple of 16, the block size every FEB
// offset/length is padded to before encryption.
func pad16(n int) int {
	return 16 * (n/16 + 1)
}

// directory is the JSON payload describing a FEB's contents, read from
// the AES-CBC-encrypted block starting at 0x24.
type directory struct {
	Desc  map[string]interface{} `json:"desc"`
	Files []fileEntry            `json:"files"`
}

type fileEntry struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

// File is one decrypted entry from a FEB bundle: a path inside the
// bundle's own directory tree (e.g. "unit/014_f/sprite.png") and its
// plaintext content.
type File struct {
	Path string
	Data []byte
}

// Name is the file's basename, stripped of any directory component.
func (f File) Name() string {
	if i := lastSlash(f.Path); i >= 0 {
		return f.Path[i+1:]
	}
	return f.Path
}

// Dir is the file's immediate parent directory component — the unit or
// enemy id directory a sprite/imgcut/mamodel/maanim quadruple lives
// under.
func (f File) Dir() string {
	path := f.Path
	if i := lastSlash(path); i >= 0 {
		path = path[:i]
	}
	if i := lastSlash(path); i >= 0 {
		return path[i+1:]
	}
	return path
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}

// Bundle is a fully decrypted FEB: every file entry in the directory,
// decrypted, plus the parsed pack.json contents (its unit list).
type Bundle struct {
	Files []File
	Pack  packJSON
}

// packJSON mirrors the subset of pack.json this toolkit reads: the named
// list of units, each wrapped in a BCU-style {"val": ...} envelope. Enemy
// entries are not read.
type packJSON struct {
	Units struct {
		Data []struct {
			Val unitJSON `json:"val"`
		} `json:"data"`
	} `json:"units"`
}

type unitJSON struct {
	Forms []formJSON `json:"forms"`
}

type formJSON struct {
	Anim struct {
		ID string `json:"id"`
	} `json:"anim"`
	Names struct {
		Dat []struct {
			Val string `json:"val"`
		} `json:"dat"`
	} `json:"names"`
	Description struct {
		Dat []struct {
			Val string `json:"val"`
		} `json:"dat"`
	} `json:"description"`
	DU statsJSON `json:"du"`
}

// Open decrypts raw as a FEB bundle: bytes 0x10-0x20 are the AES key,
// the IV is the fixed bundle IV, bytes 0x20-0x24 give the little-endian
// length of the directory JSON starting at 0x24, and the remainder is
// the encrypted file payload, sliced per entry's (offset, size).
func Open(raw []byte) (*Bundle, error) {
	if len(raw) < 0x24 {
		return nil, fmt.Errorf("feb: bundle too short (%d bytes)", len(raw))
	}
	key := raw[0x10:0x20]
	iv, err := bundleIV()
	if err != nil {
		return nil, err
	}
	cipher := crypto.NewCipher(key, iv, true)

	jsonLength := int(binary.LittleEndian.Uint32(raw[0x20:0x24]))
	jsonLengthPad := pad16(jsonLength)
	if len(raw) < 0x24+jsonLengthPad {
		return nil, fmt.Errorf("feb: directory block truncated")
	}
	dirCipherText := raw[0x24 : 0x24+jsonLengthPad]
	dirPlain, err := cipher.Decrypt(bdata.New(dirCipherText))
	if err != nil {
		return nil, fmt.Errorf("feb: decrypting directory: %w", err)
	}
	dirJSON := dirPlain.Bytes()[:jsonLength]

	var dir directory
	if err := json.Unmarshal(dirJSON, &dir); err != nil {
		return nil, fmt.Errorf("feb: parsing directory JSON: %w", err)
	}

	payload := raw[0x24+jsonLengthPad:]
	files := make([]File, 0, len(dir.Files))
	for _, entry := range dir.Files {
		paddedSize := pad16(entry.Size)
		if entry.Offset+paddedSize > len(payload) {
			return nil, fmt.Errorf("feb: file %q extends past bundle payload", entry.Path)
		}
		slice := payload[entry.Offset : entry.Offset+paddedSize]
		plain, err := cipher.Decrypt(bdata.New(slice))
		if err != nil {
			return nil, fmt.Errorf("feb: decrypting %q: %w", entry.Path, err)
		}
		files = append(files, File{Path: entry.Path, Data: plain.Bytes()[:entry.Size]})
	}

	var packJSONFile *File
	for i := range files {
		if files[i].Name() == "pack.json" {
			packJSONFile = &files[i]
			break
		}
	}
	var pj packJSON
	if packJSONFile != nil {
		if err := json.Unmarshal(packJSONFile.Data, &pj); err != nil {
			return nil, fmt.Errorf("feb: parsing pack.json: %w", err)
		}
	}

	return &Bundle{Files: files, Pack: pj}, nil
}

// filesByDir groups every file in the bundle under the unit/enemy id
// directory it lives in, the way BCUZip.get_files_by_dir does.
func (b *Bundle) filesByDir(dir string) []File {
	var out []File
	for _, f := range b.Files {
		if f.Dir() == dir {
			out = append(out, f)
		}
	}
	return out
}

func fileByName(files []File, name string) *File {
	for i := range files {
		if files[i].Name() == name {
			return &files[i]
		}
	}
	return nil
}
