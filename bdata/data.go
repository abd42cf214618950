// Package bdata holds the primitive byte-level types that every other
// package builds on: an owned buffer with integer/base64/string views, the
// resource-file column delimiter, and fixed-width zero-padded filename
// components. All pack/catalog/record I/O crosses through bdata.Data.
package bdata

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/tdmod/tdmod/country"
)

// Data is an owned, mutable byte buffer. It never aliases a caller's slice
// on construction — New and FromString both copy — so a Data value can be
// handed to a cipher or a catalog without the caller and callee fighting
// over the backing array.
type Data struct {
	b []byte
}

// New copies src into a new Data.
func New(src []byte) *Data {
	b := make([]byte, len(src))
	copy(b, src)
	return &Data{b: b}
}

// FromString copies the UTF-8 bytes of s into a new Data.
func FromString(s string) *Data {
	return New([]byte(s))
}

// Bytes returns the buffer's current contents. The caller must not mutate
// the returned slice.
func (d *Data) Bytes() []byte {
	if d == nil {
		return nil
	}
	return d.b
}

// Len returns the buffer length.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.b)
}

// String returns the buffer decoded as UTF-8.
func (d *Data) String() string {
	return string(d.Bytes())
}

// Base64 returns the standard base64 encoding of the buffer.
func (d *Data) Base64() string {
	return base64.StdEncoding.EncodeToString(d.Bytes())
}

// FromBase64 decodes s as standard base64 into a new Data.
func FromBase64(s string) (*Data, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bdata: invalid base64: %w", err)
	}
	return &Data{b: raw}, nil
}

// Concat builds a single Data by concatenating parts in order. It is the
// chunked-concatenation builder spec.md's Data primitive names: callers
// assembling a pack stream out of many per-file ciphertexts use this
// instead of repeated append calls, so the final size is computed once.
func Concat(parts ...*Data) *Data {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p.Bytes()...)
	}
	return &Data{b: out}
}

// Uint32LE reads a little-endian uint32 at the given byte offset.
func (d *Data) Uint32LE(offset int) (uint32, error) {
	if offset < 0 || offset+4 > d.Len() {
		return 0, fmt.Errorf("bdata: Uint32LE offset %d out of range (len %d)", offset, d.Len())
	}
	return binary.LittleEndian.Uint32(d.b[offset : offset+4]), nil
}

// Uint16LE reads a little-endian uint16 at the given byte offset.
func (d *Data) Uint16LE(offset int) (uint16, error) {
	if offset < 0 || offset+2 > d.Len() {
		return 0, fmt.Errorf("bdata: Uint16LE offset %d out of range (len %d)", offset, d.Len())
	}
	return binary.LittleEndian.Uint16(d.b[offset : offset+2]), nil
}

// AppendUint32LE appends a little-endian uint32 to the buffer, returning a
// new Data (the receiver is left unmodified).
func (d *Data) AppendUint32LE(v uint32) *Data {
	out := make([]byte, d.Len()+4)
	copy(out, d.Bytes())
	binary.LittleEndian.PutUint32(out[d.Len():], v)
	return &Data{b: out}
}

// Uint32sLE views the whole buffer as a little-endian uint32 slice; len(d)
// must be a multiple of 4.
func (d *Data) Uint32sLE() ([]uint32, error) {
	if d.Len()%4 != 0 {
		return nil, fmt.Errorf("bdata: Uint32sLE length %d not a multiple of 4", d.Len())
	}
	out := make([]uint32, d.Len()/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(d.b[i*4 : i*4+4])
	}
	return out, nil
}

// Uint32sLEToData is the inverse of Uint32sLE.
func Uint32sLEToData(vs []uint32) *Data {
	out := make([]byte, len(vs)*4)
	for i, v := range vs {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return &Data{b: out}
}

const pkcs7BlockSize = 16

// PadPKCS7 pads the buffer to a multiple of blockSize using PKCS#7, always
// adding at least one byte of padding (a full extra block if already
// aligned), matching the padding convention the pack cipher relies on.
func (d *Data) PadPKCS7(blockSize int) *Data {
	if blockSize <= 0 {
		blockSize = pkcs7BlockSize
	}
	pad := blockSize - (d.Len() % blockSize)
	out := make([]byte, d.Len()+pad)
	copy(out, d.Bytes())
	for i := d.Len(); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return &Data{b: out}
}

// UnpadPKCS7 strips PKCS#7 padding, validating the padding bytes. It
// returns an error rather than silently truncating on malformed input —
// callers decrypting attacker-supplied packs must be able to distinguish
// a corrupt pack from a correctly decoded empty one.
func (d *Data) UnpadPKCS7() (*Data, error) {
	n := d.Len()
	if n == 0 {
		return nil, fmt.Errorf("bdata: cannot unpad empty buffer")
	}
	pad := int(d.b[n-1])
	if pad == 0 || pad > n || pad > 255 {
		return nil, fmt.Errorf("bdata: invalid PKCS#7 padding byte %d", pad)
	}
	for _, b := range d.b[n-pad:] {
		if int(b) != pad {
			return nil, fmt.Errorf("bdata: inconsistent PKCS#7 padding")
		}
	}
	return &Data{b: d.b[:n-pad]}, nil
}

// Equal reports whether two buffers hold identical bytes.
func (d *Data) Equal(o *Data) bool {
	return bytes.Equal(d.Bytes(), o.Bytes())
}

// Delimiter is the column separator used by a resource's CSV-like view. It
// is a property of (file kind x country), not something sniffed from file
// content: certain localized resources for JP/KR/TW use tab instead of
// comma even though the file extension and layout are otherwise identical.
type Delimiter byte

const (
	Comma Delimiter = ','
	Tab   Delimiter = '\t'
)

func (d Delimiter) String() string {
	if d == Tab {
		return "tab"
	}
	return "comma"
}

// tabCountries is the set of countries whose localized resource files use
// tab-delimited rows.
var tabCountries = map[country.Code]bool{
	country.JP: true,
	country.KR: true,
	country.TW: true,
}

// FromCountryCodeRes resolves the delimiter used by country-localized
// resource files (e.g. Localizable.csv). EN uses comma; JP/KR/TW use tab.
func FromCountryCodeRes(c country.Code) Delimiter {
	if tabCountries[c] {
		return Tab
	}
	return Comma
}

// PaddedInt is a fixed-width, zero-padded decimal rendering of an integer,
// used to build resource filenames like "unit003.csv" or "005_00.maanim".
type PaddedInt struct {
	Value int
	Width int
}

// NewPaddedInt constructs a PaddedInt. A value whose decimal form already
// exceeds width is rendered at its natural width (never truncated) rather
// than erroring — filenames for such values are rare but do occur in
// enemy/stage ids near range boundaries. A negative value has its digits
// zero-padded to width before the minus sign is prefixed (-5 at width 3
// renders as "-005").
func NewPaddedInt(value, width int) PaddedInt {
	return PaddedInt{Value: value, Width: width}
}

// String renders the zero-padded decimal form.
func (p PaddedInt) String() string {
	s := strconv.Itoa(p.Value)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for len(s) < p.Width {
		s = "0" + s
	}
	if neg {
		s = "-" + s
	}
	return s
}
