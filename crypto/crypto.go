// Package crypto wraps the hash, HMAC, and AES primitives the pack codec
// needs. AES-CBC is the standard library's; AES-ECB has no standard-library
// support and is implemented by hand over crypto/cipher.Block, since no
// block mode in the corpus covers it either.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/tdmod/tdmod/bdata"
	"github.com/tdmod/tdmod/country"
)

// Algorithm selects a digest function.
type Algorithm int

const (
	MD5 Algorithm = iota
	SHA1
	SHA256
)

// Hash returns the digest of data under algo, truncated to length bytes if
// length is non-negative.
func Hash(algo Algorithm, data *bdata.Data, length int) (*bdata.Data, error) {
	var sum []byte
	switch algo {
	case MD5:
		h := md5.Sum(data.Bytes())
		sum = h[:]
	case SHA1:
		h := sha1.Sum(data.Bytes())
		sum = h[:]
	case SHA256:
		h := sha256.Sum256(data.Bytes())
		sum = h[:]
	default:
		return nil, fmt.Errorf("crypto: invalid hash algorithm %d", algo)
	}
	if length >= 0 && length < len(sum) {
		sum = sum[:length]
	}
	return bdata.New(sum), nil
}

// HMAC returns the HMAC of data under key using algo's digest.
func HMAC(algo Algorithm, key, data *bdata.Data) (*bdata.Data, error) {
	var newHash func() hash.Hash
	switch algo {
	case MD5:
		newHash = md5.New
	case SHA1:
		newHash = sha1.New
	case SHA256:
		newHash = sha256.New
	default:
		return nil, fmt.Errorf("crypto: invalid HMAC algorithm %d", algo)
	}
	mac := hmac.New(newHash, key.Bytes())
	mac.Write(data.Bytes())
	return bdata.New(mac.Sum(nil)), nil
}

// ecbEncrypter and ecbDecrypter implement the raw ECB block mode the
// standard library omits by design. ECB has no chaining state: each block
// is enciphered independently, which is exactly why real ciphers avoid it
// and why this pack format still uses it for its oldest-version fallback.
type ecbEncrypter struct {
	b         cipher.Block
	blockSize int
}

func newECBEncrypter(b cipher.Block) cipher.BlockMode {
	return &ecbEncrypter{b: b, blockSize: b.BlockSize()}
}

func (x *ecbEncrypter) BlockSize() int { return x.blockSize }

func (x *ecbEncrypter) CryptBlocks(dst, src []byte) {
	if len(src)%x.blockSize != 0 {
		panic("crypto/ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("crypto/ecb: output smaller than input")
	}
	for len(src) > 0 {
		x.b.Encrypt(dst, src[:x.blockSize])
		src = src[x.blockSize:]
		dst = dst[x.blockSize:]
	}
}

type ecbDecrypter struct {
	b         cipher.Block
	blockSize int
}

func newECBDecrypter(b cipher.Block) cipher.BlockMode {
	return &ecbDecrypter{b: b, blockSize: b.BlockSize()}
}

func (x *ecbDecrypter) BlockSize() int { return x.blockSize }

func (x *ecbDecrypter) CryptBlocks(dst, src []byte) {
	if len(src)%x.blockSize != 0 {
		panic("crypto/ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("crypto/ecb: output smaller than input")
	}
	for len(src) > 0 {
		x.b.Decrypt(dst, src[:x.blockSize])
		src = src[x.blockSize:]
		dst = dst[x.blockSize:]
	}
}

// Mode selects the AES block mode a Cipher applies.
type Mode int

const (
	ModeECB Mode = iota
	ModeCBC
)

// Cipher pairs an AES key/iv/mode with an enable flag: ImageDataLocal
// packs carry a Cipher with Enabled=false, so Encrypt/Decrypt become
// identity operations without the caller needing a separate branch.
type Cipher struct {
	Key     []byte
	IV      []byte
	Mode    Mode
	Enabled bool
}

// NewCipher builds a Cipher. mode defaults to ECB if iv is nil, CBC
// otherwise, mirroring the source library's constructor.
func NewCipher(key, iv []byte, enabled bool) *Cipher {
	mode := ModeCBC
	if iv == nil {
		mode = ModeECB
	}
	return &Cipher{Key: key, IV: iv, Mode: mode, Enabled: enabled}
}

func (c *Cipher) blockMode(encrypt bool) (cipher.BlockMode, error) {
	block, err := aes.NewCipher(c.Key)
	if err != nil {
		return nil, fmt.Errorf("crypto: bad AES key: %w", err)
	}
	switch c.Mode {
	case ModeECB:
		if encrypt {
			return newECBEncrypter(block), nil
		}
		return newECBDecrypter(block), nil
	case ModeCBC:
		if c.IV == nil {
			return nil, fmt.Errorf("crypto: CBC mode requires an IV")
		}
		if encrypt {
			return cipher.NewCBCEncrypter(block, c.IV), nil
		}
		return cipher.NewCBCDecrypter(block, c.IV), nil
	default:
		return nil, fmt.Errorf("crypto: invalid mode %d", c.Mode)
	}
}

// Encrypt enciphers data in place of the plaintext's own blocks. data must
// already be padded to the block size; Cipher does not pad.
func (c *Cipher) Encrypt(data *bdata.Data) (*bdata.Data, error) {
	if !c.Enabled {
		return data, nil
	}
	bm, err := c.blockMode(true)
	if err != nil {
		return nil, err
	}
	src := data.Bytes()
	dst := make([]byte, len(src))
	bm.CryptBlocks(dst, src)
	return bdata.New(dst), nil
}

// Decrypt deciphers data. The caller is responsible for stripping any
// PKCS#7 padding afterward.
func (c *Cipher) Decrypt(data *bdata.Data) (*bdata.Data, error) {
	if !c.Enabled {
		return data, nil
	}
	bm, err := c.blockMode(false)
	if err != nil {
		return nil, err
	}
	src := data.Bytes()
	dst := make([]byte, len(src))
	bm.CryptBlocks(dst, src)
	return bdata.New(dst), nil
}

// countryKeys holds the per-country (key, iv) hex pairs used by the modern
// (>= 8.9.0) local pack cipher.
var countryKeys = map[country.Code][2]string{
	country.JP: {"d754868de89d717fa9e7b06da45ae9e3", "40b2131a9f388ad4e5002a98118f6128"},
	country.EN: {"0ad39e4aeaf55aa717feb1825edef521", "d1d7e708091941d90cdf8aa5f30bb0c2"},
	country.KR: {"bea585eb993216ef4dcb88b625c3df98", "9b13c2121d39f1353a125fed98696649"},
	country.TW: {"313d9858a7fb939def1d7d859629087d", "0e3743eb53bf5944d1ae7e10c2e54bdf"},
}

// KeyIVFromCountry returns the hex-encoded (key, iv) pair for cc.
func KeyIVFromCountry(cc country.Code) (key, iv string, err error) {
	pair, ok := countryKeys[cc]
	if !ok {
		return "", "", fmt.Errorf("crypto: unknown country code %v", cc)
	}
	return pair[0], pair[1], nil
}

// legacyServerVersion is the version threshold below which even Local
// packs use the legacy ECB cipher.
var legacyServerVersion = country.Version{Major: 8, Minor: 9, Patch: 0}

// CipherFromPack derives the Cipher for a pack's entries given the
// country, pack name, and game version. isServerPack/isImageDataLocalPack
// classify the pack name (see package pack); key/iv override the
// country-derived pair when non-empty, matching get_cipher_from_pack's
// optional key/iv parameters.
func CipherFromPack(cc country.Code, isServerPack, isImageDataLocalPack bool, gv country.Version, forceServer bool, key, iv string) (*Cipher, error) {
	ckey, civ, err := KeyIVFromCountry(cc)
	if err != nil {
		return nil, err
	}
	if key == "" {
		key = ckey
	}
	if iv == "" {
		iv = civ
	}
	enabled := !isImageDataLocalPack
	if forceServer {
		enabled = true
	}
	if isServerPack || gv.Compare(legacyServerVersion) < 0 || forceServer {
		h, err := Hash(MD5, bdata.FromString("battlecats"), 8)
		if err != nil {
			return nil, err
		}
		legacyKey := []byte(hex.EncodeToString(h.Bytes()))
		return &Cipher{Key: legacyKey, IV: nil, Mode: ModeECB, Enabled: enabled}, nil
	}
	rawKey, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: invalid key hex: %w", err)
	}
	rawIV, err := hex.DecodeString(iv)
	if err != nil {
		return nil, fmt.Errorf("crypto: invalid iv hex: %w", err)
	}
	return &Cipher{Key: rawKey, IV: rawIV, Mode: ModeCBC, Enabled: enabled}, nil
}
