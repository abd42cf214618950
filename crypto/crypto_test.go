package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/tdmod/tdmod/bdata"
	"github.com/tdmod/tdmod/country"
)

func TestHashMD5Truncated(t *testing.T) {
	h, err := Hash(MD5, bdata.FromString("battlecats"), 8)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h.Len() != 8 {
		t.Fatalf("truncated hash length = %d, want 8", h.Len())
	}
	got := hex.EncodeToString(h.Bytes())
	want := "89a0f99078419c28"
	if got != want {
		t.Errorf("md5(battlecats)[:8].hex() = %q, want %q", got, want)
	}
}

func TestCipherCBCRoundTrip(t *testing.T) {
	key, _ := hex.DecodeString("0ad39e4aeaf55aa717feb1825edef521")
	iv, _ := hex.DecodeString("d1d7e708091941d90cdf8aa5f30bb0c2")
	c := NewCipher(key, iv, true)

	plain := bdata.FromString("hello world!!!!!").PadPKCS7(16)
	enc, err := c.Encrypt(plain)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	dec, err := c.Decrypt(enc)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !dec.Equal(plain) {
		t.Errorf("CBC round trip mismatch: got %v, want %v", dec.Bytes(), plain.Bytes())
	}
}

func TestCipherECBRoundTrip(t *testing.T) {
	key := []byte("b484857901742afc")
	c := NewCipher(key, nil, true)

	plain := bdata.FromString("0123456789abcdef")
	enc, err := c.Encrypt(plain)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	dec, err := c.Decrypt(enc)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !dec.Equal(plain) {
		t.Errorf("ECB round trip mismatch: got %v, want %v", dec.Bytes(), plain.Bytes())
	}
}

func TestCipherDisabledIsIdentity(t *testing.T) {
	c := NewCipher([]byte("b484857901742afc"), nil, false)
	plain := bdata.FromString("plaintext passthrough")
	enc, err := c.Encrypt(plain)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if !enc.Equal(plain) {
		t.Error("disabled cipher Encrypt did not return input unchanged")
	}
	dec, err := c.Decrypt(enc)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !dec.Equal(plain) {
		t.Error("disabled cipher Decrypt did not return input unchanged")
	}
}

func TestCipherFromPackLegacyECB(t *testing.T) {
	oldGV := country.Version{Major: 8, Minor: 0, Patch: 0}
	c, err := CipherFromPack(country.EN, false, false, oldGV, false, "", "")
	if err != nil {
		t.Fatalf("CipherFromPack error: %v", err)
	}
	if c.Mode != ModeECB {
		t.Errorf("pre-8.9.0 game version: mode = %v, want ECB", c.Mode)
	}
	if len(c.Key) != 16 {
		t.Errorf("legacy key length = %d, want 16", len(c.Key))
	}
}

func TestCipherFromPackServerIsECB(t *testing.T) {
	newGV := country.Version{Major: 11, Minor: 0, Patch: 0}
	c, err := CipherFromPack(country.EN, true, false, newGV, false, "", "")
	if err != nil {
		t.Fatalf("CipherFromPack error: %v", err)
	}
	if c.Mode != ModeECB {
		t.Errorf("server pack: mode = %v, want ECB", c.Mode)
	}
}

func TestCipherFromPackModernLocalIsCBC(t *testing.T) {
	newGV := country.Version{Major: 11, Minor: 0, Patch: 0}
	c, err := CipherFromPack(country.EN, false, false, newGV, false, "", "")
	if err != nil {
		t.Fatalf("CipherFromPack error: %v", err)
	}
	if c.Mode != ModeCBC {
		t.Errorf("modern local pack: mode = %v, want CBC", c.Mode)
	}
	if !c.Enabled {
		t.Error("modern local pack cipher should be enabled")
	}
}

func TestCipherFromPackImageDataLocalDisabled(t *testing.T) {
	newGV := country.Version{Major: 11, Minor: 0, Patch: 0}
	c, err := CipherFromPack(country.EN, false, true, newGV, false, "", "")
	if err != nil {
		t.Fatalf("CipherFromPack error: %v", err)
	}
	if c.Enabled {
		t.Error("ImageDataLocal cipher should be disabled")
	}

	forced, err := CipherFromPack(country.EN, false, true, newGV, true, "", "")
	if err != nil {
		t.Fatalf("CipherFromPack error: %v", err)
	}
	if !forced.Enabled {
		t.Error("ImageDataLocal cipher with force_server should be enabled")
	}
}

func TestCipherFromPackUnknownCountry(t *testing.T) {
	newGV := country.Version{Major: 11, Minor: 0, Patch: 0}
	if _, err := CipherFromPack(country.Code(99), false, false, newGV, false, "", ""); err == nil {
		t.Error("CipherFromPack with unknown country: err = nil, want error")
	}
}

func TestHMACStable(t *testing.T) {
	key := bdata.FromString("key")
	data := bdata.FromString("message")
	mac1, err := HMAC(SHA256, key, data)
	if err != nil {
		t.Fatalf("HMAC error: %v", err)
	}
	mac2, err := HMAC(SHA256, key, data)
	if err != nil {
		t.Fatalf("HMAC error: %v", err)
	}
	if !mac1.Equal(mac2) {
		t.Error("HMAC not deterministic for identical inputs")
	}
}
