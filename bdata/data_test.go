package bdata

import (
	"testing"

	"github.com/tdmod/tdmod/country"
)

func TestConcat(t *testing.T) {
	a := New([]byte{1, 2, 3})
	b := New([]byte{4, 5})
	got := Concat(a, b)
	want := []byte{1, 2, 3, 4, 5}
	if !New(want).Equal(got) {
		t.Errorf("Concat = %v, want %v", got.Bytes(), want)
	}
}

func TestUint32LERoundTrip(t *testing.T) {
	d := New(nil).AppendUint32LE(0xdeadbeef)
	v, err := d.Uint32LE(0)
	if err != nil {
		t.Fatalf("Uint32LE error: %v", err)
	}
	if v != 0xdeadbeef {
		t.Errorf("Uint32LE = %#x, want 0xdeadbeef", v)
	}
}

func TestUint32LEOutOfRange(t *testing.T) {
	d := New([]byte{1, 2, 3})
	if _, err := d.Uint32LE(0); err == nil {
		t.Error("Uint32LE on 3-byte buffer: err = nil, want error")
	}
}

func TestUint32sLERoundTrip(t *testing.T) {
	vs := []uint32{1, 2, 3, 0xffffffff}
	d := Uint32sLEToData(vs)
	got, err := d.Uint32sLE()
	if err != nil {
		t.Fatalf("Uint32sLE error: %v", err)
	}
	if len(got) != len(vs) {
		t.Fatalf("Uint32sLE len = %d, want %d", len(got), len(vs))
	}
	for i := range vs {
		if got[i] != vs[i] {
			t.Errorf("Uint32sLE[%d] = %d, want %d", i, got[i], vs[i])
		}
	}
}

func TestPKCS7RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32} {
		raw := make([]byte, n)
		for i := range raw {
			raw[i] = byte(i)
		}
		d := New(raw)
		padded := d.PadPKCS7(16)
		if padded.Len()%16 != 0 {
			t.Errorf("len %d: padded length %d not a multiple of 16", n, padded.Len())
		}
		if n%16 == 0 {
			// aligned input must still grow by a full block
			if padded.Len() != d.Len()+16 {
				t.Errorf("len %d: aligned input padded to %d, want %d", n, padded.Len(), d.Len()+16)
			}
		}
		unpadded, err := padded.UnpadPKCS7()
		if err != nil {
			t.Fatalf("len %d: UnpadPKCS7 error: %v", n, err)
		}
		if !unpadded.Equal(d) {
			t.Errorf("len %d: round trip mismatch: got %v, want %v", n, unpadded.Bytes(), raw)
		}
	}
}

func TestUnpadPKCS7Invalid(t *testing.T) {
	if _, err := New(nil).UnpadPKCS7(); err == nil {
		t.Error("UnpadPKCS7 on empty buffer: err = nil, want error")
	}
	bad := New([]byte{1, 2, 3, 0})
	if _, err := bad.UnpadPKCS7(); err == nil {
		t.Error("UnpadPKCS7 with zero pad byte: err = nil, want error")
	}
	inconsistent := New([]byte{1, 2, 3, 2})
	if _, err := inconsistent.UnpadPKCS7(); err == nil {
		t.Error("UnpadPKCS7 with inconsistent padding: err = nil, want error")
	}
}

func TestBase64RoundTrip(t *testing.T) {
	d := New([]byte("hello world"))
	enc := d.Base64()
	dec, err := FromBase64(enc)
	if err != nil {
		t.Fatalf("FromBase64 error: %v", err)
	}
	if !dec.Equal(d) {
		t.Errorf("base64 round trip mismatch: got %q, want %q", dec.String(), d.String())
	}
}

func TestFromCountryCodeRes(t *testing.T) {
	tests := []struct {
		c    country.Code
		want Delimiter
	}{
		{country.EN, Comma},
		{country.JP, Tab},
		{country.KR, Tab},
		{country.TW, Tab},
	}
	for _, tt := range tests {
		if got := FromCountryCodeRes(tt.c); got != tt.want {
			t.Errorf("FromCountryCodeRes(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestPaddedInt(t *testing.T) {
	tests := []struct {
		value, width int
		want         string
	}{
		{3, 3, "003"},
		{42, 2, "42"},
		{1234, 3, "1234"},
		{0, 3, "000"},
	}
	for _, tt := range tests {
		got := NewPaddedInt(tt.value, tt.width).String()
		if got != tt.want {
			t.Errorf("PaddedInt(%d, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}
