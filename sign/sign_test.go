package sign

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

func generateTestKey(t *testing.T) string {
	t.Helper()
	entity, err := openpgp.NewEntity("Test Modder", "tdmod test key", "test@example.com", nil)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		t.Fatalf("armor encode failed: %v", err)
	}
	if err := entity.SerializePrivate(w, nil); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	w.Close()
	return buf.String()
}

func TestSignManifestProducesClearsign(t *testing.T) {
	key := generateTestKey(t)
	manifest := []byte("name: test-mod\nversion: 1.0.0\n")

	signed, err := SignManifest(manifest, key)
	if err != nil {
		t.Fatalf("SignManifest failed: %v", err)
	}
	if !strings.Contains(string(signed), "-----BEGIN PGP SIGNED MESSAGE-----") {
		t.Error("output does not look like a clearsigned message")
	}
}

func TestSignThenVerifyRoundTrip(t *testing.T) {
	key := generateTestKey(t)
	manifest := []byte("name: test-mod\nversion: 1.0.0\n")

	signed, err := SignManifest(manifest, key)
	if err != nil {
		t.Fatalf("SignManifest failed: %v", err)
	}

	pubKey, err := ExtractPublicKey(key, true)
	if err != nil {
		t.Fatalf("ExtractPublicKey failed: %v", err)
	}

	plaintext, err := VerifyManifest(signed, string(pubKey))
	if err != nil {
		t.Fatalf("VerifyManifest failed: %v", err)
	}
	if !bytes.Equal(plaintext, manifest) {
		t.Fatalf("want original manifest back, got %q", plaintext)
	}
}

func TestVerifyManifestRejectsTamperedSignature(t *testing.T) {
	key := generateTestKey(t)
	manifest := []byte("name: test-mod\nversion: 1.0.0\n")

	signed, err := SignManifest(manifest, key)
	if err != nil {
		t.Fatalf("SignManifest failed: %v", err)
	}
	tampered := bytes.Replace(signed, []byte("test-mod"), []byte("evil-mod"), 1)

	pubKey, err := ExtractPublicKey(key, true)
	if err != nil {
		t.Fatalf("ExtractPublicKey failed: %v", err)
	}

	if _, err := VerifyManifest(tampered, string(pubKey)); err == nil {
		t.Fatal("want verification to fail on tampered content")
	}
}

func TestVerifyManifestRejectsWrongKey(t *testing.T) {
	key := generateTestKey(t)
	otherKey := generateTestKey(t)
	manifest := []byte("name: test-mod\nversion: 1.0.0\n")

	signed, err := SignManifest(manifest, key)
	if err != nil {
		t.Fatalf("SignManifest failed: %v", err)
	}

	otherPub, err := ExtractPublicKey(otherKey, true)
	if err != nil {
		t.Fatalf("ExtractPublicKey failed: %v", err)
	}

	if _, err := VerifyManifest(signed, string(otherPub)); err == nil {
		t.Fatal("want verification to fail against an unrelated public key")
	}
}

func TestExtractPublicKeyBinaryNotEmpty(t *testing.T) {
	key := generateTestKey(t)
	bin, err := ExtractPublicKey(key, false)
	if err != nil {
		t.Fatalf("ExtractPublicKey binary failed: %v", err)
	}
	if len(bin) == 0 {
		t.Fatal("binary public key is empty")
	}
}
