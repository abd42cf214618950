// Package sign clearsigns and verifies mod bundle manifests with OpenPGP,
// the same signing primitive the teacher uses for APT Release files.
package sign

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/clearsign"
)

// SignManifest clearsigns manifest bytes with an ASCII-armored private key,
// returning the ASCII-armored clearsigned message (manifest.yaml.asc).
func SignManifest(manifest []byte, armoredPrivateKey string) ([]byte, error) {
	entities, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armoredPrivateKey))
	if err != nil {
		return nil, fmt.Errorf("reading private key: %w", err)
	}
	signer := findPrivateKey(entities)
	if signer == nil {
		return nil, fmt.Errorf("no private key found in key ring")
	}

	var out bytes.Buffer
	w, err := clearsign.Encode(&out, signer.PrivateKey, nil)
	if err != nil {
		return nil, fmt.Errorf("encoding clearsign: %w", err)
	}
	if _, err := w.Write(manifest); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing clearsign writer: %w", err)
	}
	return out.Bytes(), nil
}

// VerifyManifest checks a clearsigned manifest.yaml.asc against an
// ASCII-armored public key (or key ring) and returns the original manifest
// bytes on success.
func VerifyManifest(signed []byte, armoredPublicKey string) ([]byte, error) {
	block, _ := clearsign.Decode(signed)
	if block == nil {
		return nil, fmt.Errorf("not a clearsigned message")
	}

	keyring, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armoredPublicKey))
	if err != nil {
		return nil, fmt.Errorf("reading public key: %w", err)
	}

	if _, err := openpgp.CheckDetachedSignature(keyring, bytes.NewReader(block.Bytes), block.ArmoredSignature.Body, nil); err != nil {
		return nil, fmt.Errorf("verifying signature: %w", err)
	}
	return block.Plaintext, nil
}

// ExtractPublicKey derives the public key material from an armored private
// key, for bundling alongside a signed manifest so a verifier doesn't need
// a separate keyring.
func ExtractPublicKey(armoredPrivateKey string, armored bool) ([]byte, error) {
	entities, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armoredPrivateKey))
	if err != nil {
		return nil, fmt.Errorf("reading private key: %w", err)
	}
	signer := findPrivateKey(entities)
	if signer == nil {
		return nil, fmt.Errorf("no private key found in key ring")
	}

	var buf bytes.Buffer
	if armored {
		w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
		if err != nil {
			return nil, err
		}
		if err := signer.Serialize(w); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if err := signer.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func findPrivateKey(entities openpgp.EntityList) *openpgp.Entity {
	for _, e := range entities {
		if e.PrivateKey != nil {
			return e
		}
	}
	return nil
}
