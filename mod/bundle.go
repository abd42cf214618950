package mod

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/tdmod/tdmod/sign"
)

// Bundle is a mod shipped as a single file: a manifest plus its injected
// assets and any embedded foreign bundles, packed as a tar.gz the same
// way the teacher's deb.Repository packs a Packages/Release tree.
type Bundle struct {
	// ManifestPath is the manifest's filename as read from disk, used
	// only to pick the right unmarshal format when reading it back.
	ManifestPath string
	ManifestRaw  []byte
	// Signature holds the clearsigned message wrapping ManifestRaw, if
	// the bundle was signed.
	Signature []byte
	// Assets maps an injected file's bundle-relative path (under
	// assets/) to its content.
	Assets map[string][]byte
	// FEBs maps an embedded foreign bundle's bundle-relative path
	// (under febs/) to its raw bytes.
	FEBs map[string][]byte
}

// NewBundle builds a Bundle from a manifest's filename and its raw source
// bytes; assets and febs are added separately via AddAsset/AddFEB.
func NewBundle(manifestPath string, manifestRaw []byte) *Bundle {
	return &Bundle{
		ManifestPath: manifestPath,
		ManifestRaw:  manifestRaw,
		Assets:       map[string][]byte{},
		FEBs:         map[string][]byte{},
	}
}

// AddAsset stores an injected file's content under assets/name.
func (b *Bundle) AddAsset(name string, content []byte) {
	b.Assets[name] = content
}

// AddFEB embeds a foreign bundle's raw bytes under febs/name.
func (b *Bundle) AddFEB(name string, content []byte) {
	b.FEBs[name] = content
}

// Sign clearsigns ManifestRaw with armoredPrivateKey and stores the
// result as Signature, written alongside the manifest as
// "<manifest>.asc" when the bundle is saved.
func (b *Bundle) Sign(armoredPrivateKey string) error {
	signed, err := sign.SignManifest(b.ManifestRaw, armoredPrivateKey)
	if err != nil {
		return fmt.Errorf("signing manifest: %w", err)
	}
	b.Signature = signed
	return nil
}

// WriteTo writes the bundle as a tar.gz to w: the manifest at its
// original basename, an optional "<manifest>.asc" clearsign wrapper,
// then every asset under assets/ and every FEB under febs/.
func (b *Bundle) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	gzw := gzip.NewWriter(cw)
	defer gzw.Close()
	tw := tar.NewWriter(gzw)
	defer tw.Close()

	addFile := func(name string, content []byte) error {
		header := &tar.Header{
			Name:    name,
			Size:    int64(len(content)),
			Mode:    0644,
			ModTime: time.Now(),
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("writing header for %s: %w", name, err)
		}
		_, err := tw.Write(content)
		return err
	}

	if err := addFile(path.Base(b.ManifestPath), b.ManifestRaw); err != nil {
		return cw.n, err
	}
	if b.Signature != nil {
		if err := addFile(path.Base(b.ManifestPath)+".asc", b.Signature); err != nil {
			return cw.n, err
		}
	}
	for name, content := range b.Assets {
		if err := addFile(path.Join("assets", name), content); err != nil {
			return cw.n, err
		}
	}
	for name, content := range b.FEBs {
		if err := addFile(path.Join("febs", name), content); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// ReadBundle parses a tar.gz bundle back into its manifest, signature,
// assets, and embedded FEBs.
func ReadBundle(r io.Reader) (*Bundle, error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening bundle gzip stream: %w", err)
	}
	defer gzr.Close()
	tr := tar.NewReader(gzr)

	b := &Bundle{Assets: map[string][]byte{}, FEBs: map[string][]byte{}}
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading bundle entry: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		content, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", header.Name, err)
		}

		switch {
		case path.Dir(header.Name) == "assets":
			b.Assets[path.Base(header.Name)] = content
		case path.Dir(header.Name) == "febs":
			b.FEBs[path.Base(header.Name)] = content
		case len(header.Name) > 4 && header.Name[len(header.Name)-4:] == ".asc":
			b.Signature = content
		default:
			b.ManifestPath = header.Name
			b.ManifestRaw = content
		}
	}
	if b.ManifestRaw == nil {
		return nil, fmt.Errorf("bundle has no manifest")
	}
	return b, nil
}

// Verify checks the bundle's signature, if present, against
// armoredPublicKey, returning the verified plaintext manifest bytes.
func (b *Bundle) Verify(armoredPublicKey string) ([]byte, error) {
	if b.Signature == nil {
		return nil, fmt.Errorf("bundle is not signed")
	}
	return sign.VerifyManifest(b.Signature, armoredPublicKey)
}

// countingWriter tracks total bytes written, the same pattern
// deb.Repository.WriteTo uses to report the tar.gz's final size.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
