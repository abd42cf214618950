// Command tdmod applies modding manifests and foreign bundles against a
// decrypted game catalog, and signs/verifies the resulting mod bundles.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tdmod/tdmod/apkio"
	"github.com/tdmod/tdmod/bdata"
	"github.com/tdmod/tdmod/country"
	"github.com/tdmod/tdmod/feb"
	"github.com/tdmod/tdmod/mod"
)

// arrayFlags collects a repeated -flag value into a slice.
type arrayFlags []string

func (a *arrayFlags) String() string { return fmt.Sprint([]string(*a)) }
func (a *arrayFlags) Set(v string) error {
	*a = append(*a, v)
	return nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "apply":
		runApply(os.Args[2:])
	case "feb-import":
		runFEBImport(os.Args[2:])
	case "inspect":
		runInspect(os.Args[2:])
	case "sign":
		runSign(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: tdmod <command> [flags]")
	fmt.Println("\nCommands:")
	fmt.Println("  apply       Apply one or more mod manifests against an unpacked catalog")
	fmt.Println("  feb-import  Wrap a foreign-bundle (.feb) import as a mod bundle")
	fmt.Println("  inspect     Resolve and print a file name's catalog precedence")
	fmt.Println("  sign        Clearsign a mod bundle's manifest")
	fmt.Println("  verify      Verify a mod bundle's manifest signature")
}

func parseCC(s string) country.Code {
	cc, ok := country.FromCode(s)
	if !ok {
		log.Fatalf("unknown country code %q", s)
	}
	return cc
}

func parseGV(s string) country.Version {
	gv, err := country.ParseVersion(s)
	if err != nil {
		log.Fatalf("invalid game version %q: %v", s, err)
	}
	return gv
}

// runApply loads a catalog from an unpacked APK directory, applies every
// named manifest in order, and writes the modified packs back.
func runApply(args []string) {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	var apkDir string
	fs.StringVar(&apkDir, "apk-dir", "", "unpacked APK asset directory")
	var ccStr string
	fs.StringVar(&ccStr, "cc", "en", "country code (en, jp, kr, tw)")
	var gvStr string
	fs.StringVar(&gvStr, "gv", "", "game version (e.g. 11.0.0)")
	var key string
	fs.StringVar(&key, "key", "", "local pack cipher key override (hex)")
	var iv string
	fs.StringVar(&iv, "iv", "", "local pack cipher iv override (hex)")
	var delimStr string
	fs.StringVar(&delimStr, "delim", "comma", "record delimiter (comma, tab)")
	var manifests arrayFlags
	fs.Var(&manifests, "manifest", "manifest file to apply (repeatable, applied in order)")
	fs.Parse(args)

	if apkDir == "" || gvStr == "" || len(manifests) == 0 {
		log.Fatal("--apk-dir, --gv, and at least one --manifest are required")
	}
	delim := bdata.Comma
	if delimStr == "tab" {
		delim = bdata.Tab
	}

	src := apkio.NewDirSource(apkDir, parseCC(ccStr), parseGV(gvStr), key, iv)
	packs, err := apkio.LoadCatalog(src)
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}

	for _, path := range manifests {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("reading manifest %s: %v", path, err)
		}
		m, err := mod.Load(path, content)
		if err != nil {
			log.Fatalf("parsing manifest %s: %v", path, err)
		}
		if err := m.Apply(packs, delim); err != nil {
			log.Fatalf("applying manifest %s: %v", path, err)
		}
	}

	if err := apkio.SaveCatalog(src, packs); err != nil {
		log.Fatalf("saving catalog: %v", err)
	}
	fmt.Println("Applied", len(manifests), "manifest(s) successfully.")
}

// runFEBImport decodes a .feb file and wraps it, unopened, as a mod bundle
// that names it in manifest.febs — the bundle's consumer is responsible
// for actually importing the FEB's units into a catalog via feb.Open.
func runFEBImport(args []string) {
	fs := flag.NewFlagSet("feb-import", flag.ExitOnError)
	var febPath string
	fs.StringVar(&febPath, "feb", "", "path to the .feb file to import")
	var out string
	fs.StringVar(&out, "out", "", "output mod bundle path (.tar.gz)")
	var name string
	fs.StringVar(&name, "name", "", "mod name")
	var version string
	fs.StringVar(&version, "version", "0.1.0", "mod version")
	fs.Parse(args)

	if febPath == "" || out == "" || name == "" {
		log.Fatal("--feb, --out, and --name are required")
	}

	raw, err := os.ReadFile(febPath)
	if err != nil {
		log.Fatalf("reading %s: %v", febPath, err)
	}
	if _, err := feb.Open(raw); err != nil {
		log.Fatalf("decoding %s: %v", febPath, err)
	}

	febName := filepath.Base(febPath)
	manifestYAML := fmt.Sprintf("name: %s\nversion: %s\nfebs:\n  - %s\n", name, version, febName)

	b := mod.NewBundle("manifest.yaml", []byte(manifestYAML))
	b.AddFEB(febName, raw)

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("creating %s: %v", out, err)
	}
	defer f.Close()
	if _, err := b.WriteTo(f); err != nil {
		log.Fatalf("writing bundle: %v", err)
	}
	fmt.Println("Wrote", out)
}

// runInspect resolves a single file name's catalog precedence and prints
// which pack it would be read from.
func runInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var apkDir string
	fs.StringVar(&apkDir, "apk-dir", "", "unpacked APK asset directory")
	var ccStr string
	fs.StringVar(&ccStr, "cc", "en", "country code (en, jp, kr, tw)")
	var gvStr string
	fs.StringVar(&gvStr, "gv", "", "game version (e.g. 11.0.0)")
	var fileName string
	fs.StringVar(&fileName, "file", "", "file name to resolve")
	fs.Parse(args)

	if apkDir == "" || gvStr == "" || fileName == "" {
		log.Fatal("--apk-dir, --gv, and --file are required")
	}

	src := apkio.NewDirSource(apkDir, parseCC(ccStr), parseGV(gvStr), "", "")
	packs, err := apkio.LoadCatalog(src)
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}

	gf, err := packs.FindFile(fileName)
	if err != nil {
		log.Fatalf("resolving %s: %v", fileName, err)
	}
	if gf == nil {
		fmt.Printf("%s: not found\n", fileName)
		return
	}
	fmt.Printf("%s: pack=%s\n", fileName, gf.PackName)
}

func runSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	var bundlePath string
	fs.StringVar(&bundlePath, "bundle", "", "mod bundle (.tar.gz) to sign")
	var keyPath string
	fs.StringVar(&keyPath, "key", "", "armored private key file")
	var out string
	fs.StringVar(&out, "out", "", "output bundle path (defaults to overwriting --bundle)")
	fs.Parse(args)

	if bundlePath == "" || keyPath == "" {
		log.Fatal("--bundle and --key are required")
	}
	if out == "" {
		out = bundlePath
	}

	f, err := os.Open(bundlePath)
	if err != nil {
		log.Fatalf("opening %s: %v", bundlePath, err)
	}
	b, err := mod.ReadBundle(f)
	f.Close()
	if err != nil {
		log.Fatalf("reading bundle: %v", err)
	}

	keyBytes, err := os.ReadFile(keyPath)
	if err != nil {
		log.Fatalf("reading key %s: %v", keyPath, err)
	}
	if err := b.Sign(string(keyBytes)); err != nil {
		log.Fatalf("signing: %v", err)
	}

	wf, err := os.Create(out)
	if err != nil {
		log.Fatalf("creating %s: %v", out, err)
	}
	defer wf.Close()
	if _, err := b.WriteTo(wf); err != nil {
		log.Fatalf("writing signed bundle: %v", err)
	}
	fmt.Println("Signed", out)
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var bundlePath string
	fs.StringVar(&bundlePath, "bundle", "", "mod bundle (.tar.gz) to verify")
	var pubKeyPath string
	fs.StringVar(&pubKeyPath, "pubkey", "", "armored public key file")
	fs.Parse(args)

	if bundlePath == "" || pubKeyPath == "" {
		log.Fatal("--bundle and --pubkey are required")
	}

	f, err := os.Open(bundlePath)
	if err != nil {
		log.Fatalf("opening %s: %v", bundlePath, err)
	}
	defer f.Close()
	b, err := mod.ReadBundle(f)
	if err != nil {
		log.Fatalf("reading bundle: %v", err)
	}

	pubKey, err := os.ReadFile(pubKeyPath)
	if err != nil {
		log.Fatalf("reading public key %s: %v", pubKeyPath, err)
	}
	if _, err := b.Verify(string(pubKey)); err != nil {
		log.Fatalf("verification failed: %v", err)
	}
	fmt.Println("Signature valid.")
}
