package apkio

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdmod/tdmod/country"
)

func TestDirSourcePacksListsPairsFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "DataLocal.pack"), []byte("packbytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "DataLocal.list"), []byte("listbytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewDirSource(dir, country.EN, country.Version{Major: 9, Minor: 0, Patch: 0}, "", "")
	pairs, err := src.PacksLists()
	if err != nil {
		t.Fatalf("PacksLists: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("want 1 pair, got %d", len(pairs))
	}
	if pairs[0].Name != "DataLocal" {
		t.Errorf("name = %q, want DataLocal", pairs[0].Name)
	}
	if string(pairs[0].PackData) != "packbytes" || string(pairs[0].ListData) != "listbytes" {
		t.Error("pack/list data mismatch")
	}
}

func TestDirSourceMissingListErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "DataLocal.pack"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := NewDirSource(dir, country.EN, country.Version{}, "", "")
	if _, err := src.PacksLists(); err == nil {
		t.Fatal("want error when .list sibling is missing")
	}
}

func TestDirSourceWritePackListRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := NewDirSource(dir, country.EN, country.Version{}, "", "")
	if err := src.WritePackList("ImageLocal", []byte("pk"), []byte("ls")); err != nil {
		t.Fatalf("WritePackList: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "ImageLocal.pack"))
	if err != nil || string(got) != "pk" {
		t.Fatalf("pack file mismatch: %v %q", err, got)
	}
}

func TestDirSourceSignInstallNotImplemented(t *testing.T) {
	src := NewDirSource(t.TempDir(), country.EN, country.Version{}, "", "")
	if err := src.Sign(); err != ErrNotImplemented {
		t.Errorf("Sign() = %v, want ErrNotImplemented", err)
	}
	if err := src.Install(); err != ErrNotImplemented {
		t.Errorf("Install() = %v, want ErrNotImplemented", err)
	}
}

func TestListAndExtractZipMembers(t *testing.T) {
	apkPath := filepath.Join(t.TempDir(), "app.apk")
	f, err := os.Create(apkPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("assets/DataLocal.pack")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	names, err := ListZipMembers(apkPath)
	if err != nil {
		t.Fatalf("ListZipMembers: %v", err)
	}
	if len(names) != 1 || names[0] != "assets/DataLocal.pack" {
		t.Fatalf("got %v", names)
	}

	var buf bytes.Buffer
	if err := ExtractZipMember(apkPath, "assets/DataLocal.pack", &buf); err != nil {
		t.Fatalf("ExtractZipMember: %v", err)
	}
	if buf.String() != "hello" {
		t.Errorf("extracted content = %q, want hello", buf.String())
	}
}

func TestExtractZipMemberMissing(t *testing.T) {
	apkPath := filepath.Join(t.TempDir(), "app.apk")
	f, _ := os.Create(apkPath)
	zw := zip.NewWriter(f)
	zw.Close()
	f.Close()

	var buf bytes.Buffer
	if err := ExtractZipMember(apkPath, "nope", &buf); err == nil {
		t.Fatal("want error for missing member")
	}
}
