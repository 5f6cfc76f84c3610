package wordcodec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "text.txt")
	dict := filepath.Join(dir, "dict.txt")
	enc := filepath.Join(dir, "compressed.txt")
	dec := filepath.Join(dir, "decompressed.txt")
	text := "the cat sat on the mat\nthe  end"
	if err := os.WriteFile(src, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CompressFiles(src, dict, enc); err != nil {
		t.Fatalf("compress: %v", err)
	}
	data, _ := os.ReadFile(enc)
	if string(data) != "0 1 2 3 0 4\n0  5" {
		t.Fatalf("compressed file %q", data)
	}
	data, _ = os.ReadFile(dict)
	if string(data) != "the\ncat\nsat\non\nmat\nend\n" {
		t.Fatalf("dictionary file %q", data)
	}

	if err := DecompressFiles(enc, dict, dec); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	data, _ = os.ReadFile(dec)
	if string(data) != text {
		t.Fatalf("decompressed %q, want %q", data, text)
	}
}

func TestCompressFilesMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "compressed.txt")
	err := CompressFiles(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "dict.txt"), dst)
	if !errors.Is(err, ErrStreamOpen) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrStreamOpen, got %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("output created for missing source")
	}
}

func TestCompressFilesUnwritableDictionary(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "text.txt")
	if err := os.WriteFile(src, []byte("a b"), 0o644); err != nil {
		t.Fatal(err)
	}
	var s streams
	if _, err := s.open(src); err != nil {
		t.Fatal(err)
	}
	if _, err := s.create(filepath.Join(dir, "no", "such", "dir", "dict.txt")); !errors.Is(err, ErrStreamOpen) {
		t.Fatalf("expected ErrStreamOpen, got %v", err)
	}
	if len(s.files) != 1 {
		t.Fatalf("failed open was tracked")
	}
	if err := s.close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(s.files) != 0 {
		t.Fatalf("files still tracked after close")
	}

	err := CompressFiles(src, filepath.Join(dir, "no", "dict.txt"), filepath.Join(dir, "compressed.txt"))
	if !errors.Is(err, ErrStreamOpen) {
		t.Fatalf("expected ErrStreamOpen, got %v", err)
	}
}

func TestDecompressFilesMissingDictionary(t *testing.T) {
	dir := t.TempDir()
	enc := filepath.Join(dir, "compressed.txt")
	dec := filepath.Join(dir, "decompressed.txt")
	if err := os.WriteFile(enc, []byte("0 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := DecompressFiles(enc, filepath.Join(dir, "dict.txt"), dec)
	if !errors.Is(err, ErrStreamOpen) {
		t.Fatalf("expected ErrStreamOpen, got %v", err)
	}
	if _, err := os.Stat(dec); !os.IsNotExist(err) {
		t.Fatalf("output created without a dictionary")
	}
}

func TestDecompressFilesMalformedDictionary(t *testing.T) {
	dir := t.TempDir()
	enc := filepath.Join(dir, "compressed.txt")
	dict := filepath.Join(dir, "dict.txt")
	dec := filepath.Join(dir, "decompressed.txt")
	os.WriteFile(enc, []byte("0 1"), 0o644)
	os.WriteFile(dict, []byte("a\nb\na\n"), 0o644)
	err := DecompressFiles(enc, dict, dec)
	if !errors.Is(err, ErrMalformedDictionary) {
		t.Fatalf("expected ErrMalformedDictionary, got %v", err)
	}
	if _, err := os.Stat(dec); !os.IsNotExist(err) {
		t.Fatalf("output created for malformed dictionary")
	}
}

func TestDecompressFilesBadCode(t *testing.T) {
	dir := t.TempDir()
	enc := filepath.Join(dir, "compressed.txt")
	dict := filepath.Join(dir, "dict.txt")
	os.WriteFile(enc, []byte("0 7"), 0o644)
	os.WriteFile(dict, []byte("a\n"), 0o644)
	err := DecompressFiles(enc, dict, filepath.Join(dir, "decompressed.txt"))
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
