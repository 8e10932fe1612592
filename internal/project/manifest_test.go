package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"

[lexer]
max_diagnostics = 10
jobs = 4
cache = true
extension = ".qll"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q, want demo", m.Package.Name)
	}
	if m.Lexer.MaxDiagnostics != 10 || m.Lexer.Jobs != 4 || !m.Lexer.Cache {
		t.Errorf("lexer config not decoded: %+v", m.Lexer)
	}
	if m.Lexer.Extension != ".qll" {
		t.Errorf("extension = %q, want .qll", m.Lexer.Extension)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "bare"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	def := DefaultManifest()
	if m.Lexer != def.Lexer {
		t.Errorf("lexer config = %+v, want defaults %+v", m.Lexer, def.Lexer)
	}
}

func TestLoadManifestNormalizesExtension(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "x"

[lexer]
extension = "src"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Lexer.Extension != ".src" {
		t.Errorf("extension = %q, want .src", m.Lexer.Extension)
	}
}

func TestLoadManifestMissingPackage(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[lexer]
jobs = 1
`)
	_, err := LoadManifest(path)
	if !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("err = %v, want ErrPackageSectionMissing", err)
	}
}

func TestLoadManifestBlankName(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "  "
`)
	_, err := LoadManifest(path)
	if !errors.Is(err, ErrPackageNameMissing) {
		t.Fatalf("err = %v, want ErrPackageNameMissing", err)
	}
}

func TestLoadManifestUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "x"

[lexer]
max_diagnostic = 5
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("typo key should be rejected")
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[package`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("broken TOML should fail")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"x\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest = (%v, %v)", ok, err)
	}
	if path != filepath.Join(root, ManifestName) {
		t.Fatalf("path = %q, want manifest at root", path)
	}

	dir, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot = (%v, %v)", ok, err)
	}
	if dir != root {
		t.Fatalf("root = %q, want %q", dir, root)
	}
}

func TestFindManifestAbsent(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("no manifest expected in empty temp dir")
	}
}
