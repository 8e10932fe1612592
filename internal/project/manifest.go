// Package project locates and parses quill.toml, the per-project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "quill.toml"

// Manifest is the parsed quill.toml.
//
//	[package]
//	name = "demo"
//
//	[lexer]
//	max_diagnostics = 50
//	jobs = 4
//	cache = true
//	extension = ".ql"
type Manifest struct {
	Package PackageConfig `toml:"package"`
	Lexer   LexerConfig   `toml:"lexer"`
}

// PackageConfig is the [package] section.
type PackageConfig struct {
	Name string `toml:"name"`
}

// LexerConfig is the [lexer] section.
type LexerConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
	Cache          bool   `toml:"cache"`
	Extension      string `toml:"extension"`
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing or blank.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// DefaultManifest returns the configuration used when no quill.toml exists.
func DefaultManifest() Manifest {
	return Manifest{
		Lexer: LexerConfig{
			MaxDiagnostics: 50,
			Jobs:           0, // 0 = GOMAXPROCS
			Cache:          false,
			Extension:      ".ql",
		},
	}
}

// LoadManifest parses quill.toml at path. Omitted [lexer] keys keep their
// defaults; unknown keys are rejected so typos surface immediately.
func LoadManifest(path string) (Manifest, error) {
	cfg := DefaultManifest()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Manifest{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if strings.TrimSpace(cfg.Package.Name) == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if cfg.Lexer.Extension != "" && !strings.HasPrefix(cfg.Lexer.Extension, ".") {
		cfg.Lexer.Extension = "." + cfg.Lexer.Extension
	}
	return cfg, nil
}

// FindManifest walks up from startDir to locate quill.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing quill.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}
