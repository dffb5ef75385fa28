// Package store manages the on-disk layout of compiled user programs:
// one directory per program name, source/object/binary files named after
// the program's version, and a small CBOR manifest recording the outcome
// of the last compile. List finds programs by walking the directory tree;
// it does not read the manifests.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Root is the directory under which every program gets its own
// subdirectory.
type Root struct {
	Dir string
}

// NewRoot returns a Root rooted at dir. dir is not created; per-program
// subdirectories are created lazily via EnsureDir (WriteSource calls it).
func NewRoot(dir string) *Root {
	return &Root{Dir: dir}
}

// Paths names every file belonging to one (name, version) program.
type Paths struct {
	Dir         string
	Source      string
	Object      string
	Binary      string
	Diagnostics string
	Manifest    string
}

// Paths computes the file layout for a given program name and version,
// without touching the filesystem.
func (s *Root) Paths(name string, version uint16) Paths {
	dir := filepath.Join(s.Dir, name)
	base := fmt.Sprintf("%s_v%d", name, version)
	return Paths{
		Dir:         dir,
		Source:      filepath.Join(dir, base+".c"),
		Object:      filepath.Join(dir, base+".o"),
		Binary:      filepath.Join(dir, base),
		Diagnostics: filepath.Join(dir, "compiler_output"),
		Manifest:    filepath.Join(dir, base+".manifest.cbor"),
	}
}

// EnsureDir creates the subdirectory for a program name if it does not
// already exist.
func (s *Root) EnsureDir(name string) error {
	return os.MkdirAll(filepath.Join(s.Dir, name), 0o777)
}

// SourcePreambleLines lines are prepended to user-submitted program text before
// it is written to disk, so that line numbers reported by the debugger
// need a fixed offset subtracted to refer back to the user's own source.
const SourcePreambleLines = 3

// WriteSource writes a user program's C source to disk under name/version,
// prefixed with the two generated #include lines (and the blank line
// separating them from user code) that let it see the hardware controller
// type header and the user program support library.
func (s *Root) WriteSource(name string, version uint16, hwType byte, code []byte) (Paths, error) {
	paths := s.Paths(name, version)
	if err := s.EnsureDir(name); err != nil {
		return paths, err
	}
	f, err := os.Create(paths.Source)
	if err != nil {
		return paths, err
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "#include \"../andrixhwtype%d.h\"\n", hwType); err != nil {
		return paths, err
	}
	if _, err := fmt.Fprint(f, "#include \"../userprogram.h\"\n\n"); err != nil {
		return paths, err
	}
	if _, err := f.Write(code); err != nil {
		return paths, err
	}
	return paths, nil
}

// ReadUserSource returns the user-submitted portion of a program's source
// file, skipping the generated preamble lines written by WriteSource.
func (s *Root) ReadUserSource(name string, version uint16) ([]byte, error) {
	data, err := os.ReadFile(s.Paths(name, version).Source)
	if err != nil {
		return nil, err
	}
	seen := 0
	for i, b := range data {
		if b != '\n' {
			continue
		}
		seen++
		if seen == SourcePreambleLines {
			return data[i+1:], nil
		}
	}
	return nil, fmt.Errorf("store: %s: fewer than %d lines", name, SourcePreambleLines)
}

// Manifest records the outcome of the most recent compile of a program
// version, persisted as CBOR alongside the program's other files.
type Manifest struct {
	Name       string
	Version    uint16
	CompiledAt time.Time
	Succeeded  bool
}

// WriteManifest persists m for the given program.
func (s *Root) WriteManifest(m Manifest) error {
	data, err := cbor.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Paths(m.Name, m.Version).Manifest, data, 0o644)
}

// ReadManifest loads the manifest for a program version, if one exists.
func (s *Root) ReadManifest(name string, version uint16) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(s.Paths(name, version).Manifest)
	if err != nil {
		return m, err
	}
	err = cbor.Unmarshal(data, &m)
	return m, err
}

// Program identifies one compiled program version found on disk.
type Program struct {
	Name    string
	Version uint16
}

// List walks the store root and returns every program version that has a
// source file on disk, sorted by name then version.
func (s *Root) List() ([]Program, error) {
	entries, err := os.ReadDir(s.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Program
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		files, err := os.ReadDir(filepath.Join(s.Dir, name))
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			base := f.Name()
			if f.IsDir() || !strings.HasSuffix(base, ".c") {
				continue
			}
			version, ok := parseVersionSuffix(name, base)
			if !ok {
				continue
			}
			out = append(out, Program{Name: name, Version: version})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Version < out[j].Version
	})
	return out, nil
}

// parseVersionSuffix extracts the version number from a "<name>_v<version>.c"
// file name.
func parseVersionSuffix(name, fileName string) (uint16, bool) {
	prefix := name + "_v"
	if !strings.HasPrefix(fileName, prefix) {
		return 0, false
	}
	rest := strings.TrimSuffix(fileName[len(prefix):], ".c")
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 || n > 0xffff {
		return 0, false
	}
	return uint16(n), true
}
