// Package manifest handles screwtape.toml run configuration.
//
// A manifest describes a single Screwtape run: where the program text comes
// from, the initial tape contents, and optional execution limits. It is a
// convenience for the CLI driver; the interpreter itself never reads one.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Manifest represents a screwtape.toml run configuration.
type Manifest struct {
	Program Program `toml:"program"`
	Tape    Tape    `toml:"tape"`
	Limits  Limits  `toml:"limits"`
	Run     Run     `toml:"run"`

	// Dir is the directory containing the screwtape.toml file (set at load time).
	Dir string `toml:"-"`
}

// Program says where the program text comes from. Exactly one of File and
// Source must be set.
type Program struct {
	File   string `toml:"file"`
	Source string `toml:"source"`
}

// Tape configures the initial tape contents. An absent or empty cell list
// means the default single zero cell.
type Tape struct {
	Cells []int `toml:"cells"`
}

// Limits configures optional execution cutoffs. Zero values mean unlimited.
type Limits struct {
	MaxSteps int    `toml:"max-steps"`
	Timeout  string `toml:"timeout"` // Go duration string, e.g. "5s"
}

// Run configures driver behavior.
type Run struct {
	Trace    bool `toml:"trace"`
	DumpTape bool `toml:"dump-tape"`
}

// Load parses a screwtape.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "screwtape.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a screwtape.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "screwtape.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Validate checks the manifest for contradictions.
func (m *Manifest) Validate() error {
	if m.Program.File != "" && m.Program.Source != "" {
		return errors.New("program.file and program.source are mutually exclusive")
	}
	if m.Program.File == "" && m.Program.Source == "" {
		return errors.New("one of program.file or program.source is required")
	}
	if m.Limits.MaxSteps < 0 {
		return fmt.Errorf("limits.max-steps must not be negative, got %d", m.Limits.MaxSteps)
	}
	if _, err := m.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// ProgramText returns the program source, reading program.file relative to
// the manifest directory when needed.
func (m *Manifest) ProgramText() (string, error) {
	if m.Program.Source != "" {
		return m.Program.Source, nil
	}
	path := m.ProgramPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read program %s: %w", path, err)
	}
	return string(data), nil
}

// ProgramPath returns the absolute path of program.file, or "" when the
// program is inline.
func (m *Manifest) ProgramPath() string {
	if m.Program.File == "" {
		return ""
	}
	if filepath.IsAbs(m.Program.File) {
		return m.Program.File
	}
	return filepath.Join(m.Dir, m.Program.File)
}

// TimeoutDuration parses limits.timeout. A zero duration means no timeout.
func (m *Manifest) TimeoutDuration() (time.Duration, error) {
	if m.Limits.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(m.Limits.Timeout)
	if err != nil {
		return 0, fmt.Errorf("limits.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("limits.timeout must not be negative, got %s", d)
	}
	return d, nil
}
