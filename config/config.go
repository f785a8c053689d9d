// Package config handles jrt.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/chazu/jrt/rt"
	"github.com/tliron/commonlog"
)

// FileName is the name of the configuration file.
const FileName = "jrt.toml"

// Config represents a jrt.toml file.
type Config struct {
	Arrays Arrays `toml:"arrays"`
	Log    Log    `toml:"log"`

	// Path is the file the configuration was loaded from (set at load time).
	Path string `toml:"-"`
}

// Arrays configures array construction.
type Arrays struct {
	AllowZeroLength bool `toml:"allow-zero-length"`
}

// Log configures the commonlog backend.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("jrt.config")
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{}
}

// Load parses the jrt.toml file in dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses a configuration file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger().Warningf("%s: unknown key %s", path, key.String())
	}
	if c.Log.Verbosity < 0 {
		return nil, fmt.Errorf("%s: log verbosity must not be negative", path)
	}

	c.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a jrt.toml file, then loads
// and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Options returns the runtime settings described by c.
func (c *Config) Options() rt.Options {
	return rt.Options{
		AllowZeroLengthArrays: c.Arrays.AllowZeroLength,
	}
}

// Apply installs the runtime settings and configures logging.
func (c *Config) Apply() {
	var path *string
	if c.Log.Path != "" {
		p := c.Log.Path
		path = &p
	}
	commonlog.Configure(c.Log.Verbosity, path)
	rt.SetOptions(c.Options())
	logger().Infof("applied configuration from %q", c.Path)
}
