package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Audit log sink, one line per event.
	LogFile string `yaml:"log_file"`

	// Optional remote session target. When Host is empty the console
	// operates on the local machine.
	Remote RemoteConfig `yaml:"remote"`

	// Per-tool version overrides, e.g. kubectl: stable.
	Tools map[string]string `yaml:"tools"`
}

type RemoteConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSHPort  int    `yaml:"ssh_port"`
}

// ToolSpec describes one external binary the console manages. Exactly one
// of Packages or DownloadURL drives the install branch.
type ToolSpec struct {
	Name        string
	Version     string
	VersionURL  string            // endpoint returning a bare version string
	PresenceCmd string            // exits zero when the tool is usable
	InstallPath string            // target for direct binary downloads
	DownloadURL string            // fmt template: version, arch
	Packages    map[string]string // package-manager family -> package name
}

// Load reads the optional override file on top of defaults. A missing path
// argument yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LogFile: DefaultLogFile,
		Remote:  RemoteConfig{SSHPort: DefaultSSHPort},
		Tools:   map[string]string{},
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}
	return cfg, nil
}

// ToolCatalog returns the session's tool specs with any configured version
// overrides applied. The catalog is fixed for the rest of the session.
func (c *Config) ToolCatalog() []ToolSpec {
	specs := DefaultTools()
	for i := range specs {
		if v, ok := c.Tools[specs[i].Name]; ok && v != "" {
			specs[i].Version = v
		}
	}
	return specs
}
