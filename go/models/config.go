package models

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/lunixbochs/safecs/go/cs"
)

const ConfigFile = "config.json"

type Config struct {
	Arch     string `json:"arch"`
	Base     uint64 `json:"base"`
	Count    int    `json:"count"`
	Detail   bool   `json:"detail"`
	Skipdata bool   `json:"skipdata"`
	Syntax   string `json:"syntax"`
	Color    *bool  `json:"color,omitempty"`
	Bytes    bool   `json:"bytes"`
	JSON     bool   `json:"json"`
	Verbose  bool   `json:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Arch:  "x86_64",
		Base:  0x1000,
		Bytes: true,
	}
}

// UseColor reports whether to colorize output. An unset Color follows terminal.
func (c *Config) UseColor(terminal bool) bool {
	if c.Color != nil {
		return *c.Color
	}
	return terminal
}

// ConfigDirs are the folders searched for ConfigFile.
func ConfigDirs() configdir.ConfigDir {
	return configdir.New("safecs", "dis")
}

// LoadConfig returns the defaults overlaid with the first ConfigFile found in
// dirs. A missing file is not an error.
func LoadConfig(dirs configdir.ConfigDir) (*Config, error) {
	c := DefaultConfig()
	folder := dirs.QueryFolderContainsFile(ConfigFile)
	if folder == nil {
		return c, nil
	}
	data, err := folder.ReadFile(ConfigFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := c.Parse(data); err != nil {
		return nil, errors.Wrapf(err, "bad config in %s", folder.Path)
	}
	return c, nil
}

func (c *Config) Parse(data []byte) error {
	return errors.WithStack(json.Unmarshal(data, c))
}

func (c *Config) Save(dirs configdir.ConfigDir) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	folders := dirs.QueryFolders(configdir.Global)
	if dirs.LocalPath != "" {
		folders = dirs.QueryFolders(configdir.Local)
	}
	if len(folders) == 0 {
		return errors.New("no config folder")
	}
	return errors.Wrap(folders[0].WriteFile(ConfigFile, data), "failed to write config")
}

// Engine resolves the engine configuration for arch.
func (c *Config) Engine(arch *Arch) (cs.Config, error) {
	syntax, err := cs.ParseSyntax(c.Syntax)
	if err != nil {
		return cs.Config{}, err
	}
	return arch.Engine(c.Detail, c.Skipdata, syntax), nil
}
