package main

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/scottcagno/strtable/pkg/hashtable"
	"github.com/scottcagno/strtable/pkg/logger"
)

// fileConfig is the layout of the YAML config file
type fileConfig struct {
	Table tableConfig   `yaml:"table"`
	Log   logger.Config `yaml:"log"`
}

type tableConfig struct {
	Capacity int    `yaml:"capacity"`
	Growth   *bool  `yaml:"growth"`
	Hash     string `yaml:"hash"`
}

func defaultFileConfig() *fileConfig {
	growth := true
	return &fileConfig{
		Table: tableConfig{
			Capacity: hashtable.DefaultCapacity,
			Growth:   &growth,
			Hash:     hashtable.DefaultHash,
		},
	}
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (*fileConfig, error) {
	conf := defaultFileConfig()
	if path == "" {
		return conf, nil
	}
	expPath, err := homedir.Expand(filepath.Clean(path))
	if err != nil {
		return nil, xerrors.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(expPath)
	if err != nil {
		return nil, xerrors.Errorf("config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return nil, xerrors.Errorf("config %s: %w", expPath, err)
	}
	if conf.Table.Growth == nil {
		growth := true
		conf.Table.Growth = &growth
	}
	return conf, nil
}

// hashtableConfig converts the file settings into a table config
func (c *fileConfig) hashtableConfig() *hashtable.Config {
	return &hashtable.Config{
		Capacity: c.Table.Capacity,
		Growth:   *c.Table.Growth,
		Hash:     c.Table.Hash,
	}
}
