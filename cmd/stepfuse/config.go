package main

import (
	"github.com/BurntSushi/toml"

	"github.com/arolek/stepfuse/internal/entity"
)

// runConfig supplies entity.FileMetadata defaults that aren't carried
// by the assembly JSON itself. Any field left unset in the TOML file
// keeps its zero value; Merger.Finalize writes it into FILE_NAME as-is.
type runConfig struct {
	Author              []string `toml:"author"`
	Organization        []string `toml:"organization"`
	PreprocessorVersion string   `toml:"preprocessor_version"`
	OriginatingSystem   string   `toml:"originating_system"`
	Authorization       string   `toml:"authorization"`
}

func loadConfig(path string) (runConfig, error) {
	var cfg runConfig
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

func (c runConfig) metadata(name, timestamp string) entity.FileMetadata {
	return entity.FileMetadata{
		Name:                name,
		Timestamp:           timestamp,
		Author:              c.Author,
		Organization:        c.Organization,
		PreprocessorVersion: c.PreprocessorVersion,
		OriginatingSystem:   c.OriginatingSystem,
		Authorization:       c.Authorization,
	}
}
