package config

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hutchesonn/camh-ead-exporter/exporter"
)

// Config is the global application configuration
var Config AppConfig

// DefaultPaths are searched by LoadAppConfig when no path is given.
var DefaultPaths = []string{"config.yml", "./configs/config.yml"}

// LoadAppConfig loads the first readable file of paths, or of DefaultPaths,
// into Config.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads and validates one configuration file.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes, validates and completes a configuration document.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return AppConfig{}, errors.Wrap(err, "decode config")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, errors.Wrap(err, "validate config")
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	def := exporter.DefaultOptions()
	if c.Export.IDPrefix == "" {
		c.Export.IDPrefix = def.IDPrefix
	}
	if c.Export.CreationAgent == "" {
		c.Export.CreationAgent = def.CreationAgent
	}
	if c.Export.TraceDepth == 0 {
		c.Export.TraceDepth = def.TraceDepth
	}
	if c.Repository.CountryCode == "" {
		c.Repository.CountryCode = def.CountryCode
	}
	if c.Repository.Code == "" {
		c.Repository.Code = def.RepositoryCode
	}
	if c.Output.ChunkSize == 0 {
		c.Output.ChunkSize = def.ChunkSize
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// ExportOptions maps the configuration onto exporter options. Hooks, logger
// and translator are left for the caller.
func (c AppConfig) ExportOptions() exporter.Options {
	opts := exporter.DefaultOptions()
	opts.IncludeUnpublished = c.Export.IncludeUnpublished
	opts.IncludeDigitalObjects = c.Export.IncludeDigitalObjects
	opts.NumberedComponentTags = c.Export.NumberedComponentTags
	opts.SortControlaccess = c.Export.SortControlaccess.Or(opts.SortControlaccess)
	opts.ComponentIDs = c.Export.ComponentIDs
	opts.IDPrefix = c.Export.IDPrefix
	opts.CreationAgent = c.Export.CreationAgent
	opts.TraceDepth = c.Export.TraceDepth
	opts.CountryCode = c.Repository.CountryCode
	opts.RepositoryCode = c.Repository.Code
	opts.ChunkSize = c.Output.ChunkSize
	opts.Declaration = c.Output.Declaration.Or(opts.Declaration)
	return opts
}
