package config

import "github.com/hutchesonn/camh-ead-exporter/record"

// ExportConfig contains the flags and identifiers used by every export
type ExportConfig struct {
	IncludeUnpublished    bool        `yaml:"include_unpublished"`
	IncludeDigitalObjects bool        `yaml:"include_daos"`
	NumberedComponentTags bool        `yaml:"numbered_c_tags"`
	SortControlaccess     record.Flag `yaml:"sort_controlaccess"`
	ComponentIDs          bool        `yaml:"component_ids"`
	IDPrefix              string      `yaml:"id_prefix" validate:"omitempty,max=32,printascii"`
	CreationAgent         string      `yaml:"creation_agent"`
	TraceDepth            int         `yaml:"trace_depth" validate:"gte=0,lte=50"`
}

// RepositoryConfig identifies the holding institution in unitid attributes
type RepositoryConfig struct {
	CountryCode string `yaml:"country_code" validate:"omitempty,iso3166_1_alpha2"`
	Code        string `yaml:"code"`
}

// OutputConfig controls where and how documents are written
type OutputConfig struct {
	Dir         string      `yaml:"dir"`
	SnapshotDir string      `yaml:"snapshot_dir"`
	ChunkSize   int         `yaml:"chunk_size" validate:"gte=0"`
	Declaration record.Flag `yaml:"declaration"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Export     ExportConfig     `yaml:"export"`
	Repository RepositoryConfig `yaml:"repository"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}
