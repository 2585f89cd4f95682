package exporter

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hutchesonn/camh-ead-exporter/stream"
	"github.com/hutchesonn/camh-ead-exporter/vocab"
)

// Options control one export. Start from DefaultOptions.
type Options struct {
	// IncludeUnpublished emits unpublished entities marked audience="internal".
	IncludeUnpublished bool
	// IncludeDigitalObjects emits dao/daogrp for component digital objects.
	// The resource's own are always emitted.
	IncludeDigitalObjects bool
	// NumberedComponentTags names components c01..c12 instead of c.
	NumberedComponentTags bool
	// SortControlaccess orders terms by content inside each heading.
	SortControlaccess bool
	// ComponentIDs writes ref ids as component and index target ids.
	ComponentIDs bool
	IDPrefix     string

	CountryCode    string
	RepositoryCode string
	CreationAgent  string

	ChunkSize   int
	Declaration bool
	// TraceDepth caps the stack frames printed in an export error block.
	TraceDepth int

	Hooks      *HookRegistry
	Translator vocab.Translator
	Logger     *zap.Logger
	Now        func() time.Time
	NewID      func() string
	// OnReport receives the summary once the stream is drained or abandoned.
	OnReport func(Report)
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SortControlaccess: true,
		IDPrefix:          "aspace_",
		CountryCode:       "US",
		RepositoryCode:    "TxU-TH",
		CreationAgent:     "ArchivesSpace",
		ChunkSize:         stream.DefaultChunkSize,
		Declaration:       true,
		TraceDepth:        5,
	}
}

func (o Options) withDefaults() Options {
	if o.Translator == nil {
		o.Translator = vocab.English
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = newContainerID
	}
	if o.Hooks == nil {
		o.Hooks = NewHookRegistry()
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = stream.DefaultChunkSize
	}
	if o.TraceDepth <= 0 {
		o.TraceDepth = 5
	}
	if o.CreationAgent == "" {
		o.CreationAgent = "ArchivesSpace"
	}
	return o
}

func newContainerID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
