package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hutchesonn/camh-ead-exporter/exporter"
	"github.com/hutchesonn/camh-ead-exporter/record"
)

type exportFlags struct {
	record   string
	snapshot string
	out      string
	timeout  time.Duration
}

func newExportCmd(a *app) *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one resource as EAD",
		Long: `Export reads a resource record from a YAML or JSON file, an http(s) URL or a
snapshot, and writes the EAD document to --out or standard output.

When both --record and --snapshot are given the record is loaded and the
snapshot is refreshed from it. Export flags given on the command line win over
defaults stored in the record, which win over the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(cmd, f)
			if err != nil {
				return err
			}
			opts := a.exportOptions(cmd, doc)
			return a.writeDocument(cmd, doc, opts, f.out)
		},
	}

	cmd.Flags().StringVarP(&f.record, "record", "r", "", "Record file or URL (YAML or JSON)")
	cmd.Flags().StringVarP(&f.snapshot, "snapshot", "s", "", "Snapshot file to read, or to write when --record is given")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output file; '-' for stdout (default: <output.dir>/<ead_id>.xml, or stdout)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 30*time.Second, "Timeout for fetching a record URL")
	cmd.Flags().Bool("include-unpublished", false, "Include unpublished content marked audience=\"internal\"")
	cmd.Flags().Bool("include-daos", false, "Include digital object links on components")
	cmd.Flags().Bool("numbered-c-tags", false, "Name components c01..c12 instead of c")
	return cmd
}

func (a *app) loadDocument(cmd *cobra.Command, f exportFlags) (*record.Document, error) {
	switch {
	case f.record != "":
		doc, err := newFetcher(f.timeout).loadRecord(cmd.Context(), f.record)
		if err != nil {
			return nil, err
		}
		if f.snapshot != "" {
			if err := record.SaveSnapshotToFile(doc, f.snapshot); err != nil {
				return nil, err
			}
			a.log.Info("snapshot saved", zap.String("path", f.snapshot), zap.Int("nodes", doc.Count()))
		}
		return doc, nil
	case f.snapshot != "":
		return record.LoadSnapshotFromFile(f.snapshot)
	}
	return nil, errors.New("one of --record or --snapshot is required")
}

// exportOptions layers configuration, record defaults and flags.
func (a *app) exportOptions(cmd *cobra.Command, doc *record.Document) exporter.Options {
	opts := a.cfg.ExportOptions()
	opts.Logger = a.log

	opts.IncludeUnpublished = doc.Defaults.IncludeUnpublished.Or(opts.IncludeUnpublished)
	opts.IncludeDigitalObjects = doc.Defaults.IncludeDigitalObjects.Or(opts.IncludeDigitalObjects)
	opts.NumberedComponentTags = doc.Defaults.NumberedComponentTags.Or(opts.NumberedComponentTags)

	flags := cmd.Flags()
	if flags.Changed("include-unpublished") {
		opts.IncludeUnpublished, _ = flags.GetBool("include-unpublished")
	}
	if flags.Changed("include-daos") {
		opts.IncludeDigitalObjects, _ = flags.GetBool("include-daos")
	}
	if flags.Changed("numbered-c-tags") {
		opts.NumberedComponentTags, _ = flags.GetBool("numbered-c-tags")
	}

	opts.OnReport = func(r exporter.Report) {
		a.log.Info("export finished",
			zap.Int("nodes", r.Nodes),
			zap.Int("skipped", r.Skipped),
			zap.Int("failed", r.Failed),
			zap.Int("warnings", r.Warnings),
			zap.Int64("bytes", r.Bytes),
		)
	}
	return opts
}

// outputPath resolves where the document goes. "" means stdout.
func (a *app) outputPath(doc *record.Document, out string) string {
	switch {
	case out == "-":
		return ""
	case out != "":
		return out
	case a.cfg.Output.Dir != "":
		name := doc.Meta.EADID
		if name == "" {
			name = doc.Desc.RefID
		}
		if name == "" {
			name = "resource"
		}
		return filepath.Join(a.cfg.Output.Dir, name+".xml")
	}
	return ""
}

func (a *app) writeDocument(cmd *cobra.Command, doc *record.Document, opts exporter.Options, out string) error {
	s := exporter.New(opts).Export(doc)

	path := a.outputPath(doc, out)
	if path == "" {
		_, err := s.WriteTo(cmd.OutOrStdout())
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	// written beside the target, then renamed
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ead-*.xml")
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := s.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close output file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "move output file")
	}
	a.log.Info("document written", zap.String("path", path))
	return nil
}
