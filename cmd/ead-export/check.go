package main

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hutchesonn/camh-ead-exporter/ead"
	"github.com/hutchesonn/camh-ead-exporter/sanitize"
)

const diagnosticMarker = "EXPORT ERROR"

// checkResult summarizes a parsed document.
type checkResult struct {
	Root        string
	Namespace   string
	Elements    int
	Components  int
	MaxDepth    int
	Diagnostics int
}

func newCheckCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check that an exported document is well formed",
		Long: `Check re-parses an EAD document with a strict XML parser and reports its
element count, component count and nesting depth. Export error blocks left
by failed components are counted; with --strict they fail the check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open document")
			}
			defer func() { _ = f.Close() }()

			res, err := checkDocument(bufio.NewReader(f))
			if err != nil {
				return errors.Wrapf(err, "%s", args[0])
			}
			a.log.Debug("document checked", zap.String("path", args[0]), zap.Int("elements", res.Elements))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: well formed\n", args[0])
			fmt.Fprintf(out, "  root:        %s (%s)\n", res.Root, res.Namespace)
			fmt.Fprintf(out, "  elements:    %d\n", res.Elements)
			fmt.Fprintf(out, "  components:  %d\n", res.Components)
			fmt.Fprintf(out, "  max depth:   %d\n", res.MaxDepth)
			fmt.Fprintf(out, "  diagnostics: %d\n", res.Diagnostics)

			if res.Root != ead.EAD.String() || res.Namespace != ead.Namespace {
				return errors.Newf("root element is %s in %q, not an EAD document", res.Root, res.Namespace)
			}
			if strict && res.Diagnostics > 0 {
				return errors.Newf("%d export error blocks", res.Diagnostics)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the document contains export error blocks")
	return cmd
}

// checkDocument streams r through a strict decoder.
func checkDocument(r io.Reader) (checkResult, error) {
	var res checkResult
	dec := xml.NewDecoder(r)
	dec.Strict = true
	depth := 0
	for n := 0; ; n++ {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, errors.Wrap(err, "parse")
		}
		if err := sanitize.CheckToken(tok); err != nil && !prolog(tok, n, res.Root) {
			return res, errors.Wrap(err, "parse")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if res.Root != "" {
					return res, errors.New("more than one root element")
				}
				res.Root, res.Namespace = t.Name.Local, t.Name.Space
			}
			depth++
			res.Elements++
			res.MaxDepth = max(res.MaxDepth, depth)
			if tag, err := ead.Lookup(t.Name.Local); err == nil && isComponent(tag) {
				res.Components++
			}
		case xml.EndElement:
			depth--
		case xml.CharData:
			res.Diagnostics += strings.Count(string(t), diagnosticMarker)
		}
	}
	if res.Root == "" {
		return res, errors.New("no root element")
	}
	return res, nil
}

// prolog reports whether tok is a leading declaration or a doctype before
// the root element, the only places either may appear.
func prolog(tok xml.Token, n int, root string) bool {
	if root != "" {
		return false
	}
	switch t := tok.(type) {
	case xml.ProcInst:
		return n == 0
	case xml.Directive:
		return strings.HasPrefix(string(t), "DOCTYPE")
	}
	return false
}

func isComponent(tag ead.Tag) bool {
	return tag >= ead.C && tag <= ead.C12
}
