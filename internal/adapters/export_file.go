package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"lockstep/internal/ports"
	"lockstep/internal/types"
)

const (
	graphJSONName = "lock-graph.json"
	graphYAMLName = "lock-graph.yaml"
	graphDOTName  = "lock-graph.dot"
)

// ExportFileAdapter writes graph reports into Dir, one fixed file name
// per format.
type ExportFileAdapter struct {
	Dir string
}

func NewExportFileAdapter(dir string) ExportFileAdapter {
	return ExportFileAdapter{Dir: dir}
}

func (a ExportFileAdapter) WriteGraphJSON(report types.GraphReport) error {
	path, err := a.ensurePath(graphJSONName)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode graph report as json").
			WithCause(err)
	}
	return a.writeFile(path, append(data, '\n'))
}

func (a ExportFileAdapter) WriteGraphYAML(report types.GraphReport) error {
	path, err := a.ensurePath(graphYAMLName)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode graph report as yaml").
			WithCause(err)
	}
	return a.writeFile(path, data)
}

func (a ExportFileAdapter) WriteGraphDOT(report types.GraphReport) error {
	path, err := a.ensurePath(graphDOTName)
	if err != nil {
		return err
	}
	return a.writeFile(path, renderDOT(report))
}

// renderDOT renders the report as Graphviz text. Node lines come out in
// package creation order and edge lines in resolution order, so the
// same report always produces identical bytes.
func renderDOT(report types.GraphReport) []byte {
	var buf bytes.Buffer
	buf.WriteString("digraph lock {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box];\n")
	for _, pkg := range report.Packages {
		if pkg.Depth != nil {
			fmt.Fprintf(&buf, "  %q [label=\"%s\\ndepth %d\"];\n", pkg.ID, pkg.ID, *pkg.Depth)
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", pkg.ID)
	}
	for _, edge := range report.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", edge.From, edge.To)
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

func (a ExportFileAdapter) ensurePath(name string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, name), nil
}

func (a ExportFileAdapter) writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write export file").
			WithCause(err)
	}
	return nil
}

var _ ports.ExportPort = ExportFileAdapter{}
