package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lockstep/internal/adapters"
	"lockstep/internal/core"
	"lockstep/internal/types"
)

// Export loads the graph and writes it to the output directory in the
// requested formats. Formats default to json when none are given.
func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	formats := req.Formats
	if len(formats) == 0 {
		formats = []types.ExportFormat{types.ExportFormatJSON}
	}
	for _, format := range formats {
		switch format {
		case types.ExportFormatJSON, types.ExportFormatYAML, types.ExportFormatDOT:
		default:
			return ExportResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unknown export format %q", format))
		}
	}

	graph, err := s.loadGraph(ctx, req.LockPath, req.Engine)
	if err != nil {
		return ExportResult{}, err
	}
	report := s.buildGraphReport(graph, req.Engine)
	export := adapters.NewExportFileAdapter(outputDir)

	var files []string
	for _, format := range formats {
		switch format {
		case types.ExportFormatJSON:
			if err := export.WriteGraphJSON(report); err != nil {
				return ExportResult{}, err
			}
			files = append(files, "lock-graph.json")
		case types.ExportFormatYAML:
			if err := export.WriteGraphYAML(report); err != nil {
				return ExportResult{}, err
			}
			files = append(files, "lock-graph.yaml")
		case types.ExportFormatDOT:
			if err := export.WriteGraphDOT(report); err != nil {
				return ExportResult{}, err
			}
			files = append(files, "lock-graph.dot")
		}
	}
	log.Ctx(ctx).Debug().
		Strs("files", files).
		Str("dir", outputDir).
		Msg("graph exported")
	return ExportResult{Files: files}, nil
}

// buildGraphReport flattens the graph into export records, running the
// default depth computation first so every reachable package carries
// one.
func (s Service) buildGraphReport(graph *core.Graph, engine types.RangeEngine) types.GraphReport {
	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock().UTC()
	}
	graph.CalculateDepth(nil)

	report := types.GraphReport{
		GeneratedAt: now.Format(time.RFC3339),
		Engine:      string(engine),
		Packages:    []types.PackageRecord{},
		Edges:       []types.EdgeRecord{},
	}
	for _, pkg := range graph.Packages() {
		record := types.PackageRecord{
			ID:                pkg.ID(),
			Name:              pkg.Name,
			Version:           pkg.Version,
			Resolved:          pkg.Resolved,
			Integrity:         pkg.Integrity,
			SatisfiedVersions: append([]string(nil), pkg.SatisfiedVersions...),
		}
		if depth, hasDepth := pkg.Depth(); hasDepth {
			record.Depth = &depth
		}
		report.Packages = append(report.Packages, record)
		for _, dep := range pkg.Dependencies {
			report.Edges = append(report.Edges, types.EdgeRecord{From: pkg.ID(), To: dep.ID()})
		}
	}
	return report
}
