package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lockstep/internal/adapters"
	"lockstep/internal/core"
	"lockstep/internal/types"
)

func TestResolveIntegration(t *testing.T) {
	root := repoRoot(t)
	locks := adapters.NewLockFileAdapter()
	data, err := locks.ReadLock(filepath.Join(root, "fixtures", "sample.lock"))
	require.NoError(t, err)

	resolver := core.NewResolver(adapters.NewSemverRangeAdapter())
	graph, err := resolver.Resolve(t.Context(), data)
	require.NoError(t, err)
	require.Equal(t, 4, graph.Len())

	pkg, ok := graph.Find("left-pad", "^1.0.0")
	require.True(t, ok)
	require.Equal(t, "1.3.0", pkg.Version)
	require.Len(t, pkg.Resolves, 2)

	graph.CalculateDepth(nil)
	require.Equal(t, 1, graph.Depth())

	outDir := t.TempDir()
	export := adapters.NewExportFileAdapter(outDir)
	report := types.GraphReport{Engine: string(types.RangeEngineSemver)}
	for _, node := range graph.Packages() {
		record := types.PackageRecord{ID: node.ID(), Name: node.Name, Version: node.Version}
		if depth, hasDepth := node.Depth(); hasDepth {
			record.Depth = &depth
		}
		report.Packages = append(report.Packages, record)
		for _, dep := range node.Dependencies {
			report.Edges = append(report.Edges, types.EdgeRecord{From: node.ID(), To: dep.ID()})
		}
	}
	require.NoError(t, export.WriteGraphDOT(report))

	_, err = os.Stat(filepath.Join(outDir, "lock-graph.dot"))
	require.NoError(t, err)
}

func repoRoot(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
