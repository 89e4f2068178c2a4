package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Inspect loads the graph and summarizes its shape: node, edge, and
// root counts plus the maximum dependency depth.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	graph, err := s.loadGraph(ctx, req.LockPath, req.Engine)
	if err != nil {
		return InspectResult{}, err
	}
	edges := 0
	roots := 0
	for _, pkg := range graph.Packages() {
		edges += len(pkg.Dependencies)
		if len(pkg.Resolves) == 0 {
			roots++
		}
	}
	result := InspectResult{
		Packages: graph.Len(),
		Edges:    edges,
		Roots:    roots,
		MaxDepth: graph.Depth(),
	}
	log.Ctx(ctx).Debug().
		Int("packages", result.Packages).
		Int("edges", result.Edges).
		Int("roots", result.Roots).
		Msg("lock inspected")
	return result, nil
}
