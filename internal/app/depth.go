package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lockstep/internal/core"
)

// Depth loads the graph, computes hop depths, and groups packages into
// per-depth bands within the requested window. Roots, when given, name
// packages by id and force a recomputation from exactly those nodes.
func (s Service) Depth(ctx context.Context, req DepthRequest) (DepthResult, error) {
	graph, err := s.loadGraph(ctx, req.LockPath, req.Engine)
	if err != nil {
		return DepthResult{}, err
	}
	if req.Roots != nil {
		roots := make([]*core.Package, 0, len(req.Roots))
		for _, id := range req.Roots {
			name, version := splitPackageID(id)
			pkg, ok := graph.Lookup(name, version)
			if !ok {
				return DepthResult{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("unknown root package %q", id))
			}
			roots = append(roots, pkg)
		}
		graph.CalculateDepth(roots)
	}

	from := req.From
	if from < 0 {
		from = 0
	}
	bands := map[int][]string{}
	for _, pkg := range graph.PackagesByDepth(from, req.To) {
		depth, _ := pkg.Depth()
		bands[depth] = append(bands[depth], pkg.ID())
	}

	result := DepthResult{MaxDepth: graph.Depth()}
	depths := make([]int, 0, len(bands))
	for depth := range bands {
		depths = append(depths, depth)
	}
	sort.Ints(depths)
	for _, depth := range depths {
		result.Bands = append(result.Bands, DepthBand{Depth: depth, Packages: bands[depth]})
	}
	return result, nil
}
