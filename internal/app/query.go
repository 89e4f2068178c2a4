package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Query looks one package up by name and optional range. A miss is not
// an error: the result reports Found false so callers can distinguish
// absence from failure.
func (s Service) Query(ctx context.Context, req QueryRequest) (QueryResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return QueryResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	graph, err := s.loadGraph(ctx, req.LockPath, req.Engine)
	if err != nil {
		return QueryResult{}, err
	}
	pkg, ok := graph.Find(name, strings.TrimSpace(req.Range))
	if !ok {
		return QueryResult{}, nil
	}
	graph.CalculateDepth(nil)

	result := QueryResult{
		Found:             true,
		ID:                pkg.ID(),
		Name:              pkg.Name,
		Version:           pkg.Version,
		Resolved:          pkg.Resolved,
		Integrity:         pkg.Integrity,
		SatisfiedVersions: append([]string(nil), pkg.SatisfiedVersions...),
	}
	for _, dep := range pkg.Dependencies {
		result.Dependencies = append(result.Dependencies, dep.ID())
	}
	for _, dependant := range pkg.Resolves {
		result.Dependants = append(result.Dependants, dependant.ID())
	}
	if depth, hasDepth := pkg.Depth(); hasDepth {
		result.Depth = &depth
	}
	return result, nil
}
