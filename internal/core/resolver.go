package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lockstep/internal/ports"
	"lockstep/internal/types"
)

type Resolver struct {
	Ranges ports.RangePort
}

func NewResolver(ranges ports.RangePort) Resolver {
	return Resolver{Ranges: ranges}
}

// Resolve parses lock text and builds the package graph from it. Parse
// failures bubble up unchanged; a dependency no entry satisfies fails
// the whole load and yields no partial graph.
func (r Resolver) Resolve(ctx context.Context, data []byte) (*Graph, error) {
	entries, err := ParseEntries(data)
	if err != nil {
		return nil, err
	}
	return r.ResolveEntries(ctx, entries)
}

// ResolveEntries builds the graph in two passes: every entry becomes or
// reuses a node first, then every dependency reference links to the
// first already-created package satisfying it.
func (r Resolver) ResolveEntries(ctx context.Context, entries []types.LockEntry) (*Graph, error) {
	if r.Ranges == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a range engine")
	}
	graph := NewGraph(r.Ranges)
	nodes := make([]*Package, len(entries))
	for i, entry := range entries {
		node, err := r.addNode(graph, entry)
		if err != nil {
			return nil, err
		}
		nodes[i] = node
	}
	edges := 0
	for i, entry := range entries {
		for _, dep := range entry.Dependencies {
			match, err := r.findMatch(graph, dep)
			if err != nil {
				return nil, err
			}
			nodes[i].AddDependency(match)
			edges++
		}
	}
	log.Ctx(ctx).Debug().
		Int("entries", len(entries)).
		Int("packages", graph.Len()).
		Int("edges", edges).
		Msg("lock resolved")
	return graph, nil
}

// addNode creates or reuses the node for one entry. The first request
// token carries the package name; the spec of every token extends the
// node's satisfied set.
func (r Resolver) addNode(graph *Graph, entry types.LockEntry) (*Package, error) {
	tokens := SplitRequestList(entry.Key)
	name, _ := SplitNameAndSpec(tokens[0])
	if name == "" {
		return nil, entryFailure(fmt.Sprintf("entry %q has no package name", entry.Key))
	}
	if entry.Version == "" {
		return nil, entryFailure(fmt.Sprintf("entry %q has no version", entry.Key))
	}
	node := graph.ensure(name, entry.Version)
	if node.Resolved == "" {
		node.Resolved = entry.Resolved
	}
	if node.Integrity == "" {
		node.Integrity = entry.Integrity
	}
	for _, token := range tokens {
		_, spec := SplitNameAndSpec(token)
		node.AddSatisfied(spec)
	}
	return node, nil
}

func (r Resolver) findMatch(graph *Graph, dep types.DependencySpec) (*Package, error) {
	for _, candidate := range graph.byName[dep.Name] {
		if r.Ranges.Satisfies(candidate.Version, dep.Range) {
			return candidate, nil
		}
	}
	return nil, types.Failure{
		Code: types.FailureNoMatch,
		Err: errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no matching package for %s@%s", dep.Name, dep.Range)),
	}
}
