package core

import "lockstep/internal/ports"

type pairKey struct {
	name    string
	version string
}

// Graph owns every Package resolved out of one lock file and answers
// the lookup queries over them. Nodes are only created through ensure,
// which keeps the (name, version) identity table authoritative.
type Graph struct {
	ranges   ports.RangePort
	packages []*Package
	index    map[pairKey]*Package
	byName   map[string][]*Package

	depthState depthState
}

// NewGraph creates an empty graph that answers range queries through
// the given engine.
func NewGraph(ranges ports.RangePort) *Graph {
	return &Graph{
		ranges: ranges,
		index:  map[pairKey]*Package{},
		byName: map[string][]*Package{},
	}
}

// ensure returns the node for (name, version), creating it on first
// sight. The same pair always yields the same instance.
func (g *Graph) ensure(name string, version string) *Package {
	key := pairKey{name: name, version: version}
	if existing, ok := g.index[key]; ok {
		return existing
	}
	pkg := &Package{Name: name, Version: version}
	g.index[key] = pkg
	g.packages = append(g.packages, pkg)
	g.byName[name] = append(g.byName[name], pkg)
	return pkg
}

// Lookup returns the package with the exact (name, version) pair.
func (g *Graph) Lookup(name string, version string) (*Package, bool) {
	pkg, ok := g.index[pairKey{name: name, version: version}]
	return pkg, ok
}

// Find returns the first package named name, in file-encounter order,
// whose version satisfies rangeExpr. An empty range matches the first
// package of that name regardless of the engine.
func (g *Graph) Find(name string, rangeExpr string) (*Package, bool) {
	for _, pkg := range g.byName[name] {
		if rangeExpr == "" || g.ranges.Satisfies(pkg.Version, rangeExpr) {
			return pkg, true
		}
	}
	return nil, false
}

// HasPackage reports whether any package named name satisfies
// rangeExpr.
func (g *Graph) HasPackage(name string, rangeExpr string) bool {
	_, ok := g.Find(name, rangeExpr)
	return ok
}

// Packages returns every package in creation order. The slice is a
// copy; the nodes are shared.
func (g *Graph) Packages() []*Package {
	packages := make([]*Package, len(g.packages))
	copy(packages, g.packages)
	return packages
}

// PackagesByName returns the packages sharing name in encounter order.
func (g *Graph) PackagesByName(name string) []*Package {
	matches := g.byName[name]
	packages := make([]*Package, len(matches))
	copy(packages, matches)
	return packages
}

func (g *Graph) Len() int {
	return len(g.packages)
}
