package core

import "fmt"

// Package is one resolved node of the dependency graph. Identity is
// the (Name, Version) pair: the graph hands out a single shared
// instance per pair, so pointer equality doubles as identity.
type Package struct {
	Name      string
	Version   string
	Resolved  string
	Integrity string

	// SatisfiedVersions collects, in encounter order, every range
	// expression this concrete version was locked for.
	SatisfiedVersions []string

	// Dependencies are the packages this one depends on; Resolves are
	// the packages depending on this one. The two stay symmetric.
	Dependencies []*Package
	Resolves     []*Package

	depth    int
	hasDepth bool
}

// ID returns the canonical name@version identifier.
func (p *Package) ID() string {
	return fmt.Sprintf("%s@%s", p.Name, p.Version)
}

// Depth reports the hop distance from the nearest root in the most
// recent computation. The second return is false until one has run or
// when the traversal never reached this node.
func (p *Package) Depth() (int, bool) {
	return p.depth, p.hasDepth
}

// AddDependency records child as a dependency of p and p as a
// dependant of child. Both relations deduplicate on node identity, so
// repeated calls with the same pair change nothing.
func (p *Package) AddDependency(child *Package) {
	if !containsPackage(p.Dependencies, child) {
		p.Dependencies = append(p.Dependencies, child)
	}
	if !containsPackage(child.Resolves, p) {
		child.Resolves = append(child.Resolves, p)
	}
}

// AddSatisfied appends a range expression to the satisfied set,
// skipping duplicates and preserving encounter order.
func (p *Package) AddSatisfied(rangeExpr string) {
	for _, existing := range p.SatisfiedVersions {
		if existing == rangeExpr {
			return
		}
	}
	p.SatisfiedVersions = append(p.SatisfiedVersions, rangeExpr)
}

func (p *Package) setDepth(depth int) {
	p.depth = depth
	p.hasDepth = true
}

func (p *Package) clearDepth() {
	p.depth = 0
	p.hasDepth = false
}

func containsPackage(list []*Package, target *Package) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
