package core

// depthState records whether a depth computation has run on the graph.
// The default-rooted request is computed once and then reused; explicit
// roots always recompute.
type depthState uint8

const (
	depthNotComputed depthState = iota
	depthComputed
)

// CalculateDepth assigns breadth-first hop depths over dependency
// edges. A nil roots slice requests the default computation, rooted at
// every package nothing depends on, and is a no-op when any computation
// has already run. A non-nil slice, even an empty one, discards every
// stored depth and recomputes from exactly the given roots.
func (g *Graph) CalculateDepth(roots []*Package) {
	if roots == nil {
		if g.depthState == depthComputed {
			return
		}
		g.traverse(g.defaultRoots())
		g.depthState = depthComputed
		return
	}
	for _, pkg := range g.packages {
		pkg.clearDepth()
	}
	g.traverse(roots)
	g.depthState = depthComputed
}

// defaultRoots are the packages with no dependants.
func (g *Graph) defaultRoots() []*Package {
	var roots []*Package
	for _, pkg := range g.packages {
		if len(pkg.Resolves) == 0 {
			roots = append(roots, pkg)
		}
	}
	return roots
}

// traverse runs the breadth-first walk. A node is entered only while
// its depth is still unset, which both keeps the first (minimum-hop)
// assignment and terminates on cycles without a separate visited set.
func (g *Graph) traverse(roots []*Package) {
	queue := make([]*Package, 0, len(roots))
	for _, root := range roots {
		if root == nil || root.hasDepth {
			continue
		}
		root.setDepth(0)
		queue = append(queue, root)
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range current.Dependencies {
			if child.hasDepth {
				continue
			}
			child.setDepth(current.depth + 1)
			queue = append(queue, child)
		}
	}
}

// Depth returns the maximum depth present in the graph, running the
// default computation first when none has. An empty graph reports 0.
func (g *Graph) Depth() int {
	g.CalculateDepth(nil)
	max := 0
	for _, pkg := range g.packages {
		if pkg.hasDepth && pkg.depth > max {
			max = pkg.depth
		}
	}
	return max
}

// PackagesByDepth returns, in creation order, the packages whose depth
// d satisfies start <= d < end. A negative end leaves the band
// unbounded above. Runs the default computation when none has.
func (g *Graph) PackagesByDepth(start int, end int) []*Package {
	g.CalculateDepth(nil)
	var packages []*Package
	for _, pkg := range g.packages {
		if !pkg.hasDepth || pkg.depth < start {
			continue
		}
		if end >= 0 && pkg.depth >= end {
			continue
		}
		packages = append(packages, pkg)
	}
	return packages
}
