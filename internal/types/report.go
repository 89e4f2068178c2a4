package types

// PackageRecord is the export form of one graph node. ID is the
// canonical name@version identifier. Depth is nil for nodes the depth
// traversal never reached.
type PackageRecord struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Version           string   `json:"version" yaml:"version"`
	Resolved          string   `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Integrity         string   `json:"integrity,omitempty" yaml:"integrity,omitempty"`
	SatisfiedVersions []string `json:"satisfied_versions,omitempty" yaml:"satisfied_versions,omitempty"`
	Depth             *int     `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// EdgeRecord is one dependency edge between two package IDs.
type EdgeRecord struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// GraphReport is the flattened, serializable view of a resolved package
// graph. Packages appear in creation order and edges in resolution
// order, so the same lock file always renders the same report.
type GraphReport struct {
	GeneratedAt string          `json:"generated_at" yaml:"generated_at"`
	Engine      string          `json:"engine" yaml:"engine"`
	Packages    []PackageRecord `json:"packages" yaml:"packages"`
	Edges       []EdgeRecord    `json:"edges" yaml:"edges"`
}
