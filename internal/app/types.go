package app

import "lockstep/internal/types"

type ValidateRequest struct {
	LockPath string
}

type ValidateResult struct {
	Entries int
}

type InspectRequest struct {
	LockPath string
	Engine   types.RangeEngine
}

type InspectResult struct {
	Packages int
	Edges    int
	Roots    int
	MaxDepth int
}

type QueryRequest struct {
	LockPath string
	Engine   types.RangeEngine
	Name     string
	Range    string
}

type QueryResult struct {
	Found             bool
	ID                string
	Name              string
	Version           string
	Resolved          string
	Integrity         string
	SatisfiedVersions []string
	Dependencies      []string
	Dependants        []string
	Depth             *int
}

type DepthRequest struct {
	LockPath string
	Engine   types.RangeEngine
	From     int
	To       int
	Roots    []string
}

type DepthBand struct {
	Depth    int
	Packages []string
}

type DepthResult struct {
	MaxDepth int
	Bands    []DepthBand
}

type ExportRequest struct {
	LockPath  string
	Engine    types.RangeEngine
	OutputDir string
	Formats   []types.ExportFormat
}

type ExportResult struct {
	Files []string
}
