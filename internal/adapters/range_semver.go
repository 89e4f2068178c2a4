package adapters

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"lockstep/internal/ports"
)

// SemverRangeAdapter answers range queries with npm-style semver
// semantics. Parsed constraints and versions are cached per adapter, so
// one instance should live for the duration of a resolve.
type SemverRangeAdapter struct {
	constraints map[string]*semver.Constraints
	versions    map[string]*semver.Version
}

func NewSemverRangeAdapter() SemverRangeAdapter {
	return SemverRangeAdapter{
		constraints: map[string]*semver.Constraints{},
		versions:    map[string]*semver.Version{},
	}
}

// Satisfies reports whether version matches rangeExpr. An identical
// string always matches, which covers exact pins and opaque specs such
// as file: or URL references. An empty range matches everything; input
// the engine cannot parse matches nothing.
func (a SemverRangeAdapter) Satisfies(version string, rangeExpr string) bool {
	version = strings.TrimSpace(version)
	rangeExpr = strings.TrimSpace(rangeExpr)
	if version == rangeExpr {
		return true
	}
	if rangeExpr == "" {
		return true
	}
	constraint, err := a.constraint(rangeExpr)
	if err != nil {
		return false
	}
	parsed, err := a.version(version)
	if err != nil {
		return false
	}
	return constraint.Check(parsed)
}

func (a SemverRangeAdapter) constraint(rangeExpr string) (*semver.Constraints, error) {
	if cached, ok := a.constraints[rangeExpr]; ok {
		return cached, nil
	}
	parsed, err := semver.NewConstraint(rangeExpr)
	if err != nil {
		return nil, err
	}
	a.constraints[rangeExpr] = parsed
	return parsed, nil
}

func (a SemverRangeAdapter) version(version string) (*semver.Version, error) {
	if cached, ok := a.versions[version]; ok {
		return cached, nil
	}
	parsed, err := semver.NewVersion(version)
	if err != nil {
		return nil, err
	}
	a.versions[version] = parsed
	return parsed, nil
}

var _ ports.RangePort = SemverRangeAdapter{}
