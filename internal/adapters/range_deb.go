package adapters

import (
	"strings"

	debversion "github.com/knqyf263/go-deb-version"

	"lockstep/internal/ports"
)

// debOps is the ordered list of comparison operators tried when parsing
// a range. Longer tokens must precede shorter ones to avoid false
// matches (e.g. ">=" before ">").
var debOps = []string{">=", "<=", ">", "<", "="}

// DebRangeAdapter answers range queries with Debian version semantics.
// A range is a single "<op> <version>" comparison; anything else only
// matches its identical string.
type DebRangeAdapter struct {
	versions map[string]debversion.Version
}

func NewDebRangeAdapter() DebRangeAdapter {
	return DebRangeAdapter{versions: map[string]debversion.Version{}}
}

func (a DebRangeAdapter) Satisfies(version string, rangeExpr string) bool {
	version = strings.TrimSpace(version)
	rangeExpr = strings.TrimSpace(rangeExpr)
	if version == rangeExpr {
		return true
	}
	if rangeExpr == "" {
		return true
	}
	op, target := splitDebRange(rangeExpr)
	if op == "" {
		return false
	}
	candidate, err := a.version(version)
	if err != nil {
		return false
	}
	bound, err := a.version(target)
	if err != nil {
		return false
	}
	switch op {
	case ">=":
		return candidate.GreaterThan(bound) || candidate.Equal(bound)
	case "<=":
		return candidate.LessThan(bound) || candidate.Equal(bound)
	case ">":
		return candidate.GreaterThan(bound)
	case "<":
		return candidate.LessThan(bound)
	default:
		return candidate.Equal(bound)
	}
}

func splitDebRange(rangeExpr string) (string, string) {
	for _, op := range debOps {
		if strings.HasPrefix(rangeExpr, op) {
			return op, strings.TrimSpace(rangeExpr[len(op):])
		}
	}
	return "", ""
}

func (a DebRangeAdapter) version(version string) (debversion.Version, error) {
	if cached, ok := a.versions[version]; ok {
		return cached, nil
	}
	parsed, err := debversion.NewVersion(version)
	if err != nil {
		return debversion.Version{}, err
	}
	a.versions[version] = parsed
	return parsed, nil
}

var _ ports.RangePort = DebRangeAdapter{}
