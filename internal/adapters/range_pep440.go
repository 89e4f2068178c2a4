package adapters

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"

	"lockstep/internal/ports"
)

// Pep440RangeAdapter answers range queries with PEP 440 specifier
// semantics, for lock files tracking Python distributions.
type Pep440RangeAdapter struct {
	specs    map[string]pep440.Specifiers
	versions map[string]pep440.Version
}

func NewPep440RangeAdapter() Pep440RangeAdapter {
	return Pep440RangeAdapter{
		specs:    map[string]pep440.Specifiers{},
		versions: map[string]pep440.Version{},
	}
}

func (a Pep440RangeAdapter) Satisfies(version string, rangeExpr string) bool {
	version = strings.TrimSpace(version)
	rangeExpr = strings.TrimSpace(rangeExpr)
	if version == rangeExpr {
		return true
	}
	if rangeExpr == "" {
		return true
	}
	specs, err := a.spec(rangeExpr)
	if err != nil {
		return false
	}
	parsed, err := a.version(version)
	if err != nil {
		return false
	}
	return specs.Check(parsed)
}

func (a Pep440RangeAdapter) spec(rangeExpr string) (pep440.Specifiers, error) {
	if cached, ok := a.specs[rangeExpr]; ok {
		return cached, nil
	}
	parsed, err := pep440.NewSpecifiers(rangeExpr)
	if err != nil {
		return pep440.Specifiers{}, err
	}
	a.specs[rangeExpr] = parsed
	return parsed, nil
}

func (a Pep440RangeAdapter) version(version string) (pep440.Version, error) {
	if cached, ok := a.versions[version]; ok {
		return cached, nil
	}
	parsed, err := pep440.Parse(version)
	if err != nil {
		return pep440.Version{}, err
	}
	a.versions[version] = parsed
	return parsed, nil
}

var _ ports.RangePort = Pep440RangeAdapter{}
