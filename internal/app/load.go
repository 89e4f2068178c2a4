package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"lockstep/internal/adapters"
	"lockstep/internal/core"
	"lockstep/internal/ports"
	"lockstep/internal/types"
)

// loadGraph reads the lock file and resolves it into a package graph
// with the requested range engine.
func (s Service) loadGraph(ctx context.Context, path string, engine types.RangeEngine) (*core.Graph, error) {
	lockPath := strings.TrimSpace(path)
	if lockPath == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lock file path is required")
	}
	ranges, err := rangePortFor(ctx, engine)
	if err != nil {
		return nil, err
	}
	data, err := s.Locks.ReadLock(lockPath)
	if err != nil {
		return nil, err
	}
	return core.NewResolver(ranges).Resolve(ctx, data)
}

// rangePortFor selects the engine adapter for one request. The engine
// value is defaulted by every caller, so an empty one is a wiring bug
// rather than bad user input.
func rangePortFor(ctx context.Context, engine types.RangeEngine) (ports.RangePort, error) {
	assert.NotEmpty(ctx, string(engine), "range engine must be set")
	switch engine {
	case types.RangeEngineSemver:
		return adapters.NewSemverRangeAdapter(), nil
	case types.RangeEnginePep440:
		return adapters.NewPep440RangeAdapter(), nil
	case types.RangeEngineDeb:
		return adapters.NewDebRangeAdapter(), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("range engine must be one of semver, pep440, deb")
	}
}

// splitPackageID splits a name@version identifier, honoring scoped
// names.
func splitPackageID(id string) (string, string) {
	return core.SplitNameAndSpec(strings.TrimSpace(id))
}
