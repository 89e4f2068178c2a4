package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lockstep/internal/core"
)

// Validate parses the lock file without building a graph, so it reports
// grammar and entry-shape failures but never resolution ones.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	lockPath := strings.TrimSpace(req.LockPath)
	if lockPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lock file path is required")
	}
	data, err := s.Locks.ReadLock(lockPath)
	if err != nil {
		return ValidateResult{}, err
	}
	entries, err := core.ParseEntries(data)
	if err != nil {
		return ValidateResult{}, err
	}
	log.Ctx(ctx).Debug().Str("lock", lockPath).Int("entries", len(entries)).Msg("lock validated")
	return ValidateResult{Entries: len(entries)}, nil
}
