package app

import (
	"time"

	"lockstep/internal/adapters"
	"lockstep/internal/ports"
)

type Service struct {
	Locks ports.LockSourcePort
	Clock func() time.Time
}

func NewService() Service {
	return Service{
		Locks: adapters.NewLockFileAdapter(),
		Clock: time.Now,
	}
}
