package commands

import (
	"errors"
	"fmt"
	"time"

	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var ErrExpireHandoffsCommandIsNotConstructed = errors.New(
	"ExpireHandoffsCommand must be created via NewExpireHandoffsCommand constructor",
)

// ExpireHandoffsCommand abandons opened locker units that were never
// confirmed closed within ttl.
type ExpireHandoffsCommand struct {
	now time.Time
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewExpireHandoffsCommand(now time.Time, ttl time.Duration) (ExpireHandoffsCommand, error) {
	if ttl <= 0 {
		return ExpireHandoffsCommand{}, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl))
	}
	return ExpireHandoffsCommand{now: now, ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireHandoffsCommand) Validate() error {
	return c.guard.Validate(ErrExpireHandoffsCommandIsNotConstructed)
}

func (c ExpireHandoffsCommand) Now() time.Time     { return c.now }
func (c ExpireHandoffsCommand) TTL() time.Duration { return c.ttl }
