package httpadapter

import (
	"context"
	"errors"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// readinessGroup is ready when every member is ready.
type readinessGroup []sharedobs.ReadinessChecker

// AllReady combines checkers. Nil checkers are skipped.
func AllReady(checkers ...sharedobs.ReadinessChecker) sharedobs.ReadinessChecker {
	group := make(readinessGroup, 0, len(checkers))
	for _, c := range checkers {
		if c != nil {
			group = append(group, c)
		}
	}
	return group
}

func (g readinessGroup) CheckReadiness(ctx context.Context) error {
	var errs []error
	for _, c := range g {
		if err := c.CheckReadiness(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
