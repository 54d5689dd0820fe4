// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package base

import (
	"context"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/retry"

	"github.com/meridianml/meridian-go/pkg/resources"
)

const (
	// DefaultWaitInterval is the pause between readiness checks.
	DefaultWaitInterval = 3 * time.Second
	// DefaultWaitAttempts caps how many readiness checks one wait issues.
	DefaultWaitAttempts = 10
)

// WaitPolicy configures the fixed-interval wait on an upstream resource
// before a dependent creation is submitted. The wait is best effort: an
// exhausted attempt budget or a failing readiness check does not abort
// the creation, it only ends the wait. A non-positive Interval disables
// waiting entirely.
type WaitPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultWaitPolicy returns the policy used when the caller supplies none.
func DefaultWaitPolicy() WaitPolicy {
	return WaitPolicy{
		Interval:    DefaultWaitInterval,
		MaxAttempts: DefaultWaitAttempts,
	}
}

// errNotReady drives another retry attempt; anything else stops the wait.
var errNotReady = errors.ConstError("resource not ready")

// Wait polls the readiness of id under the given policy, checking once
// per attempt and sleeping Interval between attempts. It returns an error
// only when the context is cancelled; readiness failures and budget
// exhaustion are logged and swallowed so the caller proceeds and lets the
// service deliver the real verdict.
func Wait(ctx context.Context, clk clock.Clock, policy WaitPolicy, deps ReadinessChecker, id resources.ID) error {
	if policy.Interval <= 0 || policy.MaxAttempts <= 0 || deps == nil {
		return nil
	}
	if clk == nil {
		clk = clock.WallClock
	}

	err := retry.Call(retry.CallArgs{
		Func: func() error {
			ready, err := deps.IsReady(ctx, id)
			if err != nil {
				return errors.Trace(err)
			}
			if !ready {
				return errNotReady
			}
			return nil
		},
		IsFatalError: func(err error) bool {
			// Only "not ready" earns another attempt.
			return !errors.Is(err, errNotReady)
		},
		Attempts: policy.MaxAttempts,
		Delay:    policy.Interval,
		Clock:    clk,
		Stop:     ctx.Done(),
	})

	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return errors.Trace(ctx.Err())
	case retry.IsAttemptsExceeded(err):
		logger.Debugf("%s not ready after %d checks, proceeding", id, policy.MaxAttempts)
		return nil
	default:
		logger.Warningf("readiness check for %s failed, proceeding: %v", id, err)
		return nil
	}
}
