// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package base

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/juju/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianml/meridian-go/pkg/resources"
)

// fastPolicy keeps wait tests quick while preserving attempt counting.
func fastPolicy(attempts int) WaitPolicy {
	return WaitPolicy{Interval: time.Millisecond, MaxAttempts: attempts}
}

// fakeChecker reports ready once checks reach readyAt (0 means never).
type fakeChecker struct {
	mu      sync.Mutex
	checks  int
	readyAt int
	err     error
}

func (f *fakeChecker) IsReady(ctx context.Context, ref resources.Ref) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks++
	if f.err != nil {
		return false, f.err
	}
	return f.readyAt > 0 && f.checks >= f.readyAt, nil
}

func (f *fakeChecker) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checks
}

var clusterID = resources.ID{Kind: resources.KindCluster, Name: "aaaaaaaaaaaaaaaaaaaaaaaa"}

func TestWaitZeroIntervalSkipsChecks(t *testing.T) {
	checker := &fakeChecker{readyAt: 1}

	err := Wait(context.Background(), clock.WallClock, WaitPolicy{Interval: 0, MaxAttempts: 10}, checker, clusterID)
	require.NoError(t, err)
	assert.Equal(t, 0, checker.count())
}

func TestWaitZeroAttemptsSkipsChecks(t *testing.T) {
	checker := &fakeChecker{readyAt: 1}

	err := Wait(context.Background(), clock.WallClock, WaitPolicy{Interval: time.Millisecond, MaxAttempts: 0}, checker, clusterID)
	require.NoError(t, err)
	assert.Equal(t, 0, checker.count())
}

func TestWaitStopsWhenReady(t *testing.T) {
	checker := &fakeChecker{readyAt: 3}

	err := Wait(context.Background(), clock.WallClock, fastPolicy(10), checker, clusterID)
	require.NoError(t, err)
	assert.Equal(t, 3, checker.count())
}

func TestWaitExhaustsBudgetWithoutFailing(t *testing.T) {
	checker := &fakeChecker{} // never ready

	err := Wait(context.Background(), clock.WallClock, fastPolicy(4), checker, clusterID)
	require.NoError(t, err)
	// the full retry budget is spent, then the caller proceeds anyway
	assert.Equal(t, 4, checker.count())
}

func TestWaitSwallowsCheckErrors(t *testing.T) {
	checker := &fakeChecker{err: fmt.Errorf("transient failure")}

	err := Wait(context.Background(), clock.WallClock, fastPolicy(10), checker, clusterID)
	require.NoError(t, err)
	// a failing check ends the wait early rather than burning the budget
	assert.Equal(t, 1, checker.count())
}

func TestWaitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := &fakeChecker{}
	err := Wait(ctx, clock.WallClock, fastPolicy(10), checker, clusterID)
	require.Error(t, err)
}

func TestWaitNilCheckerSkips(t *testing.T) {
	err := Wait(context.Background(), clock.WallClock, fastPolicy(10), nil, clusterID)
	require.NoError(t, err)
}
