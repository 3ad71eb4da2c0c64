// SPDX-License-Identifier: MIT
//go:build linux

package sched_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/cellmul/sched"
	"github.com/stretchr/testify/require"
)

func TestPriorityRange_Linux(t *testing.T) {
	lo, hi, err := sched.PriorityRange(sched.PolicyOther)
	require.NoError(t, err)
	require.Equal(t, 0, lo)
	require.Equal(t, 0, hi)

	lo, hi, err = sched.PriorityRange(sched.PolicyRR)
	require.NoError(t, err)
	require.Equal(t, 1, lo)
	require.Equal(t, 99, hi)
}

// SCHED_OTHER at priority 0 needs no privileges, so it round-trips anywhere
// the syscall itself is permitted.
func TestApplyToCurrentThread_OtherRoundTrip(t *testing.T) {
	p, err := sched.NewProfile(sched.WithInheritance(sched.Explicit))
	require.NoError(t, err)

	var (
		applyErr, readErr error
		got               sched.Profile
		tid               int
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if applyErr = p.ApplyToCurrentThread(); applyErr != nil {
			return
		}
		got, readErr = sched.CurrentThread()
		tid = sched.ThreadID()
	}()
	<-done

	if applyErr != nil {
		t.Skipf("sched_setattr unavailable: %v", applyErr)
	}
	require.NoError(t, readErr)
	require.Equal(t, sched.PolicyOther, got.Policy())
	require.Equal(t, 0, got.Priority())
	require.Positive(t, tid)
}
