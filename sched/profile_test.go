// SPDX-License-Identifier: MIT
package sched_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cellmul/sched"
	"github.com/stretchr/testify/require"
)

func TestNewProfile_Default(t *testing.T) {
	p, err := sched.NewProfile()
	require.NoError(t, err)
	require.Equal(t, sched.Default(), p)
	require.Equal(t, sched.PolicyOther, p.Policy())
	require.Equal(t, 0, p.Priority())
	require.False(t, p.IsExplicit())
	require.Equal(t, "SCHED_OTHER/0/inherit", p.String())
}

func TestNewProfile_StepErrors(t *testing.T) {
	cases := []struct {
		name  string
		opts  []sched.Option
		step  string
		cause error
	}{
		{"unknown policy", []sched.Option{sched.WithPolicy(sched.Policy(42))}, sched.StepPolicy, sched.ErrInvalidPolicy},
		{"priority above range", []sched.Option{sched.WithPriority(5)}, sched.StepPriority, sched.ErrPriorityRange},
		{"rr priority too high", []sched.Option{sched.WithPolicy(sched.PolicyRR), sched.WithPriority(1000)}, sched.StepPriority, sched.ErrPriorityRange},
		{"unknown inheritance", []sched.Option{sched.WithInheritance(sched.Inheritance(7))}, sched.StepInherit, sched.ErrInvalidInheritance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sched.NewProfile(tc.opts...)
			require.ErrorIs(t, err, sched.ErrAttributeConfiguration)
			require.ErrorIs(t, err, tc.cause)

			var ce *sched.ConfigError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, tc.step, ce.Step)
		})
	}
}

// A bad policy must be reported before a bad priority is looked at.
func TestNewProfile_StepOrder(t *testing.T) {
	_, err := sched.NewProfile(
		sched.WithPolicy(sched.Policy(-3)),
		sched.WithPriority(1000),
		sched.WithInheritance(sched.Inheritance(9)),
	)
	var ce *sched.ConfigError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, sched.StepPolicy, ce.Step)
}

func TestRealtime(t *testing.T) {
	hi, err := sched.MaxPriority(sched.PolicyRR)
	require.NoError(t, err)

	p, err := sched.Realtime()
	require.NoError(t, err)
	require.Equal(t, sched.PolicyRR, p.Policy())
	require.Equal(t, hi, p.Priority())
	require.Equal(t, sched.Explicit, p.Inherit())
	require.True(t, p.IsExplicit())
}

func TestPriorityMax_ResolvesPerPolicy(t *testing.T) {
	for _, pol := range []sched.Policy{sched.PolicyOther, sched.PolicyFIFO, sched.PolicyRR} {
		lo, hi, err := sched.PriorityRange(pol)
		require.NoError(t, err)
		require.LessOrEqual(t, lo, hi)

		p, err := sched.NewProfile(sched.WithPolicy(pol), sched.WithPriority(sched.PriorityMax))
		require.NoError(t, err, pol.String())
		require.Equal(t, hi, p.Priority())
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]sched.Policy{
		"":           sched.PolicyOther,
		"other":      sched.PolicyOther,
		"fifo":       sched.PolicyFIFO,
		"SCHED_FIFO": sched.PolicyFIFO,
		"rr":         sched.PolicyRR,
		"SCHED_RR":   sched.PolicyRR,
	} {
		got, err := sched.ParsePolicy(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := sched.ParsePolicy("deadline")
	require.ErrorIs(t, err, sched.ErrInvalidPolicy)
}

func TestApplyToCurrentThread_InheritIsNoop(t *testing.T) {
	require.NoError(t, sched.Default().ApplyToCurrentThread())
}

func TestStringers(t *testing.T) {
	require.Equal(t, "SCHED_RR", sched.PolicyRR.String())
	require.Equal(t, "Policy(9)", sched.Policy(9).String())
	require.Equal(t, "explicit", sched.Explicit.String())
	require.Equal(t, "Inheritance(4)", sched.Inheritance(4).String())
}
