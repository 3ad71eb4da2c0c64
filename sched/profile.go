// SPDX-License-Identifier: MIT
// Package: sched
//
// profile.go: the immutable scheduling Profile and its stepwise construction.
//
// Contract (strict):
//   • NewProfile runs the steps policy → priority → inherit in that order;
//     the first failing step aborts with a *ConfigError and no Profile.
//   • A Profile is a value: once built it is passed unmodified to every spawn.
//   • The zero Profile equals Default(): time-shared, priority 0, inherited.
//
// AI-Hints:
//   • Realtime() is the round-robin-at-max-priority, explicit profile.
//   • Use PriorityMax to resolve "the highest priority the OS allows" at build time.

package sched

import "fmt"

// Policy is a scheduling class.
type Policy int

const (
	// PolicyOther is the default time-shared policy.
	PolicyOther Policy = iota
	// PolicyFIFO is fixed-priority first-in first-out.
	PolicyFIFO
	// PolicyRR is fixed-priority round-robin.
	PolicyRR
)

// String returns the conventional policy name.
func (p Policy) String() string {
	switch p {
	case PolicyOther:
		return "SCHED_OTHER"
	case PolicyFIFO:
		return "SCHED_FIFO"
	case PolicyRR:
		return "SCHED_RR"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "other", "fifo", "rr" (or the SCHED_* names) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "other", "SCHED_OTHER":
		return PolicyOther, nil
	case "fifo", "SCHED_FIFO":
		return PolicyFIFO, nil
	case "rr", "SCHED_RR":
		return PolicyRR, nil
	default:
		return PolicyOther, fmt.Errorf("%q: %w", s, ErrInvalidPolicy)
	}
}

// Inheritance selects whether workers inherit the creator's scheduling.
type Inheritance int

const (
	// InheritFromCreator leaves worker threads with the creator's scheduling.
	InheritFromCreator Inheritance = iota
	// Explicit applies the profile to every worker thread.
	Explicit
)

// String returns "inherit" or "explicit".
func (i Inheritance) String() string {
	switch i {
	case InheritFromCreator:
		return "inherit"
	case Explicit:
		return "explicit"
	default:
		return fmt.Sprintf("Inheritance(%d)", int(i))
	}
}

// PriorityMax asks NewProfile to resolve the maximum priority of the policy.
const PriorityMax = -1

// Profile is an immutable scheduling configuration.
type Profile struct {
	policy   Policy
	priority int
	inherit  Inheritance
}

// Policy returns the scheduling class.
func (p Profile) Policy() Policy { return p.policy }

// Priority returns the resolved priority.
func (p Profile) Priority() int { return p.priority }

// Inherit returns the inheritance mode.
func (p Profile) Inherit() Inheritance { return p.inherit }

// IsExplicit reports whether the profile must be applied to worker threads.
func (p Profile) IsExplicit() bool { return p.inherit == Explicit }

// String renders "SCHED_RR/99/explicit".
func (p Profile) String() string {
	return fmt.Sprintf("%s/%d/%s", p.policy, p.priority, p.inherit)
}

// Default returns the time-shared, inherited profile. It never touches the OS.
func Default() Profile { return Profile{} }

// Option sets one attribute before the steps run.
type Option func(*Profile)

// WithPolicy sets the scheduling class.
func WithPolicy(p Policy) Option {
	return func(pr *Profile) { pr.policy = p }
}

// WithPriority sets the priority; PriorityMax resolves to the policy maximum.
func WithPriority(n int) Option {
	return func(pr *Profile) { pr.priority = n }
}

// WithInheritance sets the inheritance mode.
func WithInheritance(i Inheritance) Option {
	return func(pr *Profile) { pr.inherit = i }
}

// NewProfile applies opts and validates them step by step.
//
// Implementation:
//   - Stage 1 (policy): the class must be known.
//   - Stage 2 (priority): resolve [min, max] for the class from the OS, map
//     PriorityMax to max, reject anything outside the range.
//   - Stage 3 (inherit): the mode must be known.
//
// Errors:
//   - *ConfigError (matches ErrAttributeConfiguration) naming the failing step.
func NewProfile(opts ...Option) (Profile, error) {
	var p Profile
	for _, opt := range opts {
		opt(&p)
	}

	// Stage 1: policy.
	switch p.policy {
	case PolicyOther, PolicyFIFO, PolicyRR:
	default:
		return Profile{}, stepError(StepPolicy, fmt.Errorf("%v: %w", p.policy, ErrInvalidPolicy))
	}

	// Stage 2: priority.
	lo, hi, err := priorityRange(p.policy)
	if err != nil {
		return Profile{}, stepError(StepPriority, err)
	}
	if p.priority == PriorityMax {
		p.priority = hi
	}
	if p.priority < lo || p.priority > hi {
		return Profile{}, stepError(StepPriority,
			fmt.Errorf("%d not in [%d,%d] for %s: %w", p.priority, lo, hi, p.policy, ErrPriorityRange))
	}

	// Stage 3: inherit.
	switch p.inherit {
	case InheritFromCreator, Explicit:
	default:
		return Profile{}, stepError(StepInherit, fmt.Errorf("%v: %w", p.inherit, ErrInvalidInheritance))
	}

	return p, nil
}

// Realtime builds the round-robin profile at the maximum priority the OS
// allows, with explicit (non-inherited) scheduling.
func Realtime() (Profile, error) {
	return NewProfile(WithPolicy(PolicyRR), WithPriority(PriorityMax), WithInheritance(Explicit))
}

// PriorityRange reports the [min, max] priority range of a policy on this platform.
func PriorityRange(p Policy) (lo, hi int, err error) { return priorityRange(p) }

// MaxPriority reports the highest priority the OS allows for p.
func MaxPriority(p Policy) (int, error) {
	_, hi, err := priorityRange(p)

	return hi, err
}

// ApplyToCurrentThread installs the profile on the calling OS thread.
// The caller must hold runtime.LockOSThread for the setting to stay with its
// goroutine. Inherited profiles are a no-op.
//
// Errors:
//   - ErrUnsupported on platforms without scheduling classes.
//   - The OS error (e.g. EPERM without real-time privileges) otherwise.
func (p Profile) ApplyToCurrentThread() error {
	if !p.IsExplicit() {
		return nil
	}
	if err := applyCurrentThread(p); err != nil {
		return fmt.Errorf("sched: apply %s: %w", p, err)
	}

	return nil
}

// CurrentThread reads back the calling thread's policy and priority.
// The returned profile is marked Explicit.
func CurrentThread() (Profile, error) { return currentThread() }

// ThreadID returns the OS thread id of the caller, or -1 where unavailable.
func ThreadID() int { return threadID() }
