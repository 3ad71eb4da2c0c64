// SPDX-License-Identifier: MIT
// Package: sched
//
// errors.go: sentinel errors and the step-tagged ConfigError.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrAttributeConfiguration) and read
//     the failing step through errors.As(err, *ConfigError).
//   • Options only record values; all validation happens in NewProfile.

package sched

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeConfiguration classifies every failure while building a Profile.
	ErrAttributeConfiguration = errors.New("sched: attribute configuration failed")

	// ErrInvalidPolicy indicates an unknown scheduling policy value.
	ErrInvalidPolicy = errors.New("sched: invalid policy")

	// ErrPriorityRange indicates a priority outside the policy's [min, max].
	ErrPriorityRange = errors.New("sched: priority out of range")

	// ErrInvalidInheritance indicates an unknown inheritance mode.
	ErrInvalidInheritance = errors.New("sched: invalid inheritance mode")

	// ErrUnsupported indicates the platform has no OS-level scheduling classes;
	// explicit profiles are then only a hint.
	ErrUnsupported = errors.New("sched: scheduling attributes not supported on this platform")
)

// Configuration step names reported by ConfigError.Step.
const (
	StepPolicy   = "policy"
	StepPriority = "priority"
	StepInherit  = "inherit"
)

// ConfigError reports which configuration step failed and why.
type ConfigError struct {
	Step string // one of the Step* constants
	Err  error  // underlying cause
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("sched: %s step: %v", e.Step, e.Err)
}

// Unwrap exposes the cause to errors.Is/As.
func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes every ConfigError match ErrAttributeConfiguration.
func (e *ConfigError) Is(target error) bool { return target == ErrAttributeConfiguration }

// stepError builds a ConfigError for step with a formatted cause.
func stepError(step string, err error) error {
	return &ConfigError{Step: step, Err: err}
}
