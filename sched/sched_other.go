// SPDX-License-Identifier: MIT
//go:build !linux

package sched

// Without kernel scheduling classes the ranges are nominal, so profiles still
// validate, and applying an explicit one reports ErrUnsupported.
func priorityRange(p Policy) (int, int, error) {
	switch p {
	case PolicyOther:
		return 0, 0, nil
	case PolicyFIFO, PolicyRR:
		return 1, 99, nil
	default:
		return 0, 0, ErrInvalidPolicy
	}
}

func applyCurrentThread(Profile) error { return ErrUnsupported }

func currentThread() (Profile, error) { return Profile{}, ErrUnsupported }

func threadID() int { return -1 }
