// SPDX-License-Identifier: MIT
//go:build linux

package sched

import (
	"golang.org/x/sys/unix"
)

// Kernel policy numbers from <linux/sched.h>.
const (
	linuxSchedOther = 0
	linuxSchedFIFO  = 1
	linuxSchedRR    = 2
)

func kernelPolicy(p Policy) (uint32, bool) {
	switch p {
	case PolicyOther:
		return linuxSchedOther, true
	case PolicyFIFO:
		return linuxSchedFIFO, true
	case PolicyRR:
		return linuxSchedRR, true
	default:
		return 0, false
	}
}

func fromKernelPolicy(v uint32) Policy {
	switch v {
	case linuxSchedFIFO:
		return PolicyFIFO
	case linuxSchedRR:
		return PolicyRR
	default:
		return PolicyOther
	}
}

// priorityRange asks the kernel via sched_get_priority_{min,max}.
func priorityRange(p Policy) (int, int, error) {
	kp, ok := kernelPolicy(p)
	if !ok {
		return 0, 0, ErrInvalidPolicy
	}
	hi, _, errno := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MAX, uintptr(kp), 0, 0)
	if errno != 0 {
		return 0, 0, errno
	}
	lo, _, errno := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MIN, uintptr(kp), 0, 0)
	if errno != 0 {
		return 0, 0, errno
	}

	return int(lo), int(hi), nil
}

// applyCurrentThread calls sched_setattr on tid 0, the calling thread.
func applyCurrentThread(p Profile) error {
	kp, ok := kernelPolicy(p.policy)
	if !ok {
		return ErrInvalidPolicy
	}
	attr := &unix.SchedAttr{
		Policy:   kp,
		Priority: uint32(p.priority),
	}

	return unix.SchedSetAttr(0, attr, 0)
}

func currentThread() (Profile, error) {
	attr, err := unix.SchedGetAttr(0, 0)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		policy:   fromKernelPolicy(attr.Policy),
		priority: int(attr.Priority),
		inherit:  Explicit,
	}, nil
}

func threadID() int { return unix.Gettid() }
