// SPDX-License-Identifier: MIT

// Package sched describes how worker threads are scheduled by the OS.
//
// A Profile bundles a scheduling class (Policy), a priority and an
// inheritance mode. It is assembled once, in three validated steps
// (policy → priority → inherit), and then handed unchanged to every worker:
//
//	p, err := sched.Realtime() // SCHED_RR at the maximum priority, explicit
//	if err != nil {
//	    var ce *sched.ConfigError
//	    errors.As(err, &ce) // ce.Step names the failing step
//	}
//
// Applying an explicit profile is per OS thread: a worker goroutine calls
// runtime.LockOSThread and then Profile.ApplyToCurrentThread. On Linux this
// issues sched_setattr through golang.org/x/sys/unix; real-time classes need
// CAP_SYS_NICE or a suitable RLIMIT_RTPRIO. Other platforms accept profiles
// as a hint and report ErrUnsupported when asked to apply one.
package sched
