// Package pool implements the bounded worker pool that drains a queue of
// resource conversion jobs.
//
// A Pool is configured once and may be Run many times. Every Run builds its
// own shared state: a FIFO queue of jobs, the resource metadata Table and the
// Progress counters. All three are guarded by a single coarse Locker owned by
// the run; there are no package-level globals.
//
// Each worker executes the same loop:
//
//	Claiming -> Dispatching -> Accounting -> Claiming ... -> Done
//
// Claiming and Accounting happen with the lock held and are O(1). Dispatching
// runs unlocked so conversion I/O proceeds in parallel across workers.
//
// Failure classes:
//   - Fatal: lock construction failure or an invalid job set. Run returns
//     before any worker starts.
//   - Lock integrity: the Locker returns an error, or a critical section
//     panics. The affected worker stops. Depending on LockPolicy the
//     other workers either keep draining the queue or stop at their next claim.
//     A job the worker had claimed but never recorded is listed in Report.Lost.
//   - Per job: the Dispatcher returns an error (or panics). The entry is
//     still written with a failure marker and sibling jobs are unaffected.
package pool
