package pool

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// Locker is the single coarse lock of a pool run.
//
// Lock returns an error, without holding the lock, when the lock cannot be
// acquired. Unlock returns an error when the caller does not hold the lock.
// The pool treats either as a lock integrity failure.
type Locker interface {
	Lock() error
	Unlock() error
}

// LockerFactory builds the lock for one run.
type LockerFactory func() (Locker, error)

// LockPolicy decides what the rest of the pool does after a worker hits a
// lock integrity failure.
type LockPolicy int

const (
	// Drain lets the remaining workers finish the queue.
	Drain LockPolicy = iota
	// Abort stops every worker at its next claim.
	Abort
)

func (p LockPolicy) String() string {
	if p == Abort {
		return "abort"
	}
	return "drain"
}

// ParseLockPolicy parses "drain" or "abort".
func ParseLockPolicy(s string) (LockPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drain":
		return Drain, nil
	case "abort":
		return Abort, nil
	}
	return Drain, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

type mutexLocker struct {
	mu   sync.Mutex
	held atomic.Bool
}

// NewMutexLocker is the default LockerFactory.
func NewMutexLocker() (Locker, error) {
	return &mutexLocker{}, nil
}

func (l *mutexLocker) Lock() error {
	l.mu.Lock()
	l.held.Store(true)
	return nil
}

// Unlock refuses a double release instead of crashing the process the way
// sync.Mutex does.
func (l *mutexLocker) Unlock() error {
	if !l.held.CompareAndSwap(true, false) {
		return ErrLockNotHeld
	}
	l.mu.Unlock()
	return nil
}
