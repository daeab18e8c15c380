package pool

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Result is what a Dispatcher reports for one job.
type Result struct {
	Compressed       bool
	UncompressedSize int64
	CompressedSize   int64
	Err              error
}

// Dispatcher converts one job. It is called concurrently from every worker
// with disjoint jobs.
type Dispatcher interface {
	Dispatch(job Job) Result
}

// DispatchFunc adapts a function to the Dispatcher interface.
type DispatchFunc func(job Job) Result

func (f DispatchFunc) Dispatch(job Job) Result {
	return f(job)
}

// Config holds the pool settings. The zero value is usable: one worker per
// processor, line progress discarded, drain on lock failure.
type Config struct {
	Threads       int        // 0 means runtime.NumCPU()
	Direction     Direction  // selects the progress verb
	Progress      Mode       // overwrite or line per job
	Output        io.Writer  // progress display, nil discards it
	OnLockFailure LockPolicy // what other workers do after a lock failure
	NewLocker     LockerFactory
	Logger        *log.Logger
}

// Pool runs jobs through a Dispatcher with a fixed number of workers.
type Pool struct {
	cfg        Config
	dispatcher Dispatcher
	logger     *log.Logger
}

// New returns a pool. cfg is copied.
func New(cfg Config, d Dispatcher) *Pool {
	if cfg.NewLocker == nil {
		cfg.NewLocker = NewMutexLocker
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Pool{cfg: cfg, dispatcher: d, logger: logger}
}

// Threads is the number of workers a run will start.
func (p *Pool) Threads() int {
	if p.cfg.Threads > 0 {
		return p.cfg.Threads
	}
	return runtime.NumCPU()
}

// Report summarizes a finished run.
type Report struct {
	RunID         string
	Direction     Direction
	Threads       int
	Total         int
	Claimed       int
	Unclaimed     int
	WorkersExited int
	Table         *Table
	Failures      []*JobError
	LockFailures  []error
	Lost          []string // claimed but never recorded in Table
	Elapsed       time.Duration
}

// run is the shared context handed to every worker of one Run call.
type run struct {
	id         string
	policy     LockPolicy
	dispatcher Dispatcher
	logger     *log.Logger

	lock     Locker
	queue    *queue
	table    *Table
	progress *Progress
	failures []*JobError

	cancelled atomic.Bool
	exited    atomic.Int32
	lockErrs  []error  // one slot per worker, written only by its owner
	inflight  []string // key each worker held when it stopped on a lock failure
}

// Run processes jobs and blocks until every worker has exited. The returned
// report is valid whenever it is non-nil; err is non-nil for fatal setup
// errors (report is nil) and for lock integrity failures (report is set).
// Per-job conversion failures do not produce an error; they are listed in
// Report.Failures and marked in the table.
func (p *Pool) Run(jobs []Job) (*Report, error) {
	if err := validateJobs(jobs); err != nil {
		return nil, err
	}
	lock, err := p.cfg.NewLocker()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLockCreate, err)
	}
	if lock == nil {
		return nil, ErrLockCreate
	}

	threads := p.Threads()
	r := &run{
		id:         uuid.NewString(),
		policy:     p.cfg.OnLockFailure,
		dispatcher: p.dispatcher,
		logger:     p.logger,
		lock:       lock,
		queue:      newQueue(jobs),
		table:      NewTable(),
		progress:   newProgress(len(jobs), p.cfg.Progress, p.cfg.Direction.Verb(), p.cfg.Output),
		lockErrs:   make([]error, threads),
		inflight:   make([]string, threads),
	}

	start := time.Now()
	var g errgroup.Group
	for id := range threads {
		g.Go(func() error {
			return r.work(id)
		})
	}
	waitErr := g.Wait()
	r.progress.finish()

	report := &Report{
		RunID:         r.id,
		Direction:     p.cfg.Direction,
		Threads:       threads,
		Total:         len(jobs),
		Claimed:       r.progress.Current(),
		Unclaimed:     r.queue.len(),
		WorkersExited: int(r.exited.Load()),
		Table:         r.table,
		Failures:      r.failures,
		Elapsed:       time.Since(start),
	}
	for _, e := range r.lockErrs {
		if e != nil {
			report.LockFailures = append(report.LockFailures, e)
		}
	}
	report.Lost = r.lost()
	for _, key := range report.Lost {
		r.logger.Printf("[respak] run %s: %s was claimed but never recorded", r.id, key)
	}
	if waitErr != nil {
		return report, errors.Join(report.LockFailures...)
	}
	return report, nil
}

func validateJobs(jobs []Job) error {
	seen := make(map[string]struct{}, len(jobs))
	for i, j := range jobs {
		if j.Source == "" || j.Destination == "" {
			return fmt.Errorf("%w: job %d", ErrEmptyPath, i)
		}
		if _, ok := seen[j.ID()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, j.ID())
		}
		seen[j.ID()] = struct{}{}
	}
	return nil
}

// work is the claim/dispatch/account loop of one worker.
func (r *run) work(id int) error {
	defer r.exited.Add(1)
	for {
		job, ok, err := r.claim()
		if err != nil {
			if ok {
				r.inflight[id] = job.ID()
			}
			return r.lockFailure(id, err)
		}
		if !ok {
			return nil
		}

		res := r.dispatch(job)
		if res.Err != nil {
			r.logger.Printf("[respak] %s: %v", job.ID(), res.Err)
		}

		if err := r.account(job, res); err != nil {
			if errors.Is(err, ErrLockIntegrity) {
				r.inflight[id] = job.ID()
				return r.lockFailure(id, err)
			}
			r.logger.Printf("[respak] accounting %s: %v", job.ID(), err)
		}
	}
}

func (r *run) lockFailure(id int, err error) error {
	err = fmt.Errorf("worker %d: %w", id, err)
	if r.policy == Abort {
		r.cancelled.Store(true)
	}
	r.lockErrs[id] = err
	r.logger.Printf("[respak] run %s: %v", r.id, err)
	return err
}

// lost returns the in-flight keys that never reached the table. Only call it
// after every worker has exited.
func (r *run) lost() []string {
	var keys []string
	for _, key := range r.inflight {
		if key == "" {
			continue
		}
		if _, ok := r.table.Get(key); !ok {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// claim pops the next job and advances progress.
func (r *run) claim() (job Job, ok bool, err error) {
	if r.cancelled.Load() {
		return Job{}, false, nil
	}
	err = r.critical(func() error {
		if r.cancelled.Load() {
			return nil
		}
		job, ok = r.queue.claim()
		if ok {
			r.progress.advance(job)
		}
		return nil
	})
	return job, ok, err
}

// dispatch runs unlocked. A panicking converter becomes a job failure.
func (r *run) dispatch(job Job) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = Result{Err: fmt.Errorf("%w: %v", ErrConverterPanic, p)}
		}
	}()
	return r.dispatcher.Dispatch(job)
}

func (r *run) account(job Job, res Result) error {
	entry := Entry{
		Key:              job.ID(),
		Compressed:       res.Compressed,
		UncompressedSize: res.UncompressedSize,
		CompressedSize:   res.CompressedSize,
	}
	if res.Err != nil {
		entry.Failed = true
		entry.Error = res.Err.Error()
	}
	return r.critical(func() error {
		if res.Err != nil {
			r.failures = append(r.failures, &JobError{Key: job.ID(), Err: res.Err})
		}
		return r.table.set(entry)
	})
}

// critical runs fn with the run lock held. Lock errors and panics inside fn
// are reported as ErrLockIntegrity; fn's own error is returned unchanged.
func (r *run) critical(fn func() error) (err error) {
	if lerr := r.lock.Lock(); lerr != nil {
		return fmt.Errorf("%w: %w", ErrLockIntegrity, lerr)
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: panic while holding lock: %v", ErrLockIntegrity, p)
		}
		if uerr := r.lock.Unlock(); uerr != nil && !errors.Is(err, ErrLockIntegrity) {
			err = fmt.Errorf("%w: %w", ErrLockIntegrity, uerr)
		}
	}()
	return fn()
}
