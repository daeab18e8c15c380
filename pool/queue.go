package pool

// queue is the shared FIFO of pending jobs. It is not safe for concurrent
// use; callers hold the run lock.
type queue struct {
	jobs []Job
	head int
}

func newQueue(jobs []Job) *queue {
	q := &queue{jobs: make([]Job, len(jobs))}
	copy(q.jobs, jobs)
	return q
}

// claim removes and returns the front job. ok is false once the queue is drained.
func (q *queue) claim() (job Job, ok bool) {
	if q.head >= len(q.jobs) {
		return Job{}, false
	}
	job = q.jobs[q.head]
	q.jobs[q.head] = Job{}
	q.head++
	return job, true
}

func (q *queue) len() int {
	return len(q.jobs) - q.head
}
