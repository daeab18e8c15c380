package dispatch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dendrascience/respak/pool"
)

// Dispatcher implements pool.Dispatcher for one direction.
type Dispatcher struct {
	pipeline Pipeline
	conv     Converters
}

// New returns a dispatcher running the direction's pipeline over conv.
func New(dir pool.Direction, conv Converters) (*Dispatcher, error) {
	p, err := PipelineFor(dir)
	if err != nil {
		return nil, err
	}
	return WithPipeline(p, conv), nil
}

// WithPipeline returns a dispatcher over a custom pipeline.
func WithPipeline(p Pipeline, conv Converters) *Dispatcher {
	return &Dispatcher{pipeline: p, conv: conv}
}

// Route names the rule job will take. On unpack this is decided on the
// destination path, which Prepare does not change.
func (d *Dispatcher) Route(job pool.Job) string {
	return d.pipeline.Route(job).Name
}

// Dispatch runs every step for job. The first failing step ends the job; the
// result then carries the error and whatever sizes were already known.
func (d *Dispatcher) Dispatch(job pool.Job) pool.Result {
	var res pool.Result
	if err := os.MkdirAll(filepath.Dir(job.Destination), 0o755); err != nil {
		res.Err = fmt.Errorf("create output directory: %w", err)
		return res
	}

	if d.pipeline.Prepare != nil {
		if err := d.pipeline.Prepare(&d.conv, job, &res); err != nil {
			res.Err = fmt.Errorf("%s prepare: %w", d.pipeline.Direction, err)
			return res
		}
	}

	rule := d.pipeline.Route(job)
	if err := rule.Apply(&d.conv, job, &res); err != nil {
		res.Err = fmt.Errorf("%s %s: %w", d.pipeline.Direction, rule.Name, err)
	}
	return res
}
