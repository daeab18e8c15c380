package dispatch

import (
	"fmt"
	"strings"

	"github.com/dendrascience/respak/convert"
	"github.com/dendrascience/respak/pool"
)

// Target names the job path a pipeline's predicates are applied to.
type Target int

const (
	MatchSource Target = iota
	MatchDestination
)

func (t Target) path(job pool.Job) string {
	if t == MatchDestination {
		return job.Destination
	}
	return job.Source
}

func (t Target) String() string {
	if t == MatchDestination {
		return "destination"
	}
	return "source"
}

// Step runs one conversion, filling in res.
type Step func(c *Converters, job pool.Job, res *pool.Result) error

type Rule struct {
	Name  string
	Match func(path string) bool
	Apply Step
}

type Pipeline struct {
	Direction pool.Direction
	Target    Target
	Prepare   Step // runs before matching, may be nil
	Rules     []Rule
	Fallback  Rule
}

// Route returns the rule a job takes.
func (p Pipeline) Route(job pool.Job) Rule {
	path := p.Target.path(job)
	for _, r := range p.Rules {
		if r.Match(path) {
			return r
		}
	}
	return p.Fallback
}

func containsAny(subs ...string) func(string) bool {
	return func(path string) bool {
		for _, s := range subs {
			if strings.Contains(path, s) {
				return true
			}
		}
		return false
	}
}

var (
	isAudio = containsAny(".flac", ".FLAC")
	isImage = containsAny(".png", ".PNG", "coloritemicon", "colorbgicon", "greybgicon")
)

// manifestRule builds the rule for one manifest kind.
func manifestRule(kind convert.ManifestKind, apply func(kind convert.ManifestKind) Step) Rule {
	return Rule{
		Name:  "manifest:" + strings.TrimSuffix(kind.Name, ".dat"),
		Match: containsAny(kind.Name),
		Apply: apply(kind),
	}
}

// PackPipeline matches on the source path.
func PackPipeline() Pipeline {
	return Pipeline{
		Direction: pool.Pack,
		Target:    MatchSource,
		Rules: []Rule{
			{Name: "audio", Match: isAudio, Apply: packAudio},
			{Name: "image", Match: isImage, Apply: packImage},
			manifestRule(convert.WordPackDict, packManifest(false)),
			manifestRule(convert.SoundManifest, packManifest(false)),
			manifestRule(convert.ItemManifest, packManifest(true)),
		},
		Fallback: Rule{Name: "generic", Apply: packGeneric},
	}
}

// UnpackPipeline matches on the destination path, after Prepare has put the
// decompressed payload there.
func UnpackPipeline() Pipeline {
	return Pipeline{
		Direction: pool.Unpack,
		Target:    MatchDestination,
		Prepare:   unpackPayload,
		Rules: []Rule{
			{Name: "image", Match: isImage, Apply: unpackImage},
			manifestRule(convert.WordPackDict, unpackManifest(false)),
			manifestRule(convert.SoundManifest, unpackManifest(false)),
			manifestRule(convert.ItemManifest, unpackManifest(false)),
			manifestRule(convert.ResIDMap, unpackManifest(true)),
			{Name: "audio", Match: isAudio, Apply: unpackAudio},
		},
		Fallback: Rule{Name: "generic", Apply: func(*Converters, pool.Job, *pool.Result) error { return nil }},
	}
}

// PipelineFor returns the pipeline of a direction.
func PipelineFor(dir pool.Direction) (Pipeline, error) {
	switch dir {
	case pool.Pack:
		return PackPipeline(), nil
	case pool.Unpack:
		return UnpackPipeline(), nil
	}
	return Pipeline{}, fmt.Errorf("%w: %d", ErrUnknownDirection, dir)
}
