package pool

// Direction selects which pipeline family a pool run executes.
type Direction int

const (
	// Pack converts editable assets into their compact on-disk form.
	Pack Direction = iota
	// Unpack restores the on-disk form back into editable assets.
	Unpack
)

func (d Direction) String() string {
	if d == Unpack {
		return "unpack"
	}
	return "pack"
}

// Verb is the word shown in progress output for this direction.
func (d Direction) Verb() string {
	if d == Unpack {
		return "Decompressing"
	}
	return "Compressing"
}

// Job is a single conversion unit. It is immutable once handed to a pool.
type Job struct {
	Key         string `json:"key,omitempty"` // identity shared with the packer, defaults to Source
	Source      string `json:"source"`        // input artifact for this direction
	Destination string `json:"destination"`   // where the converted artifact is written
	Compressed  bool   `json:"compressed"`    // unpack only: run the generic decompressor first
}

// ID returns the key the job's metadata entry is stored under.
func (j Job) ID() string {
	if j.Key != "" {
		return j.Key
	}
	return j.Source
}
