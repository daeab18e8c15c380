package pool

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/taigrr/colorhash"
)

type (
	// Entry is the per-resource bookkeeping consumed by the pack-file writer.
	Entry struct {
		Key              string `json:"key"`
		Compressed       bool   `json:"compressed"`
		UncompressedSize int64  `json:"uncompressed_size"`
		CompressedSize   int64  `json:"compressed_size"`
		Failed           bool   `json:"failed,omitempty"`
		Error            string `json:"error,omitempty"`
	}
	// Table maps a resource key to its Entry. During a run it is only
	// touched with the run lock held; afterwards it is read-only.
	Table struct {
		entries map[string]Entry
	}
)

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// set stores e. Each key may be written once.
func (t *Table) set(e Entry) error {
	if _, ok := t.entries[e.Key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, e.Key)
	}
	t.entries[e.Key] = e
	return nil
}

func (t *Table) Get(key string) (Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all entries sorted by key.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out
}

func (t *Table) Iterate(yield func(Entry) bool) {
	for _, e := range t.Entries() {
		if !yield(e) {
			return
		}
	}
}

// Digest folds every entry into a single order-independent value, so two
// runs over the same job set can be compared regardless of completion order.
func (t *Table) Digest() uint64 {
	var sum uint64
	for _, e := range t.entries {
		line := fmt.Sprintf("%s|%t|%d|%d|%t", e.Key, e.Compressed, e.UncompressedSize, e.CompressedSize, e.Failed)
		sum += uint64(colorhash.HashString(line))
	}
	return sum
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Entries []Entry `json:"entries"`
	}{
		Entries: t.Entries(),
	})
}

func (t *Table) UnmarshalJSON(data []byte) error {
	var aux struct {
		Entries []Entry `json:"entries"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.entries = make(map[string]Entry, len(aux.Entries))
	for _, e := range aux.Entries {
		if err := t.set(e); err != nil {
			return err
		}
	}
	return nil
}
