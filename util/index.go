package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dendrascience/respak/pool"
	"github.com/dendrascience/respak/version"
)

// IndexFile is the name of the index written next to the packed files.
const IndexFile = "index.json"

// IndexFormat is bumped whenever the index layout changes incompatibly.
const IndexFormat = 1

type Index struct {
	Format     int         `json:"format"`
	Version    string      `json:"respak_version"`
	Codec      string      `json:"codec"`
	RunID      string      `json:"run_id"`
	CreatedAt  time.Time   `json:"created_at"`
	Table      *pool.Table `json:"table"`
	TotalFiles int         `json:"total_files"`
	Failed     int         `json:"failed"`
	Lost       []string    `json:"lost,omitempty"`
}

// NewIndex records the outcome of a pack run.
func NewIndex(codec string, report *pool.Report) Index {
	idx := Index{
		Format:    IndexFormat,
		Version:   version.GetVersion(),
		Codec:     codec,
		RunID:     report.RunID,
		CreatedAt: time.Now().UTC(),
		Table:     report.Table,
		Lost:      report.Lost,
	}
	for e := range report.Table.Iterate {
		idx.TotalFiles++
		if e.Failed {
			idx.Failed++
		}
	}
	return idx
}

// Save writes the index. A directory path gets IndexFile appended.
func (i Index) Save(path string) error {
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(path, IndexFile)
	}
	return WriteJSONFile(path, i)
}

// LoadIndex reads an index from a file or from the directory holding it.
func LoadIndex(path string) (Index, error) {
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(path, IndexFile)
	}
	idx := Index{Table: pool.NewTable()}
	if err := ReadJSONFile(path, &idx); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Index{}, fmt.Errorf("%w: %s", ErrNoIndex, path)
		}
		return Index{}, fmt.Errorf("failed to read index %s: %w", path, err)
	}
	if idx.Format != IndexFormat {
		return Index{}, fmt.Errorf("%w: format %d, want %d", ErrIndexVersion, idx.Format, IndexFormat)
	}
	if idx.Table == nil {
		idx.Table = pool.NewTable()
	}
	for e := range idx.Table.Iterate {
		if e.Key == "" {
			return Index{}, ErrEmptyKey
		}
	}
	return idx, nil
}
