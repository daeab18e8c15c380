package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/respak/convert"
	"github.com/dendrascience/respak/pool"
)

// ResourceName maps a file found in an asset tree to the resource it packs
// into. ok is false for files the packer never reads directly.
func ResourceName(name string) (resource string, ok bool) {
	switch {
	case strings.HasSuffix(name, convert.TempSuffix):
		return "", false
	case strings.HasSuffix(name, ".flac"+convert.AudioSuffix), strings.HasSuffix(name, ".FLAC"+convert.AudioSuffix):
		return strings.TrimSuffix(name, convert.AudioSuffix), true
	case strings.HasSuffix(name, convert.XMLSuffix):
		base := strings.TrimSuffix(name, convert.XMLSuffix)
		for _, kind := range convert.ManifestKinds {
			if filepath.Base(base) != kind.Name {
				continue
			}
			// A read-only kind's XML is regenerated from its binary on unpack.
			if kind.ReadOnly {
				return "", false
			}
			return base, true
		}
	}
	return name, true
}

// ScanPack walks in and returns one pack job per resource, with destinations
// mirrored under out. Keys are slash separated paths relative to in. Symlinks
// are skipped; a resource reachable through both its plain file and its
// companion is packed once.
func ScanPack(in, out string) ([]pool.Job, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrExpectedDirectory, in)
	}

	var jobs []pool.Job
	seen := make(map[string]struct{})
	err = filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			fmt.Printf("skipping unsupported symlink %s\n", path)
			return nil
		}

		rel, err := filepath.Rel(in, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		resource, ok := ResourceName(rel)
		if !ok {
			return nil
		}
		key := filepath.ToSlash(resource)
		if _, dup := seen[key]; dup {
			return nil
		}
		seen[key] = struct{}{}

		jobs = append(jobs, pool.Job{
			Key:         key,
			Source:      filepath.Join(in, resource),
			Destination: filepath.Join(out, resource),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// UnpackJobs builds unpack jobs for every successfully packed entry of idx.
// Failed entries have no packed file and are returned as skipped keys.
func UnpackJobs(idx Index, packed, out string) (jobs []pool.Job, skipped []string) {
	for e := range idx.Table.Iterate {
		if e.Failed {
			skipped = append(skipped, e.Key)
			continue
		}
		rel := filepath.FromSlash(e.Key)
		jobs = append(jobs, pool.Job{
			Key:         e.Key,
			Source:      filepath.Join(packed, rel),
			Destination: filepath.Join(out, rel),
			Compressed:  e.Compressed,
		})
	}
	return jobs, skipped
}
