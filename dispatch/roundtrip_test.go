package dispatch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/respak/codec"
	"github.com/dendrascience/respak/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"level1.bin":       bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 4096),
		"scripts/boot.lua": []byte(strings.Repeat("print('hello')\n", 200)),
		"tiny.dat":         []byte("x"),
	}

	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			c, err := codec.ByName(name)
			require.NoError(t, err)
			root := t.TempDir()
			in, packed, out := filepath.Join(root, "in"), filepath.Join(root, "packed"), filepath.Join(root, "out")

			var packJobs, unpackJobs []pool.Job
			for rel, data := range payloads {
				src := filepath.Join(in, filepath.FromSlash(rel))
				require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
				require.NoError(t, os.WriteFile(src, data, 0o644))
				packJobs = append(packJobs, pool.Job{Key: rel, Source: src, Destination: filepath.Join(packed, filepath.FromSlash(rel))})
			}

			packer, err := New(pool.Pack, Native(c))
			require.NoError(t, err)
			report, err := pool.New(pool.Config{Threads: 2, Direction: pool.Pack}, packer).Run(packJobs)
			require.NoError(t, err)
			require.Empty(t, report.Failures)

			for e := range report.Table.Iterate {
				assert.True(t, e.Compressed, e.Key)
				assert.EqualValues(t, len(payloads[e.Key]), e.UncompressedSize, e.Key)
				unpackJobs = append(unpackJobs, pool.Job{
					Key:         e.Key,
					Source:      filepath.Join(packed, filepath.FromSlash(e.Key)),
					Destination: filepath.Join(out, filepath.FromSlash(e.Key)),
					Compressed:  e.Compressed,
				})
			}

			unpacker, err := New(pool.Unpack, Native(c))
			require.NoError(t, err)
			report, err = pool.New(pool.Config{Threads: 2, Direction: pool.Unpack}, unpacker).Run(unpackJobs)
			require.NoError(t, err)
			require.Empty(t, report.Failures)

			for rel, want := range payloads {
				got, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(rel)))
				require.NoError(t, err)
				assert.True(t, bytes.Equal(want, got), "%s differs after round trip", rel)
			}
		})
	}
}
