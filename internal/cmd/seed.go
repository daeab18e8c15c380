package cmd

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dendrascience/respak/convert"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand.
// It generates a sample asset tree covering every pack pipeline.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a sample asset tree",
		Long: `Generate a sample asset tree for trying out and benchmarking respak.

Creates PNG icons, Ogg audio companions, level data files and one of each
XML manifest. Roughly 40% of the files are images, 20% audio and the rest
generic data. File contents are derived from random UUIDs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, outputPath, fileCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 1000, "Number of files to generate besides the manifests")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// seedFile is one generated asset; path is relative to the seed root.
type seedFile struct {
	path  string
	write func(path string) error
}

func runSeed(cmd *cobra.Command, outputPath string, fileCount int, verbose bool) error {
	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintf(out, "Generating %d files in %s\n", fileCount, outputPath)
	}

	files := seedPlan(fileCount)
	for i, f := range files {
		path := filepath.Join(outputPath, filepath.FromSlash(f.path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := f.write(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if verbose && (i+1)%1000 == 0 {
			fmt.Fprintf(out, "Created %d/%d files...\n", i+1, len(files))
		}
	}

	fmt.Fprintf(out, "Created %d files in %s\n", len(files), outputPath)
	return nil
}

func seedPlan(fileCount int) []seedFile {
	files := []seedFile{
		manifestSeed("data/"+convert.WordPackDict.Name, convert.WordPackDict, 64),
		manifestSeed("data/"+convert.SoundManifest.Name, convert.SoundManifest, 32),
		manifestSeed("data/"+convert.ItemManifest.Name, convert.ItemManifest, 48),
	}
	for i := range fileCount {
		var f seedFile
		switch r := rand.IntN(100); {
		case r < 40:
			f = imageSeed(i)
		case r < 60:
			f = seedFile{path: fmt.Sprintf("music/track_%05d.flac%s", i, convert.AudioSuffix), write: writeOgg}
		default:
			f = seedFile{path: fmt.Sprintf("data/level%02d/chunk_%05d.bin", i%16, i), write: writeData}
		}
		files = append(files, f)
	}
	return files
}

var iconKinds = []string{"icons/sword_%05d.png", "ui/coloritemicon_%05d.png", "ui/colorbgicon_%05d.png", "ui/greybgicon_%05d.png"}

func imageSeed(i int) seedFile {
	name := fmt.Sprintf(iconKinds[rand.IntN(len(iconKinds))], i)
	w, h := 8+rand.IntN(57), 8+rand.IntN(57)
	c := color.NRGBA{R: uint8(rand.IntN(256)), G: uint8(rand.IntN(256)), B: uint8(rand.IntN(256)), A: 0xff}
	return seedFile{path: name, write: func(path string) error {
		img := imaging.New(w, h, c)
		for x := range w {
			img.Set(x, x%h, color.White)
		}
		return imaging.Save(img, path)
	}}
}

// writeOgg writes a minimal stream that sniffs as Ogg Vorbis.
func writeOgg(path string) error {
	data := make([]byte, 28, 64)
	copy(data, "OggS")
	data = append(data, "\x01vorbis"...)
	for range 1 + rand.IntN(8) {
		data = append(data, uuid.NewString()...)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeData(path string) error {
	var data []byte
	for range 1 + rand.IntN(64) {
		data = append(data, uuid.NewString()+"\n"...)
	}
	return os.WriteFile(path, data, 0o644)
}

func manifestSeed(name string, kind convert.ManifestKind, entries int) seedFile {
	return seedFile{path: name + convert.XMLSuffix, write: func(path string) error {
		list := make([]convert.ManifestEntry, entries)
		for i := range list {
			list[i] = convert.ManifestEntry{Key: fmt.Sprintf("%s_%04d", kind.Root, i), Value: uuid.NewString()}
		}
		return convert.WriteManifestXML(kind, path, list)
	}}
}
