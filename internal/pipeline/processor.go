package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/sixtyxsix/brandgen/internal/brand"
	"github.com/sixtyxsix/brandgen/internal/canvas"
	"github.com/sixtyxsix/brandgen/internal/encoder"
	"github.com/sixtyxsix/brandgen/internal/hasher"
	"github.com/sixtyxsix/brandgen/internal/manifest"
	"github.com/sixtyxsix/brandgen/internal/palette"
)

// processResult holds the result of rendering a single job.
type processResult struct {
	key  string
	icon manifest.Icon
	err  error
}

// processJob renders the master icon, downsamples it to every size and
// writes each variant as a PNG. sizes[0] must be the master size.
// On failure every file the job already wrote is removed again.
func processJob(job Job, sizes []int, cfg Config) (result processResult) {
	result.key = job.Key

	var written []string
	defer func() {
		if result.err != nil {
			for _, p := range written {
				os.Remove(p)
			}
		}
	}()

	master := brand.Render(job.Design, job.Theme.Background, cfg.Accent)
	avg := computeAvgColor(master)
	result.icon = manifest.Icon{
		Design:     job.Design.Name,
		Theme:      job.Theme.Name,
		Background: palette.Hex(job.Theme.Background),
		Accent:     palette.Hex(cfg.Accent),
		AvgColor:   &avg,
	}

	src := master.Image()
	for _, size := range sizes {
		c := master
		if size != master.Width() {
			resized := imaging.Resize(src, size, size, imaging.Lanczos)
			c = canvas.FromImage(resized)
		}

		v, outPath, err := writeVariant(cfg, job.Key, size, c)
		if err != nil {
			result.err = err
			return result
		}
		written = append(written, outPath)
		result.icon.Variants = append(result.icon.Variants, v)
	}

	return result
}

// writeVariant streams c as PNG into a temporary file in the output
// directory, hashing it on the way, then renames it to its final name.
func writeVariant(cfg Config, key string, size int, c *canvas.Canvas) (manifest.Variant, string, error) {
	tmp, err := os.CreateTemp(cfg.OutputDir, ".brandgen-*.png")
	if err != nil {
		return manifest.Variant{}, "", fmt.Errorf("write %s@%d: %w", key, size, err)
	}
	tmpPath := tmp.Name()

	hw := hasher.NewWriter()
	err = encoder.WriteImage(io.MultiWriter(tmp, hw), c)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return manifest.Variant{}, "", fmt.Errorf("write %s@%d: %w", key, size, err)
	}

	contentHash := hw.Sum(hasher.ManifestLen)
	fileName := VariantFileName(key, size, contentHash, cfg.HashNames)
	outPath := filepath.Join(cfg.OutputDir, fileName)
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return manifest.Variant{}, "", fmt.Errorf("write %s: %w", fileName, err)
	}

	return manifest.Variant{
		Width:  c.Width(),
		Height: c.Height(),
		Size:   hw.Len(),
		Hash:   contentHash,
		Path:   filepath.ToSlash(fileName),
	}, outPath, nil
}

// computeAvgColor calculates the average RGB color of a canvas.
func computeAvgColor(c *canvas.Canvas) [3]uint8 {
	count := uint64(c.Width()) * uint64(c.Height())
	if count == 0 {
		return [3]uint8{0, 0, 0}
	}
	var rSum, gSum, bSum uint64
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			col, _ := c.At(x, y)
			rSum += uint64(col.R)
			gSum += uint64(col.G)
			bSum += uint64(col.B)
		}
	}
	return [3]uint8{
		uint8(rSum / count),
		uint8(gSum / count),
		uint8(bSum / count),
	}
}

// VariantFileName builds "icon-<key>-<size>.png", or
// "icon-<key>-<size>.<hash8>.png" when hashed names are requested.
func VariantFileName(key string, size int, contentHash string, hashed bool) string {
	if hashed && len(contentHash) >= 8 {
		return fmt.Sprintf("icon-%s-%d.%s.png", key, size, contentHash[:8])
	}
	return fmt.Sprintf("icon-%s-%d.png", key, size)
}
