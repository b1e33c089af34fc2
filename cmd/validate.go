package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/sixtyxsix/brandgen/internal/hasher"
	"github.com/sixtyxsix/brandgen/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a manifest and decode every referenced PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	baseDir := filepath.Join(filepath.Dir(manifestPath), m.BasePath)
	errs := validateManifest(m, baseDir)

	if len(errs) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d icons, %d files, all present and decodable\n", m.Stats.TotalIcons, m.Stats.TotalVariants)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	keys := make([]string, 0, len(m.Icons))
	for k := range m.Icons {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seenPaths := map[string]bool{}
	for _, key := range keys {
		icon := m.Icons[key]
		if icon.Design == "" || icon.Theme == "" {
			errs = append(errs, fmt.Sprintf("icon %q: missing design or theme", key))
		}
		if len(icon.Variants) == 0 {
			errs = append(errs, fmt.Sprintf("icon %q: no variants", key))
		}

		for i, v := range icon.Variants {
			if v.Width <= 0 || v.Height <= 0 {
				errs = append(errs, fmt.Sprintf("icon %q variant[%d]: invalid dimensions %dx%d",
					key, i, v.Width, v.Height))
			}
			if v.Hash == "" {
				errs = append(errs, fmt.Sprintf("icon %q variant[%d]: missing hash", key, i))
			}
			if v.Path == "" {
				errs = append(errs, fmt.Sprintf("icon %q variant[%d]: missing path", key, i))
				continue
			}
			if seenPaths[v.Path] {
				errs = append(errs, fmt.Sprintf("icon %q variant[%d]: duplicate path %q", key, i, v.Path))
			}
			seenPaths[v.Path] = true

			errs = append(errs, checkVariantFile(key, i, v, filepath.Join(baseDir, v.Path))...)
		}
	}

	variantCount := 0
	for _, ic := range m.Icons {
		variantCount += len(ic.Variants)
	}
	if m.Stats.TotalIcons != len(m.Icons) {
		errs = append(errs, fmt.Sprintf("stats.total_icons mismatch: %d != %d", m.Stats.TotalIcons, len(m.Icons)))
	}
	if m.Stats.TotalVariants != variantCount {
		errs = append(errs, fmt.Sprintf("stats.total_variants mismatch: %d != %d", m.Stats.TotalVariants, variantCount))
	}

	return errs
}

// checkVariantFile verifies size and hash of one file on disk, then decodes
// the whole image and checks its bounds and pixel layout.
func checkVariantFile(key string, i int, v manifest.Variant, fullPath string) []string {
	info, err := os.Stat(fullPath)
	if err != nil {
		return []string{fmt.Sprintf("icon %q variant[%d]: file not found: %s", key, i, v.Path)}
	}

	var errs []string
	if v.Size > 0 && info.Size() != v.Size {
		errs = append(errs, fmt.Sprintf("icon %q variant[%d]: size mismatch: manifest=%d, disk=%d",
			key, i, v.Size, info.Size()))
	}

	sum, err := hasher.FileHash(fullPath, len(v.Hash))
	if err != nil {
		return append(errs, fmt.Sprintf("icon %q variant[%d]: %v", key, i, err))
	}
	if v.Hash != "" && sum != v.Hash {
		errs = append(errs, fmt.Sprintf("icon %q variant[%d]: hash mismatch: manifest=%s, disk=%s",
			key, i, v.Hash, sum))
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return append(errs, fmt.Sprintf("icon %q variant[%d]: open: %v", key, i, err))
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return append(errs, fmt.Sprintf("icon %q variant[%d]: decode: %v", key, i, err))
	}
	if b := img.Bounds(); b.Dx() != v.Width || b.Dy() != v.Height {
		errs = append(errs, fmt.Sprintf("icon %q variant[%d]: decoded %dx%d, manifest %dx%d",
			key, i, b.Dx(), b.Dy(), v.Width, v.Height))
	}
	// 8-bit truecolor without transparency is the only layout that decodes to *image.RGBA.
	if _, ok := img.(*image.RGBA); !ok {
		errs = append(errs, fmt.Sprintf("icon %q variant[%d]: not 8-bit truecolor (decoded %T)", key, i, img))
	}
	return errs
}
