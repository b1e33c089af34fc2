package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sixtyxsix/brandgen/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a built icon directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}
	logVerbose("manifest: %s", path)

	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}

	printStats(m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
		fmt.Printf("  Master size:      %dpx\n", m.BuildInfo.MasterSize)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total icons:      %d\n", s.TotalIcons)
	fmt.Printf("  Total files:      %d\n", s.TotalVariants)
	fmt.Printf("  Raw pixels:       %s\n", formatBytes(s.TotalRawBytes))
	fmt.Printf("  PNG size:         %s\n", formatBytes(s.TotalOutputBytes))
	if s.TotalRawBytes > 0 {
		fmt.Printf("  Compression:      %.2f%% of raw\n", float64(s.TotalOutputBytes)/float64(s.TotalRawBytes)*100)
	}
	fmt.Println()

	byDesign := map[string]int64{}
	byTheme := map[string]int64{}
	bySize := map[int]int{}
	for _, ic := range m.Icons {
		for _, v := range ic.Variants {
			byDesign[ic.Design] += v.Size
			byTheme[ic.Theme] += v.Size
			bySize[v.Width]++
		}
	}

	fmt.Println("  Design breakdown:")
	for _, d := range sortedKeys(byDesign) {
		fmt.Printf("    %-10s  %s\n", d, formatBytes(byDesign[d]))
	}
	fmt.Println()

	fmt.Println("  Theme breakdown:")
	for _, th := range sortedKeys(byTheme) {
		fmt.Printf("    %-10s  %s\n", th, formatBytes(byTheme[th]))
	}
	fmt.Println()

	var sizes []int
	for sz := range bySize {
		sizes = append(sizes, sz)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	fmt.Println("  Size breakdown:")
	for _, sz := range sizes {
		fmt.Printf("    %5dpx  %4d files\n", sz, bySize[sz])
	}
	fmt.Println()

	var warnings []string
	for _, key := range sortedKeys(m.Icons) {
		if len(m.Icons[key].Variants) == 0 {
			warnings = append(warnings, fmt.Sprintf("icon %q has no variants", key))
		}
	}
	if len(warnings) > 0 {
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
		fmt.Println()
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
