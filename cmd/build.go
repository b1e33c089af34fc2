package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sixtyxsix/brandgen/internal/brand"
	"github.com/sixtyxsix/brandgen/internal/manifest"
	"github.com/sixtyxsix/brandgen/internal/palette"
	"github.com/sixtyxsix/brandgen/internal/pipeline"
	"github.com/sixtyxsix/brandgen/internal/profile"
	"github.com/spf13/cobra"
)

var (
	buildOutDir    string
	buildProfile   string
	buildWorkers   int
	buildSizes     []int
	buildAccent    string
	buildDesigns   []string
	buildThemes    []string
	buildHashNames bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render brand icons and write PNG variants + manifest",
	Long: `Renders every selected design in every selected theme at 1024x1024,
downsamples it to the profile sizes and writes each as a PNG:

  icon-<design>-<theme>-<size>.png

Profiles: ` + strings.Join(profile.Names(), ", "),
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "./assets/brand/icons", "output directory")
	buildCmd.Flags().StringVarP(&buildProfile, "profile", "p", "master", "size profile")
	buildCmd.Flags().IntVarP(&buildWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	buildCmd.Flags().IntSliceVar(&buildSizes, "sizes", nil, "custom sizes (overrides profile)")
	buildCmd.Flags().StringVar(&buildAccent, "accent", palette.Hex(brand.Accent), "accent color (#rrggbb or color name)")
	buildCmd.Flags().StringSliceVarP(&buildDesigns, "design", "d", nil, "designs to render (default all)")
	buildCmd.Flags().StringSliceVarP(&buildThemes, "theme", "t", nil, "themes to render (default all)")
	buildCmd.Flags().BoolVar(&buildHashNames, "hash-names", false, "embed content hash in file names")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	absOutput, err := filepath.Abs(buildOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof := profile.Get(buildProfile)
	if buildSizes != nil {
		prof.Sizes = buildSizes
	}
	accent, err := palette.Parse(buildAccent)
	if err != nil {
		return fmt.Errorf("parse accent: %w", err)
	}
	designs, err := brand.SelectDesigns(buildDesigns)
	if err != nil {
		return err
	}
	themes, err := brand.SelectThemes(buildThemes)
	if err != nil {
		return err
	}

	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (sizes=%v)", prof.Name, prof.EffectiveSizes(brand.MasterSize))
	logVerbose("accent:  %s", palette.Hex(accent))

	p := pipeline.New(pipeline.Config{
		OutputDir: absOutput,
		Profile:   prof,
		Designs:   designs,
		Themes:    themes,
		Accent:    accent,
		Workers:   buildWorkers,
		Verbose:   verbose,
		HashNames: buildHashNames,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBuildReport(m, time.Since(start))
	return nil
}

func printBuildReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("  brandgen build complete")
	fmt.Println()

	s := m.Stats
	ratio := float64(0)
	if s.TotalRawBytes > 0 {
		ratio = float64(s.TotalOutputBytes) / float64(s.TotalRawBytes) * 100
	}

	fmt.Printf("  Icons:       %d\n", s.TotalIcons)
	fmt.Printf("  Files:       %d\n", s.TotalVariants)
	fmt.Printf("  Raw pixels:  %s\n", formatBytes(s.TotalRawBytes))
	fmt.Printf("  PNG size:    %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Printf("  Ratio:       %.2f%% of raw\n", ratio)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	keys := make([]string, 0, len(m.Icons))
	for k := range m.Icons {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ic := m.Icons[k]
		var sum int64
		for _, v := range ic.Variants {
			sum += v.Size
		}
		fmt.Printf("    %-24s %2d files  %8s\n", k, len(ic.Variants), formatBytes(sum))
	}
	fmt.Println()
	fmt.Printf("  Manifest:    %s\n", manifest.FileName)
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
