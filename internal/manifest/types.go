package manifest

// Manifest is the top-level output of a brandgen build.
type Manifest struct {
	Version     int             `json:"version"`
	GeneratedAt string          `json:"generated_at"`
	Profile     string          `json:"profile"`
	BasePath    string          `json:"base_path"`
	BuildInfo   *BuildInfo      `json:"build_info,omitempty"`
	Icons       map[string]Icon `json:"icons"`
	Stats       Stats           `json:"stats"`
}

// BuildInfo captures build-time parameters for diagnostics.
type BuildInfo struct {
	Workers    int `json:"workers"`
	MasterSize int `json:"master_size"`
}

// Icon describes one rendered (design, theme) pair and its size variants.
type Icon struct {
	Design     string    `json:"design"`
	Theme      string    `json:"theme"`
	Background string    `json:"background"`          // #rrggbb
	Accent     string    `json:"accent"`              // #rrggbb
	AvgColor   *[3]uint8 `json:"avg_color,omitempty"` // [R,G,B] of the master, optional
	Variants   []Variant `json:"variants"`
}

// Variant is one encoded PNG of an icon at a specific size.
type Variant struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64
	Path   string `json:"path"` // relative to base_path
}

// Stats aggregates build metrics.
type Stats struct {
	TotalIcons       int   `json:"total_icons"`
	TotalVariants    int   `json:"total_variants"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalRawBytes    int64 `json:"total_raw_bytes"` // uncompressed RGB bytes
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileName is the manifest file written into the output directory.
const FileName = "brandgen.manifest.json"
