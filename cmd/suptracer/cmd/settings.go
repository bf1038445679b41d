package cmd

// RenderKind selects which film renderer produces the output image.
type RenderKind string

const (
	RenderDepth RenderKind = "depth"
	RenderHeat  RenderKind = "heat"
)

// Settings is the YAML-serializable render configuration, mirroring the
// teacher's recast.yml build-settings file (cmd/recast/cmd/utils.go's
// unmarshalYAMLFile convention) but scoped to render parameters instead of
// navmesh build parameters.
type Settings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	BucketCount   uint32  `yaml:"bucket_count"`
	TraversalCost float32 `yaml:"traversal_cost"`

	Workers int        `yaml:"workers"`
	Kind    RenderKind `yaml:"kind"`
}

// DefaultSettings returns the settings prefilled by `suptracer config`,
// matching cmd/recast/cmd/config.go's prefill-then-let-the-user-edit
// workflow.
func DefaultSettings() Settings {
	return Settings{
		Width:         800,
		Height:        600,
		BucketCount:   16,
		TraversalCost: 1.0,
		Workers:       1,
		Kind:          RenderDepth,
	}
}
