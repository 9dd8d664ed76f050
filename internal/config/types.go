package config

// Config is the generator configuration loaded from pigment.yaml. Fields
// absent from the file keep the defaults set by Default.
type Config struct {
	Version              string            `yaml:"version" validate:"required,schema_version"`
	OutputDir            string            `yaml:"output_dir" validate:"required"`
	Renderers            []string          `yaml:"renderers" validate:"min=1,dive,renderer_name"`
	Variants             []string          `yaml:"variants" validate:"dive,variant_id"`
	SourcesDir           string            `yaml:"sources_dir"`
	IncludeExperimental  bool              `yaml:"include_experimental"`
	Italics              bool              `yaml:"italics"`
	Bold                 bool              `yaml:"bold"`
	SemanticHighlighting bool              `yaml:"semantic_highlighting"`
	Overrides            map[string]string `yaml:"overrides"`
	Upstream             Upstream          `yaml:"upstream"`
}

// Upstream points at the git repository carrying the palette sources.
// Depth zero clones the full history.
type Upstream struct {
	URL   string `yaml:"url" validate:"omitempty,url"`
	Ref   string `yaml:"ref"`
	Dest  string `yaml:"dest"`
	Depth int    `yaml:"depth" validate:"gte=0"`
}

// Default returns the configuration used when no file is given. An empty
// Variants list means every variant.
func Default() *Config {
	return &Config{
		Version:              "1.0",
		OutputDir:            "themes",
		Renderers:            []string{"vscode"},
		Italics:              true,
		Bold:                 true,
		SemanticHighlighting: true,
		Upstream: Upstream{
			URL:   "https://github.com/pigment-theme/pigment-emacs",
			Ref:   "main",
			Dest:  "upstream",
			Depth: 1,
		},
	}
}
