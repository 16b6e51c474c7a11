package matches

import (
	"matches/internal/diagnostic"
)

// DefaultMaxDepth is the nesting depth rendered in failure messages.
const DefaultMaxDepth = diagnostic.DefaultMaxDepth

// Config controls how failures are reported.
type Config struct {
	// Verbose appends a full dump of the value to failure messages.
	Verbose bool `yaml:"verbose"`
	// MaxDepth bounds how deep values are rendered; zero means DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth"`

	// Renderer replaces the default value renderer.
	Renderer func(v any) string `yaml:"-"`
}

// CompileOption configures a compiled pattern.
type CompileOption func(*Config)

// WithVerbose sets Config.Verbose.
func WithVerbose(verbose bool) CompileOption {
	return func(c *Config) {
		c.Verbose = verbose
	}
}

// WithMaxDepth sets Config.MaxDepth.
func WithMaxDepth(depth int) CompileOption {
	return func(c *Config) {
		c.MaxDepth = depth
	}
}

// WithRenderer sets Config.Renderer.
func WithRenderer(render func(v any) string) CompileOption {
	return func(c *Config) {
		c.Renderer = render
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) CompileOption {
	return func(c *Config) {
		*c = cfg
	}
}

func (c Config) render(v any) string {
	if c.Renderer != nil {
		return c.Renderer(v)
	}

	return diagnostic.Render(v, diagnostic.RenderConfig{MaxDepth: c.MaxDepth, Verbose: c.Verbose})
}
