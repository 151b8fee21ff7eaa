package overlap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config bundles the per-game collision settings that hosts usually want to
// set once rather than thread through every call site.
type Config struct {
	// SkipPixels is the sampling stride of the pixel scanners. 1 is
	// exhaustive; larger values trade accuracy for speed.
	SkipPixels int `yaml:"skipPixels"`

	// AlphaThreshold is the minimum alpha value a texel needs to count as
	// opaque when masks are built from images.
	AlphaThreshold uint8 `yaml:"alphaThreshold"`
}

// DefaultConfig returns exhaustive sampling with a mid-scale alpha cutoff.
func DefaultConfig() Config {
	return Config{SkipPixels: 1, AlphaThreshold: 128}
}

// LoadConfig reads a YAML collision config from disk. Omitted fields take
// their [DefaultConfig] values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read collision config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse collision config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the config for values the engine cannot work with.
func (c Config) Validate() error {
	if c.SkipPixels < 1 {
		return fmt.Errorf("collision config: skipPixels must be >= 1, got %d", c.SkipPixels)
	}
	return nil
}

// Engine is a thin stateless wrapper binding a [Config] to the collision
// entry point, so game code checks pairs without repeating the stride
// everywhere.
type Engine struct {
	config Config
}

// NewEngine returns an Engine using the given config. An invalid stride is
// clamped to 1.
func NewEngine(config Config) *Engine {
	if config.SkipPixels < 1 {
		config.SkipPixels = 1
	}
	return &Engine{config: config}
}

// Check reports whether the two entities overlap, per [CheckCollision].
func (e *Engine) Check(a, b Collidable) bool {
	return CheckCollision(a, b, e.config.SkipPixels)
}

// Config returns the engine's settings.
func (e *Engine) Config() Config {
	return e.config
}
