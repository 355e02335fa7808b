// Package config defines the CLI configuration structure.
package config

// Config is the configuration for sortbench.
type Config struct {
	Bench   BenchConfig   `koanf:"bench" yaml:"bench"`
	Output  OutputConfig  `koanf:"output" yaml:"output"`
	Log     LogConfig     `koanf:"log" yaml:"log"`
	Metrics MetricsConfig `koanf:"metrics" yaml:"metrics"`

	sizeSet       bool
	iterationsSet bool
}

// BenchConfig controls the benchmark itself.
type BenchConfig struct {
	Size       int    `koanf:"size" yaml:"size"`
	Iterations int    `koanf:"iterations" yaml:"iterations"`
	Seed       uint64 `koanf:"seed" yaml:"seed"` // 0 = random
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format   string `koanf:"format" yaml:"format"` // text, table, json, yaml
	Progress bool   `koanf:"progress" yaml:"progress"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"` // text, json
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	File string `koanf:"file" yaml:"file"` // empty = disabled
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   "text",
			Progress: true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// defaultsMap mirrors Default as dotted keys for the loader.
// bench.size and bench.iterations are absent on purpose.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"bench.seed":      d.Bench.Seed,
		"output.format":   d.Output.Format,
		"output.progress": d.Output.Progress,
		"log.level":       d.Log.Level,
		"log.format":      d.Log.Format,
		"metrics.file":    d.Metrics.File,
	}
}

// SizeSet reports whether a source provided the problem size.
func (c *Config) SizeSet() bool {
	return c.sizeSet
}

// IterationsSet reports whether a source provided the iteration count.
func (c *Config) IterationsSet() bool {
	return c.iterationsSet
}

// SetSize records a problem size obtained outside the loader.
func (c *Config) SetSize(n int) {
	c.Bench.Size = n
	c.sizeSet = true
}

// SetIterations records an iteration count obtained outside the loader.
func (c *Config) SetIterations(n int) {
	c.Bench.Iterations = n
	c.iterationsSet = true
}
