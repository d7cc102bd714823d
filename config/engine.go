package config

import (
	"time"

	"github.com/kbukum/flare/errors"
	"github.com/kbukum/flare/util"
	"github.com/kbukum/flare/validation"
)

const (
	// DefaultMaxRecordSize is the longest record a source accepts.
	DefaultMaxRecordSize = "1MB"
	// DefaultBufferSize is the initial read buffer of a source.
	DefaultBufferSize = "64KB"
	// DefaultExportInterval is how often metrics are exported when telemetry is on.
	DefaultExportInterval = 15 * time.Second
)

// Config is the complete flare configuration.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Engine        EngineConfig `yaml:"engine" mapstructure:"engine"`
}

// ApplyDefaults fills unset fields in every section.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Engine.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return c.Engine.Validate()
}

// EngineConfig configures record sources and telemetry.
type EngineConfig struct {
	Source    SourceConfig    `yaml:"source" mapstructure:"source"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// SourceConfig limits how records are read. Sizes are human-readable ("1MB").
type SourceConfig struct {
	MaxRecordSize string `yaml:"max_record_size" mapstructure:"max_record_size" validate:"required"`
	BufferSize    string `yaml:"buffer_size" mapstructure:"buffer_size" validate:"required"`
}

// TelemetryConfig controls OTLP export of traces and metrics.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	ExportInterval time.Duration `yaml:"export_interval" mapstructure:"export_interval" validate:"gte=0"`
}

// DefaultEngineConfig returns an EngineConfig with defaults applied.
func DefaultEngineConfig() EngineConfig {
	var c EngineConfig
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills unset fields.
func (c *EngineConfig) ApplyDefaults() {
	if c.Source.MaxRecordSize == "" {
		c.Source.MaxRecordSize = DefaultMaxRecordSize
	}
	if c.Source.BufferSize == "" {
		c.Source.BufferSize = DefaultBufferSize
	}
	if c.Telemetry.Enabled && c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
	if c.Telemetry.ExportInterval == 0 {
		c.Telemetry.ExportInterval = DefaultExportInterval
	}
}

// Validate checks struct tags and that sizes parse to positive values.
func (c *EngineConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	_, _, err := c.Source.Limits()
	return err
}

// Limits returns the maximum record size and initial buffer size in bytes.
func (c SourceConfig) Limits() (maxRecord, buffer int, err error) {
	m, err := util.ParseSize(c.MaxRecordSize, 0)
	if err != nil {
		return 0, 0, errors.InvalidConfig("engine.source.max_record_size").WithCause(err)
	}
	b, err := util.ParseSize(c.BufferSize, 0)
	if err != nil {
		return 0, 0, errors.InvalidConfig("engine.source.buffer_size").WithCause(err)
	}
	if m <= 0 {
		return 0, 0, errors.InvalidConfig("engine.source.max_record_size must be positive")
	}
	if b <= 0 {
		return 0, 0, errors.InvalidConfig("engine.source.buffer_size must be positive")
	}
	const maxInt = int64(^uint(0) >> 1)
	if m > maxInt-2 {
		return 0, 0, errors.InvalidConfig("engine.source.max_record_size is too large")
	}
	return int(m), int(min(b, m)), nil
}
