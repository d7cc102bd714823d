package engine

import (
	"github.com/spf13/afero"

	"github.com/kbukum/flare/config"
	"github.com/kbukum/flare/logger"
	"github.com/kbukum/flare/observability"
	"github.com/kbukum/flare/source"
)

// Engine creates source pipelines over a file system.
type Engine struct {
	fs      afero.Fs
	log     *logger.Logger
	metrics *observability.PipelineMetrics
	opts    source.Options
}

// Option configures an Engine.
type Option func(*Engine)

// WithFs sets the file system sources are opened on. Defaults to the OS.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) { e.fs = fs }
}

// WithLogger sets the logger for source lifecycle events.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMetrics sets the instruments returned by Metrics, for use with Instrument.
func WithMetrics(m *observability.PipelineMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an Engine. It fails with INVALID_CONFIG when the source
// limits in cfg cannot be parsed.
func New(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	cfg.ApplyDefaults()
	maxRecord, buffer, err := cfg.Source.Limits()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		fs:   afero.NewOsFs(),
		opts: source.Options{MaxRecordBytes: maxRecord, BufferBytes: buffer},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.WithComponent("engine")
	}
	return e, nil
}

// SourceOptions returns the read limits applied to every source.
func (e *Engine) SourceOptions() source.Options { return e.opts }

// Metrics returns the configured pipeline metrics, or nil.
func (e *Engine) Metrics() *observability.PipelineMetrics { return e.metrics }
