package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/flare/config"
	"github.com/kbukum/flare/engine"
	"github.com/kbukum/flare/logger"
	"github.com/kbukum/flare/observability"
	"github.com/kbukum/flare/version"
)

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	configFile string
	logLevel   string

	cfg      *config.Config
	log      *logger.Logger
	engine   *engine.Engine
	shutdown []func(context.Context) error
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "flare",
		Short:         "Run pull-based record pipelines over text files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to a config file (default: search ./flare.yml, ./config/flare.yml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level")

	root.AddCommand(newLengthsCmd(a), newScanCmd(a), newVersionCmd())
	return root
}

func (a *app) setup(ctx context.Context) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger.Init(cfg.Logging)
	a.log = logger.WithComponent("driver")

	engineOpts := []engine.Option{engine.WithLogger(logger.WithComponent("engine"))}
	if cfg.Engine.Telemetry.Enabled {
		metrics, err := a.initTelemetry(ctx)
		if err != nil {
			return err
		}
		engineOpts = append(engineOpts, engine.WithMetrics(metrics))
	}

	eng, err := engine.New(cfg.Engine, engineOpts...)
	if err != nil {
		return err
	}
	a.engine = eng
	return nil
}

func (a *app) initTelemetry(ctx context.Context) (*observability.PipelineMetrics, error) {
	tel := a.cfg.Engine.Telemetry
	tcfg := observability.TracerConfig{
		ServiceName:    a.cfg.Name,
		ServiceVersion: version.GetShortVersion(),
		Environment:    a.cfg.Environment,
		Endpoint:       tel.Endpoint,
		Insecure:       tel.Insecure,
		SampleRate:     tel.SampleRate,
	}
	tp, err := observability.InitTracer(ctx, &tcfg)
	if err != nil {
		return nil, err
	}
	a.shutdown = append(a.shutdown, tp.Shutdown)

	mcfg := observability.MeterConfig{
		ServiceName:    a.cfg.Name,
		ServiceVersion: version.GetShortVersion(),
		Environment:    a.cfg.Environment,
		Endpoint:       tel.Endpoint,
		Insecure:       tel.Insecure,
		Interval:       tel.ExportInterval,
	}
	mp, err := observability.InitMeter(ctx, &mcfg)
	if err != nil {
		return nil, err
	}
	a.shutdown = append(a.shutdown, mp.Shutdown)

	return observability.NewPipelineMetrics(observability.Meter(a.cfg.Name))
}

// teardown flushes telemetry. It runs whether or not the command failed.
func (a *app) teardown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var first error
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		if err := a.shutdown[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	a.shutdown = nil
	return first
}
