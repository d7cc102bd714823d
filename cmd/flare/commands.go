package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/flare/datum"
	"github.com/kbukum/flare/engine"
	"github.com/kbukum/flare/errors"
	"github.com/kbukum/flare/expr"
	"github.com/kbukum/flare/logger"
	"github.com/kbukum/flare/pipeline"
	"github.com/kbukum/flare/version"
)

func newLengthsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lengths <file>...",
		Short: "Print the byte length of every line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.engine.TextFiles(args...)
			if err != nil {
				return err
			}
			p := engine.Instrument(engine.Lengths(lines), "lengths", a.engine.Metrics())
			out := cmd.OutOrStdout()
			return run(cmd.Context(), a, "lengths", p, func(_ context.Context, n int) error {
				_, err := fmt.Fprintln(out, n)
				return err
			})
		},
	}
}

func newScanCmd(a *app) *cobra.Command {
	var (
		sep     string
		columns string
	)
	cmd := &cobra.Command{
		Use:   "scan <file>...",
		Short: "Parse delimited lines into rows and print them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.engine.TextFiles(args...)
			if err != nil {
				return err
			}
			rows, err := engine.ParseRows(lines, sep)
			if err != nil {
				return err
			}
			if columns != "" {
				exprs, err := parseColumns(columns)
				if err != nil {
					return err
				}
				rows = engine.Project(rows, exprs...)
			}
			p := engine.Instrument(rows, "scan", a.engine.Metrics())
			out := cmd.OutOrStdout()
			return run(cmd.Context(), a, "scan", p, func(_ context.Context, row datum.Row) error {
				_, err := fmt.Fprintln(out, row)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&sep, "sep", ",", "field separator")
	cmd.Flags().StringVar(&columns, "columns", "", "comma-separated zero-based column indexes to keep, e.g. 2,0")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "flare", version.GetFullVersion())
		},
	}
}

// run drains p into sink and logs the outcome.
func run[T any](ctx context.Context, a *app, stage string, p *pipeline.Pipeline[T], sink func(context.Context, T) error) error {
	start := time.Now()
	var records int
	err := pipeline.Drain(p, func(ctx context.Context, v T) error {
		records++
		return sink(ctx, v)
	}).Run(ctx)

	fields := logger.DurationFields(stage, time.Since(start))
	fields[logger.FieldRecords] = records
	if err != nil {
		for k, v := range logger.ErrorFields(stage, err) {
			fields[k] = v
		}
		a.log.Error("pipeline failed", fields)
		return err
	}
	a.log.Info("pipeline finished", fields)
	return nil
}

func parseColumns(s string) ([]expr.Expr, error) {
	parts := strings.Split(s, ",")
	exprs := make([]expr.Expr, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || i < 0 {
			return nil, errors.InvalidConfig(fmt.Sprintf("invalid column index %q", part))
		}
		exprs = append(exprs, expr.Col(i))
	}
	return exprs, nil
}
