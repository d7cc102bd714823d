// Package engine is the construction facade for flare pipelines.
//
// An Engine turns record source identifiers (file paths) into lazy
// pipelines of text records. The row stages in this package then parse,
// project and select over those records with the expression evaluator:
//
//	eng, err := engine.New(config.DefaultEngineConfig())
//	lines, err := eng.TextFile("input.csv")
//	rows, err := engine.ParseRows(lines, ",")
//	sums := engine.Select(rows, expr.Add(expr.Col(0), expr.Col(1)))
//	values, err := pipeline.Collect(ctx, sums)
//
// Every stage is 1:1: n records in, n records out, or a fatal error.
package engine
