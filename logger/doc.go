// Package logger provides structured logging for flare using zerolog.
//
// It supports JSON and console output, level configuration from config or
// LOG_* environment variables, and component-scoped loggers.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("engine")
//	log.Debug("source opened", logger.Fields(logger.FieldSourceID, id, logger.FieldPath, path))
package logger
