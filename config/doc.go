// Package config loads flare configuration.
//
// Values come from a YAML config file, a .env file and FLARE_* environment
// variables, in increasing order of precedence. Environment keys map onto
// nested keys by underscores, so FLARE_ENGINE_SOURCE_MAX_RECORD_SIZE sets
// engine.source.max_record_size.
//
//	cfg, err := config.Load(config.WithConfigFile("flare.yml"))
package config
