// Package config loads configuration from environment variables and from
// configuration files.
//
// Environment loading wraps `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11`:
//
//   - LoadEnv loads one or more `.env` files into the process environment
//     (the default `.env` in the working directory when no path is given).
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per struct type for the lifetime of the process.
//
// File loading wraps `gopkg.in/yaml.v3`. LoadFile decodes a YAML document
// into a struct and rejects unknown keys. JSON documents are accepted too,
// since JSON is a subset of YAML.
//
// # Usage
//
//	type Defaults struct {
//	    Supplier string `env:"SBOMKIT_DEFAULT_PACKAGE_SUPPLIER" envDefault:"Organization: Example"`
//	}
//
//	var d Defaults
//	if err := config.Load(&d); err != nil {
//	    return err
//	}
//
//	var f FileValues
//	if err := config.LoadFile("sbom.yaml", &f); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be compared with errors.Is.
//
// # Testing Helpers
//
// Use ResetCache to clear cached environment structs between tests, or
// ForceReload to re-parse one struct after the environment changed.
package config
