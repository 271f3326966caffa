// Package config is lesson 31: layering configuration sources.
//
// What
//
//   - flag: typed command-line flags on a FlagSet.
//   - environment variables and the LookupEnv comma-ok.
//   - godotenv: .env files for development parity.
//   - cleanenv: one tagged struct fed by YAML, env and defaults.
//   - HCL + go-cty: configuration with expressions and variables.
//
// The precedence ladder the lesson builds is the common production one:
// defaults, then file, then environment, then flags, each layer
// overriding the one below.
package config
