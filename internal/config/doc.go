// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, a .env file and
// environment variables). It provides type-safe access to the settings a
// generation run needs while keeping configuration details separate from the
// pipeline itself.
package config
