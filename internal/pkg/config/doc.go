// Package config provides the settings used by the chemistry loaders and the CLI.
//
// Settings are read from the process environment, optionally seeded from a .env file,
// and validated before use. Logger settings control the console and rotating file loggers.
package config
