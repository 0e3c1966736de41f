// Package config loads and validates the application configuration from
// the environment. It is consumed only by the cmd/server bootstrap; the
// core packages receive their settings as constructor arguments.
package config
