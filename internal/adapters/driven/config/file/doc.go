// Package file stores workspace settings in a TOML file,
// ~/.contractai/config.toml unless --config-dir points elsewhere.
package file
