// Package config loads, normalizes, and validates shelfmark configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every knob the CLI needs:
// catalog and output directories, the closed category set, label sizing
// presets, and the sheet packing policy. The loaded Config is immutable;
// components receive it at construction instead of reading package-level
// state.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical policy names, and clear validation errors.
package config
