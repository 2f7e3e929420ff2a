// Package config loads, normalizes, and validates krokindex configuration.
//
// It supplies repository defaults (the remote listing repository, the local
// source roots, the artifact location), expands user paths including tilde
// shortcuts, reads TOML files, and honours environment fallbacks such as
// GITHUB_TOKEN. A .env file in the working directory is loaded before the
// environment is consulted so credentials can live next to the catalog.
//
// Always obtain settings through this package so the catalog builder receives
// absolute paths and clear validation errors.
package config
