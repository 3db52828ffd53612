// Package config loads deployment configuration for hosts that construct
// transducer chains from their environment: channel buffer sizes and logging
// settings. Sources are merged in the usual order — defaults, an optional
// transduce config file, a .env file, then process environment variables with
// the TRANSDUCE prefix — and the result is validated before use.
package config
