// Package observe provides observability for transducer chains as ordinary
// stages: Log wraps a chain position with zerolog lifecycle logging under a
// per-run id, and Tally records OpenTelemetry metrics per element. Both are
// pass-through Transducers composed like any other stage; the core package
// stays dependency-free.
package observe
