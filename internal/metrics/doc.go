// Package metrics records how long site regenerations take and how they
// end. Components receive a Recorder; NoopRecorder is the default so
// callers never check for nil.
package metrics
