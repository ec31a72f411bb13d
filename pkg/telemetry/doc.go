// Package telemetry reports what the engine does per render cycle: patch
// counts by kind, duplicate-key diagnostics, and phase durations.
//
// All of it is optional. A nil *Metrics and a nil *Tracer are valid no-ops,
// so an engine built without telemetry pays nothing beyond a nil check.
package telemetry
