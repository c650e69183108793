// Package engine assembles one complete ECG report per invocation.
//
// The engine is the pure computation core: it converts grid-box counts into
// clinical intervals, derives corrected QT values, classifies each value
// against the resolved reference band, infers the electrical axis, and
// emits a fixed-order report plus structured alerts.
//
// Every operation is deterministic given its inputs and absorbs failure
// locally: missing reference data, undefined divisions, and unrecognizable
// schemas all degrade to Unknown or NaN. Report generation never fails.
//
// One invocation produces one Report; the engine keeps no state across
// invocations beyond the immutable reference tables it was built with, so
// a single Engine is safe for concurrent use.
package engine
