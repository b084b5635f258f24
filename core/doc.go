// Package core defines the shared types used across loggio.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Arg type for positional
// template arguments.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the handlers have consumed it.
//
// Arg encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int and bool never escape
// to the heap. The Any field exists as a fallback for arbitrary types
// but will cause an allocation.
package core
