// Package tuples composes two or three column sources into a single source
// of composite keys.
//
// A tuple holds each field in its storage representation: booleans as their
// byte code, timestamps as epoch nanoseconds and every other type as itself.
// Tuples are therefore comparable and usable directly as map keys. The
// logical values are recovered on export, either one field at a time or as
// an ExternalKey for consumers outside the column world.
package tuples
