// Package types defines the logical column types, their null sentinels and
// the compact storage representations used inside composite keys.
//
// Primitive columns store unboxed values and reserve one value per width as
// null. A logical boolean is tri-state and is stored as a one byte code. A
// timestamp is stored as signed nanoseconds since the unix epoch. Object
// columns store the value itself and use the zero value as null.
//
// Value is the one dynamically typed representation. It exists only at the
// external facing construction and export calls; the hot paths stay fully
// typed.
package types
