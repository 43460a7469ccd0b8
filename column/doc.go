/*
Package column provides the mutable, previous value aware column store.

# Generations

A Store owns two generations of its row key to value mapping. The current
generation is the live state and is what Add, Remove, Shift and Set mutate.
The previous generation is the state as of the start of the step in which the
store was first mutated. It is materialised by the first mutation of a step,
as one full copy of the current generation, and is immutable from then on.

When the step closes, a single deferred flush discards the previous
generation. Until the next mutation, previous reads fall through to the
current generation.

	Idle --(first mutation this step)--> Armed --(step closes, flush runs)--> Idle

# Keys

Reading a key that was never added fails with ErrUnknownKey rather than
returning a default. Negative keys are never stored; redirection layers pass them through to mean
"no row", so they read as the column null.

# Concurrency

A single writer per step is assumed. Every operation, readers included, is
serialised on a per store mutex.
*/
package column
