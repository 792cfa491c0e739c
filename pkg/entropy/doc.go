/*
Package entropy supplies random bytes to the generator one at a time.

A Source yields one uniformly random byte per call or fails. Failures are classified as
ErrSourceExhausted when the underlying stream ended or returned a short read, and ErrSourceError
for any other failure. Neither is retried.

Sources are explicit handles rather than process wide state, so tests can substitute the
deterministic CycleSource or the failing LimitedSource. A Source is not safe for concurrent use;
each concurrent generation needs its own.
*/
package entropy
