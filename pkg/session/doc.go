// Package session implements the dice-roll session: an owned set of die
// slots, a focused slot, per-slot locks, and the commands that mutate them.
//
// The session is the sole mutator of its state. Commands are safe to call
// from any goroutine, but they form a single-writer surface: the rolling
// flag acts as a non-reentrant advisory lock, so mutating commands issued
// while a roll is in flight are rejected with a notice rather than queued.
package session
