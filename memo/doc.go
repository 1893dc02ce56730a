// Package memo provides bounded memo tables and memoizers for pure functions.
//
// A Table maps a path of argument keys to a previously computed result.
// It keeps two generations of entries: once the head generation holds
// maxSize entries the generations rotate and the older one is dropped, so
// memory stays bounded without per-entry bookkeeping.
//
// The Tableize family wraps pure functions of one to three inputs.
// Every input must be comparable or implement fmt.Stringer; anything else
// panics with ErrUnhashableKey on the first call. A Stringer is keyed by its
// type and String output, so its String must be distinct per value.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package memo
