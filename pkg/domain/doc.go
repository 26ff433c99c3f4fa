// Package domain contains the pure model of a dice session: slot state,
// grid geometry, focus navigation, aggregate statistics, and the sentinel
// errors shared by the command surface.
//
// Nothing in this package performs IO or holds locks; it is safe to call
// from any goroutine as long as the caller owns the data it passes in.
package domain
