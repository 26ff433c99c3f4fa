/*
Package tumbler is a terminal multi-dice roller: up to eight animated
six-sided dice with per-die locks, focus navigation, and a running sum and
face-frequency breakdown.

The session core is decoupled from any particular front end. It exposes a
command surface (roll, add/remove dice, lock, navigate, reset) and consumes
two callbacks: a redraw sink for visual updates and a notifier for transient
messages. The bundled Bubble Tea TUI drives it, but any UI that can call
commands and repaint from snapshots will do.

# Usage

Create a session, wire your renderer and notifier, and issue commands:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/castdice/tumbler"
	)

	func main() {
		sess, err := tumbler.New(tumbler.WithDiceCount(4))
		if err != nil {
			log.Fatal(err)
		}
		defer sess.Close()

		if err := sess.Roll(context.Background()); err != nil {
			log.Fatal(err)
		}

		snap := sess.Snapshot()
		fmt.Println("faces:", snap.Faces(), "sum:", snap.Sum)
	}

Outcomes are drawn from the operating system CSPRNG; there is no seed and
rolls are not reproducible. For deterministic tests, inject a seeded source
with WithSource.
*/
package tumbler
