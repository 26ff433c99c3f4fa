// Package ports defines the interfaces between the dice session core and
// its collaborators: the randomness source it consumes and the redraw and
// notification channels it drives. Adapters (the TUI, test fakes, the
// headless CLI) implement these; the core never imports them.
package ports
