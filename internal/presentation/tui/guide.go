package tui

import "github.com/charmbracelet/glamour"

// guideMarkdown is the in-terminal manual rendered by `tumbler guide`.
const guideMarkdown = `# tumbler

A terminal multi-dice roller. Up to eight six-sided dice, per-die locks,
and independently timed roll animations.

## Keys

| Key | Action |
|---|---|
| r, space, enter | Roll every unlocked die |
| arrow keys | Move focus between dice |
| l | Lock or unlock the focused die |
| L | Lock all dice |
| u | Unlock all dice |
| +, = | Add a die (max 8) |
| - | Remove a die (min 1) |
| 1-8 | Set the dice count directly |
| x | Reset faces, locks, and the roll counter |
| q, esc | Quit |

## Notes

- Locked dice keep their face across rolls; lock them after a good throw.
- Each die animates on its own random timer between 0.3s and 0.6s, so a
  batch settles raggedly, like real dice.
- Outcomes come from the operating system CSPRNG. There is no seed to
  replay; every roll is fresh.

## Configuration

Settings load from ` + "`~/.config/tumbler/config.yaml`" + ` and can be
overridden with environment variables:

    dice: 4            # TUMBLER_DICE
    frame_interval: 50ms  # TUMBLER_FRAME_INTERVAL (0 disables animation)
    no_color: false    # TUMBLER_NO_COLOR
`

// RenderGuide renders the manual as styled terminal output using the
// detected background (dark or light).
func RenderGuide() (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", err
	}
	return r.Render(guideMarkdown)
}
