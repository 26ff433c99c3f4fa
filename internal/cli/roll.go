package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/castdice/tumbler/pkg/domain"
	"github.com/castdice/tumbler/pkg/session"
)

// RollOptions contains the configuration for the one-shot roll command.
type RollOptions struct {
	Dice  int
	Check bool
}

// Roll performs a single headless roll and writes the results to w.
func Roll(w io.Writer, opts RollOptions) error {
	if opts.Dice < domain.MinDice || opts.Dice > domain.MaxDice {
		return fmt.Errorf("%w: %d (want %d-%d)", domain.ErrCountOutOfRange, opts.Dice, domain.MinDice, domain.MaxDice)
	}

	sess, err := session.New(
		session.WithDiceCount(opts.Dice),
		session.WithFrameInterval(0),
	)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	if err := sess.Roll(context.Background()); err != nil {
		return err
	}

	snap := sess.Snapshot()
	glyphs := make([]string, len(snap.Slots))
	values := make([]string, len(snap.Slots))
	for i, slot := range snap.Slots {
		glyphs[i] = domain.FaceGlyph(slot.Face)
		values[i] = fmt.Sprintf("%d", slot.Face)
	}

	fmt.Fprintf(w, "%s  (%s)\n", strings.Join(glyphs, " "), strings.Join(values, " "))
	fmt.Fprintf(w, "Sum: %d\n", snap.Sum)
	fmt.Fprintf(w, "Faces: %s\n", domain.FormatFrequencies(snap.Frequencies))

	if opts.Check {
		res := domain.ValidateHistory(sess.History())
		if res.Valid {
			fmt.Fprintln(w, "History check: ok")
		} else {
			fmt.Fprintf(w, "History check: FAILED (%s)\n", strings.Join(res.Errors, "; "))
		}
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", warn)
		}
	}
	return nil
}
