package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/castdice/tumbler/pkg/domain"
)

const helpText = "r roll · arrows focus · l lock · L/u lock/unlock all · +/- dice · 1-8 count · x reset · q quit"

// View renders the whole screen from a fresh session snapshot.
func (m Model) View() string {
	snap := m.sess.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("tumbler"))
	b.WriteString("  ")
	b.WriteString(m.styles.Status.Render(statusLine(snap)))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid(snap))
	b.WriteString("\n")
	b.WriteString(m.styles.Stats.Render(fmt.Sprintf("Sum: %d", snap.Sum)))
	b.WriteString("\n")
	b.WriteString(m.styles.Notice.Render(domain.FormatFrequencies(snap.Frequencies)))
	b.WriteString("\n\n")
	if m.notice != "" {
		style := m.styles.Notice
		if m.warning {
			style = m.styles.Warning
		}
		b.WriteString(style.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpText))
	b.WriteString("\n")

	out := b.String()
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out
}

// renderGrid lays the dice out per the fixed dimensions table, joining die
// cells horizontally per row and rows vertically.
func (m Model) renderGrid(snap domain.Snapshot) string {
	dims := domain.DimensionsFor(snap.DiceCount)
	rows := make([]string, 0, dims.Rows)

	for row := 0; row < dims.Rows; row++ {
		cells := make([]string, 0, dims.Cols)
		for col := 0; col < dims.Cols; col++ {
			index := domain.CoordToIndex(row, col, dims.Cols)
			if index >= snap.DiceCount {
				// Counts 5 and 7 leave trailing cells empty.
				break
			}
			cells = append(cells, m.renderDie(snap.Slots[index], index == snap.FocusedIndex))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDie draws one die cell: the face glyph boxed by a border that
// encodes state, with a lock marker underneath.
func (m Model) renderDie(slot domain.SlotView, focused bool) string {
	style := m.styles.Die
	switch {
	case focused:
		style = m.styles.Focused
	case slot.Animating:
		style = m.styles.Animating
	case slot.Locked:
		style = m.styles.Locked
	}

	marker := " "
	if slot.Locked {
		marker = "lock"
	}
	cell := style.Render(domain.FaceGlyph(slot.Face))
	label := m.styles.Marker.Width(lipgloss.Width(cell)).Align(lipgloss.Center).Render(marker)
	return lipgloss.JoinVertical(lipgloss.Center, cell, label)
}

// statusLine formats the header summary, e.g. "3 dice | Sum: 7 | Roll #2".
func statusLine(snap domain.Snapshot) string {
	noun := "dice"
	if snap.DiceCount == 1 {
		noun = "die"
	}
	line := fmt.Sprintf("%d %s | Sum: %d | Roll #%d", snap.DiceCount, noun, snap.Sum, snap.RollCount)
	if snap.Rolling {
		line += " | rolling..."
	}
	return line
}
