package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Brand palette
var (
	colorNavy  = lipgloss.Color("#101F38")
	colorSea   = lipgloss.Color("#2196F3")
	colorLime  = lipgloss.Color("#8BC34A")
	colorMuted = lipgloss.Color("#6B7280")
)

// styles are bound to the output's renderer, so piped output carries no
// escape codes.
type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	cell      lipgloss.Style
	emphasis  lipgloss.Style
	highlight lipgloss.Style
	muted     lipgloss.Style
	border    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(colorSea).MarginBottom(1),
		header:    r.NewStyle().Bold(true).Foreground(colorNavy).Padding(0, 1),
		cell:      r.NewStyle().Padding(0, 1),
		emphasis:  r.NewStyle().Bold(true).Padding(0, 1),
		highlight: r.NewStyle().Bold(true).Foreground(colorLime),
		muted:     r.NewStyle().Foreground(colorMuted).Italic(true),
		border:    r.NewStyle().Foreground(colorMuted),
	}
}

// table lays out rows under headers. A nil headers slice renders a
// key/value table. emphasize bolds one data row; pass -1 for none.
func (s styles) table(headers []string, rows [][]string, emphasize int) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case row == emphasize:
				return s.emphasis
			default:
				return s.cell
			}
		}).
		Rows(rows...)

	if headers != nil {
		t = t.Headers(headers...)
	}
	return t
}
